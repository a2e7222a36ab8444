package framework

import (
	"github.com/cockroachdb/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
)

type gpuState struct {
	instance      *wgpu.Instance
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration
}

func createGpuState(ws *windowState, cfg Config) (*gpuState, error) {
	g := &gpuState{instance: wgpu.CreateInstance(nil)}
	g.surface = g.instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(ws.window))

	adapter, err := g.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: g.surface,
		PowerPreference:   cfg.WGPUPowerPreference(),
	})
	if err != nil {
		g.release()
		return nil, errors.Wrap(err, "request adapter")
	}
	g.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: cfg.Title + " device",
	})
	if err != nil {
		g.release()
		return nil, errors.Wrap(err, "request device")
	}
	g.device = device
	g.queue = device.GetQueue()

	caps := g.surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		g.release()
		return nil, errors.New("surface reports no supported formats")
	}

	width, height := ws.window.GetFramebufferSize()
	g.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: cfg.WGPUPresentMode(),
		AlphaMode:   caps.AlphaModes[0],
	}
	if width > 0 && height > 0 {
		g.surface.Configure(g.adapter, g.device, g.surfaceConfig)
	}
	return g, nil
}

// resize reconfigures the surface. Zero sizes (minimized window) are
// recorded but not applied.
func (g *gpuState) resize(width, height int) bool {
	g.surfaceConfig.Width = uint32(max(width, 0))
	g.surfaceConfig.Height = uint32(max(height, 0))
	if !g.drawable() {
		return false
	}
	g.surface.Configure(g.adapter, g.device, g.surfaceConfig)
	return true
}

func (g *gpuState) drawable() bool {
	return g.surfaceConfig.Width > 0 && g.surfaceConfig.Height > 0
}

func (g *gpuState) acquire() (*wgpu.Texture, *wgpu.TextureView, error) {
	texture, err := g.surface.GetCurrentTexture()
	if err != nil {
		return nil, nil, errors.Wrap(err, "get current texture")
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, nil, errors.Wrap(err, "create surface view")
	}
	return texture, view, nil
}

func (g *gpuState) release() {
	if g.queue != nil {
		g.queue.Release()
	}
	if g.device != nil {
		g.device.Release()
	}
	if g.adapter != nil {
		g.adapter.Release()
	}
	if g.surface != nil {
		g.surface.Release()
	}
	if g.instance != nil {
		g.instance.Release()
	}
}
