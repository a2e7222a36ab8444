package repro

import (
	"github.com/cockroachdb/errors"
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/wgpurepro/framework"
	"github.com/gekko3d/wgpurepro/repro/shaders"
)

// Variant picks which pipelines a program builds.
type Variant int

const (
	// VariantBlit draws sprites into the spritesheet and blits it to the surface.
	VariantBlit Variant = iota
	// VariantQuad only draws sprites; the surface pass clears and nothing else.
	VariantQuad
)

func (v Variant) String() string {
	switch v {
	case VariantBlit:
		return "blit"
	case VariantQuad:
		return "quad"
	}
	return "unknown"
}

func (v Variant) usesBlit() bool { return v == VariantBlit }

// Example renders a sprite quad into an offscreen spritesheet every frame,
// with a zero-size vertex buffer bound to every pass.
type Example struct {
	variant Variant
	logger  framework.Logger

	vertexBuffer *wgpu.Buffer
	module       *wgpu.ShaderModule

	quadPipelineLayout *wgpu.PipelineLayout
	quadPipeline       *wgpu.RenderPipeline

	blitBindGroupLayout *wgpu.BindGroupLayout
	blitPipelineLayout  *wgpu.PipelineLayout
	blitPipeline        *wgpu.RenderPipeline
	blitBindGroup       *wgpu.BindGroup

	spritesheet     *wgpu.Texture
	spritesheetView *wgpu.TextureView

	counter FrameCounter
}

// New returns the framework.InitFunc for variant.
func New(variant Variant, logger framework.Logger) framework.InitFunc {
	if logger == nil {
		logger = framework.NewNopLogger()
	}
	return func(config *wgpu.SurfaceConfiguration, _ *wgpu.Adapter, device *wgpu.Device, _ *wgpu.Queue) (framework.Example, error) {
		e := &Example{variant: variant, logger: logger}
		if err := e.init(config, device); err != nil {
			e.Release()
			return nil, err
		}
		logger.Infof("Initialized %s variant (spritesheet %dx%d, surface format %v)",
			variant, SpritesheetResolution, SpritesheetResolution, config.Format)
		return e, nil
	}
}

func (e *Example) init(config *wgpu.SurfaceConfiguration, device *wgpu.Device) error {
	var err error

	e.vertexBuffer, err = device.CreateBuffer(vertexBufferDescriptor())
	if err != nil {
		return errors.Wrap(err, "create vertex_buffer")
	}

	e.module, err = device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "shader_module",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.WGSL},
	})
	if err != nil {
		return errors.Wrap(err, "create shader_module")
	}

	e.quadPipelineLayout, err = device.CreatePipelineLayout(quadPipelineLayoutDescriptor())
	if err != nil {
		return errors.Wrap(err, "create quad_pipeline_layout")
	}
	e.quadPipeline, err = device.CreateRenderPipeline(quadPipelineDescriptor(e.quadPipelineLayout, e.module))
	if err != nil {
		return errors.Wrap(err, "create quad_pipeline")
	}

	if e.variant.usesBlit() {
		e.blitBindGroupLayout, err = device.CreateBindGroupLayout(blitBindGroupLayoutDescriptor())
		if err != nil {
			return errors.Wrap(err, "create blit_bind_group_layout")
		}
		e.blitPipelineLayout, err = device.CreatePipelineLayout(blitPipelineLayoutDescriptor(e.blitBindGroupLayout))
		if err != nil {
			return errors.Wrap(err, "create blit_pipeline_layout")
		}
		e.blitPipeline, err = device.CreateRenderPipeline(blitPipelineDescriptor(e.blitPipelineLayout, e.module, config.Format))
		if err != nil {
			return errors.Wrap(err, "create blit_pipeline")
		}
	}

	e.spritesheet, err = device.CreateTexture(spritesheetDescriptor())
	if err != nil {
		return errors.Wrap(err, "create spritesheet")
	}
	e.spritesheetView, err = e.spritesheet.CreateView(nil)
	if err != nil {
		return errors.Wrap(err, "create spritesheet view")
	}

	if e.variant.usesBlit() {
		e.blitBindGroup, err = device.CreateBindGroup(blitBindGroupDescriptor(e.blitBindGroupLayout, e.spritesheetView))
		if err != nil {
			return errors.Wrap(err, "create blit_bind_group")
		}
	}
	return nil
}

func (e *Example) Resize(_ *wgpu.SurfaceConfiguration, _ *wgpu.Device, _ *wgpu.Queue) {}

func (e *Example) Update(event framework.Event) {
	if event.Kind == framework.EventResized {
		e.logger.Debugf("Surface now %dx%d", event.Width, event.Height)
	}
}

func (e *Example) Render(frame *framework.Frame) {
	encoder, err := frame.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "frame_encoder",
	})
	if err != nil {
		frame.Report("frame_encoder", err)
		return
	}
	defer encoder.Release()

	quad := encoder.BeginRenderPass(quadPassDescriptor(e.spritesheetView, e.counter.LoadOp()))
	quad.SetVertexBuffer(0, e.vertexBuffer, 0, wgpu.WholeSize)
	quad.SetPipeline(e.quadPipeline)
	instance := e.counter.InstanceIndex()
	quad.Draw(quadVertexCount, 1, 0, instance)
	e.counter.Advance()
	frame.Report("quad_rpass", quad.End())
	quad.Release()

	blit := encoder.BeginRenderPass(blitPassDescriptor(frame.View))
	if e.variant.usesBlit() {
		blit.SetVertexBuffer(0, e.vertexBuffer, 0, wgpu.WholeSize)
		blit.SetPipeline(e.blitPipeline)
		blit.SetBindGroup(0, e.blitBindGroup, nil)
		blit.Draw(quadVertexCount, 1, 0, 0)
	}
	frame.Report("blit_rpass", blit.End())
	blit.Release()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		frame.Report("frame_encoder", err)
		return
	}
	defer cmd.Release()
	frame.Queue.Submit(cmd)
}

// Counter returns the number of frames rendered so far, saturated.
func (e *Example) Counter() uint32 { return e.counter.Value() }

func (e *Example) Release() {
	if e.blitBindGroup != nil {
		e.blitBindGroup.Release()
		e.blitBindGroup = nil
	}
	if e.spritesheetView != nil {
		e.spritesheetView.Release()
		e.spritesheetView = nil
	}
	if e.spritesheet != nil {
		e.spritesheet.Release()
		e.spritesheet = nil
	}
	if e.blitPipeline != nil {
		e.blitPipeline.Release()
		e.blitPipeline = nil
	}
	if e.blitPipelineLayout != nil {
		e.blitPipelineLayout.Release()
		e.blitPipelineLayout = nil
	}
	if e.blitBindGroupLayout != nil {
		e.blitBindGroupLayout.Release()
		e.blitBindGroupLayout = nil
	}
	if e.quadPipeline != nil {
		e.quadPipeline.Release()
		e.quadPipeline = nil
	}
	if e.quadPipelineLayout != nil {
		e.quadPipelineLayout.Release()
		e.quadPipelineLayout = nil
	}
	if e.module != nil {
		e.module.Release()
		e.module = nil
	}
	if e.vertexBuffer != nil {
		e.vertexBuffer.Release()
		e.vertexBuffer = nil
	}
}
