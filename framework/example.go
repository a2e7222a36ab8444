package framework

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Example is a program driven by Run. Init happens in the InitFunc; the
// remaining callbacks run on the main thread, once per event or frame.
type Example interface {
	Resize(config *wgpu.SurfaceConfiguration, device *wgpu.Device, queue *wgpu.Queue)
	Update(event Event)
	Render(frame *Frame)
	Release()
}

type InitFunc func(config *wgpu.SurfaceConfiguration, adapter *wgpu.Adapter, device *wgpu.Device, queue *wgpu.Queue) (Example, error)

// Frame carries the per-frame targets passed to Example.Render.
type Frame struct {
	View   *wgpu.TextureView
	Device *wgpu.Device
	Queue  *wgpu.Queue
	Index  uint64

	recorder *ValidationRecorder
}

func NewFrame(view *wgpu.TextureView, device *wgpu.Device, queue *wgpu.Queue, index uint64, recorder *ValidationRecorder) *Frame {
	return &Frame{
		View:     view,
		Device:   device,
		Queue:    queue,
		Index:    index,
		recorder: recorder,
	}
}

// Report hands a GPU error raised while recording stage to the run's
// validation recorder. Nil errors are ignored.
func (f *Frame) Report(stage string, err error) {
	if err == nil || f.recorder == nil {
		return
	}
	f.recorder.Record(f.Index, stage, err)
}
