package framework

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Run opens a window, brings up a wgpu device for it and drives example
// frames until the window closes or cfg.MaxFrames frames were rendered.
// It must be called from the main goroutine with the OS thread locked.
func Run(cfg Config, logger Logger, initFn InitFunc) error {
	logger = orNop(logger)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ws, err := createWindowState(cfg)
	if err != nil {
		return err
	}
	defer ws.destroy()

	g, err := createGpuState(ws, cfg)
	if err != nil {
		return err
	}
	defer g.release()
	logger.Infof("Created %dx%d surface (format %v, present mode %s)",
		g.surfaceConfig.Width, g.surfaceConfig.Height, g.surfaceConfig.Format, cfg.PresentMode)

	example, err := initFn(g.surfaceConfig, g.adapter, g.device, g.queue)
	if err != nil {
		return errors.Wrap(err, "init example")
	}
	defer example.Release()

	recorder := NewValidationRecorder(logger)
	profiler := NewProfiler()
	var frame uint64

	for cfg.MaxFrames == 0 || frame < cfg.MaxFrames {
		if ws.window.ShouldClose() {
			break
		}
		glfw.PollEvents()
		for _, e := range ws.events.drain() {
			if closeRequested(e) {
				ws.window.SetShouldClose(true)
			}
			if e.Kind == EventResized && g.resize(e.Width, e.Height) {
				logger.Debugf("Surface resized to %dx%d", e.Width, e.Height)
				example.Resize(g.surfaceConfig, g.device, g.queue)
			}
			example.Update(e)
		}
		if ws.window.ShouldClose() {
			break
		}
		if !g.drawable() {
			glfw.WaitEvents()
			continue
		}

		if renderFrame(g, example, recorder, profiler, frame) {
			frame++
		}
		profiler.SetCount("validation", recorder.Total())
		if stats, ok := profiler.Report(cfg.StatsInterval); ok {
			logger.Debugf("Frame stats: %s", stats)
		}
	}

	logger.Infof("Rendered %d frame(s); %s", frame, recorder.Summary())
	return nil
}

func renderFrame(g *gpuState, example Example, recorder *ValidationRecorder, profiler *Profiler, index uint64) bool {
	profiler.BeginScope("acquire")
	texture, view, err := g.acquire()
	profiler.EndScope("acquire")
	if err != nil {
		recorder.Record(index, "acquire", err)
		return false
	}
	defer texture.Release()
	defer view.Release()

	profiler.BeginScope("render")
	example.Render(NewFrame(view, g.device, g.queue, index, recorder))
	profiler.EndScope("render")

	profiler.BeginScope("present")
	g.surface.Present()
	profiler.EndScope("present")

	profiler.FrameDone()
	return true
}
