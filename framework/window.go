package framework

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type windowState struct {
	window *glfw.Window
	events eventQueue
}

func createWindowState(cfg Config) (*windowState, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "init glfw")
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // surface comes from wgpu, not OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}

	ws := &windowState{window: win}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		ws.events.push(resizeEvent(width, height))
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		ws.events.push(keyEvent(key, action, mods))
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		ws.events.push(mouseButtonEvent(button, action, mods))
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		ws.events.push(cursorEvent(x, y))
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		ws.events.push(Event{Kind: EventCloseRequested})
	})
	return ws, nil
}

func (ws *windowState) destroy() {
	ws.window.Destroy()
	glfw.Terminate()
}
