package framework

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type EventKind int

const (
	EventResized EventKind = iota
	EventKey
	EventMouseButton
	EventCursorMoved
	EventCloseRequested
)

func (k EventKind) String() string {
	switch k {
	case EventResized:
		return "resized"
	case EventKey:
		return "key"
	case EventMouseButton:
		return "mouse-button"
	case EventCursorMoved:
		return "cursor-moved"
	case EventCloseRequested:
		return "close-requested"
	}
	return "unknown"
}

// Event is a window event forwarded to Example.Update. Only the fields for
// its Kind are set.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
	Key    glfw.Key
	Button glfw.MouseButton
	Action glfw.Action
	Mods   glfw.ModifierKey
	X, Y   float64
}

func (e Event) IsKeyPress(key glfw.Key) bool {
	return e.Kind == EventKey && e.Key == key && e.Action == glfw.Press
}

func resizeEvent(width, height int) Event {
	return Event{Kind: EventResized, Width: width, Height: height}
}

func keyEvent(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) Event {
	return Event{Kind: EventKey, Key: key, Action: action, Mods: mods}
}

func mouseButtonEvent(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) Event {
	return Event{Kind: EventMouseButton, Button: button, Action: action, Mods: mods}
}

func cursorEvent(x, y float64) Event {
	return Event{Kind: EventCursorMoved, X: x, Y: y}
}

// eventQueue buffers callback events until the loop drains them after
// PollEvents.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(e Event) {
	q.events = append(q.events, e)
}

func (q *eventQueue) drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// closeRequested reports whether e should end the loop.
func closeRequested(e Event) bool {
	return e.Kind == EventCloseRequested || e.IsKeyPress(glfw.KeyEscape)
}
