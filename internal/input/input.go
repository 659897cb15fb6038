package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical engine action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionRemoveVoxel
	ActionPlaceVoxel
	ActionOrthoDebug
	ActionToggleWireframe
	ActionQuit
	ActionMouseLeft
	ActionMouseRight
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	"move_forward", "move_backward", "move_left", "move_right", "move_up", "move_down",
	"remove_voxel", "place_voxel", "ortho_debug", "toggle_wireframe", "quit",
	"mouse_left", "mouse_right",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Manager maps physical keys and buttons to actions and tracks press edges.
// A held key reports JustPressed exactly once, on the frame it went down;
// key repeat events do not re-trigger it.
type Manager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// cursor tracking for mouse look
	firstMouse bool
	lastX      float64
	lastY      float64
	deltaX     float64
	deltaY     float64
}

// NewManager creates a Manager with default bindings
func NewManager() *Manager {
	m := &Manager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
		firstMouse:           true,
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeySpace, ActionMoveUp)
	m.BindKey(glfw.KeyLeftShift, ActionMoveDown)
	m.BindKey(glfw.KeyG, ActionRemoveVoxel)
	m.BindKey(glfw.KeyH, ActionPlaceVoxel)
	m.BindKey(glfw.KeyV, ActionOrthoDebug)
	m.BindKey(glfw.KeyF, ActionToggleWireframe)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	m.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)
	m.BindMouseButton(glfw.MouseButtonRight, ActionMouseRight)

	return m
}

// BindKey binds a physical key to an action. A key may drive several
// actions and an action may have several keys.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keyToActions, key)
}

func (m *Manager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouseButtonToActions[button] = append(m.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event. It can be called from a custom key
// callback.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.RLock()
	actions, ok := m.keyToActions[key]
	m.mu.RUnlock()
	if !ok {
		return
	}
	m.apply(actions, action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent processes a mouse button event.
func (m *Manager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	m.mu.RLock()
	actions, ok := m.mouseButtonToActions[button]
	m.mu.RUnlock()
	if !ok {
		return
	}
	m.apply(actions, action == glfw.Press)
}

func (m *Manager) apply(actions []Action, pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, act := range actions {
		// edges are detected as events arrive
		if pressed && !m.currentState[act] {
			m.justPressed[act] = true
		}
		if !pressed && m.currentState[act] {
			m.justReleased[act] = true
		}
		m.currentState[act] = pressed
	}
}

// HandleCursorPos accumulates cursor movement since the last frame. The
// first sample only establishes the reference position.
func (m *Manager) HandleCursorPos(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.firstMouse {
		m.lastX, m.lastY = x, y
		m.firstMouse = false
		return
	}
	m.deltaX += x - m.lastX
	m.deltaY += y - m.lastY
	m.lastX, m.lastY = x, y
}

// MouseDelta returns cursor movement accumulated during the current frame.
func (m *Manager) MouseDelta() (dx, dy float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.deltaX, m.deltaY
}

// ResetMouse forgets the reference cursor position, e.g. after the cursor
// was recaptured.
func (m *Manager) ResetMouse() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.firstMouse = true
	m.deltaX, m.deltaY = 0, 0
}

// Attach installs the GLFW callbacks for this manager. Call once after the
// window is created.
func (m *Manager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		m.HandleCursorPos(x, y)
	})
}

// PostUpdate must be called at the end of each frame, after all input
// checks are done.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range ActionCount {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
	m.deltaX, m.deltaY = 0, 0
}

// IsActive returns true while the action is held down
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[action]
}

// JustPressed returns true only on the frame the action went down
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// JustReleased returns true only on the frame the action went up
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}
