package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical viewer action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionSprint
	ActionQuit
	ActionSelectBlock1
	ActionSelectBlock2
	ActionSelectBlock3
	ActionSelectBlock4
	ActionSelectBlock5
	ActionToggleWireframe
	ActionToggleProfiling
	ActionToggleCollision
	ActionExportOBJ
	ActionRemoveBlock
	ActionPlaceBlock
	ActionCount // sentinel for array sizing
)

// InputManager maps GLFW keys and mouse buttons to actions and tracks
// per-frame press edges. Callbacks may arrive from GLFW while the game
// loop reads state, so access is guarded.
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	for key, action := range map[glfw.Key]Action{
		glfw.KeyW:           ActionMoveForward,
		glfw.KeyS:           ActionMoveBackward,
		glfw.KeyA:           ActionMoveLeft,
		glfw.KeyD:           ActionMoveRight,
		glfw.KeySpace:       ActionMoveUp,
		glfw.KeyLeftShift:   ActionMoveDown,
		glfw.KeyLeftControl: ActionSprint,
		glfw.KeyEscape:      ActionQuit,
		glfw.Key1:           ActionSelectBlock1,
		glfw.Key2:           ActionSelectBlock2,
		glfw.Key3:           ActionSelectBlock3,
		glfw.Key4:           ActionSelectBlock4,
		glfw.Key5:           ActionSelectBlock5,
		glfw.KeyF:           ActionToggleWireframe,
		glfw.KeyV:           ActionToggleProfiling,
		glfw.KeyC:           ActionToggleCollision,
		glfw.KeyP:           ActionExportOBJ,
	} {
		im.BindKey(key, action)
	}
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionRemoveBlock)
	im.BindMouseButton(glfw.MouseButtonRight, ActionPlaceBlock)
	return im
}

func validAction(a Action) bool {
	return a >= 0 && a < ActionCount
}

// BindKey adds an action to a key. A key may drive several actions and an
// action may have several keys.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if !validAction(action) {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToActions, key)
}

// BindMouseButton adds an action to a mouse button
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if !validAction(action) {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent applies a GLFW key event. Repeat counts as held.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.keyToActions[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent applies a GLFW mouse button event.
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.mouseButtonToActions[button], action == glfw.Press)
}

// apply records edges as the event arrives; callers hold mu.
func (im *InputManager) apply(actions []Action, pressed bool) {
	for _, act := range actions {
		if pressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !pressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = pressed
	}
}

// Attach installs key and mouse button callbacks on the window.
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
}

// PostUpdate clears the edge flags; call it once at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	clear(im.justPressed[:])
	clear(im.justReleased[:])
}

// IsActive reports whether the action is held down
func (im *InputManager) IsActive(action Action) bool {
	if !validAction(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed reports whether the action was pressed this frame
func (im *InputManager) JustPressed(action Action) bool {
	if !validAction(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// JustReleased reports whether the action was released this frame
func (im *InputManager) JustReleased(action Action) bool {
	if !validAction(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}

// SelectedBlockSlot returns the index of the block-select action pressed
// this frame, or -1.
func (im *InputManager) SelectedBlockSlot() int {
	for i, a := range []Action{ActionSelectBlock1, ActionSelectBlock2, ActionSelectBlock3, ActionSelectBlock4, ActionSelectBlock5} {
		if im.JustPressed(a) {
			return i
		}
	}
	return -1
}
