package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestJustPressedFiresOncePerPress(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeyG, glfw.Press)
	assert.True(t, m.JustPressed(ActionRemoveVoxel))
	assert.True(t, m.IsActive(ActionRemoveVoxel))
	m.PostUpdate()

	// held across frames, with repeats
	for i := 0; i < 3; i++ {
		m.HandleKeyEvent(glfw.KeyG, glfw.Repeat)
		assert.False(t, m.JustPressed(ActionRemoveVoxel), "frame %d", i)
		assert.True(t, m.IsActive(ActionRemoveVoxel))
		m.PostUpdate()
	}

	m.HandleKeyEvent(glfw.KeyG, glfw.Release)
	assert.True(t, m.JustReleased(ActionRemoveVoxel))
	assert.False(t, m.IsActive(ActionRemoveVoxel))
	m.PostUpdate()
	assert.False(t, m.JustReleased(ActionRemoveVoxel))

	m.HandleKeyEvent(glfw.KeyG, glfw.Press)
	assert.True(t, m.JustPressed(ActionRemoveVoxel), "a new press fires again")
}

func TestDefaultBindings(t *testing.T) {
	tests := []struct {
		key    glfw.Key
		action Action
	}{
		{glfw.KeyW, ActionMoveForward},
		{glfw.KeyS, ActionMoveBackward},
		{glfw.KeyA, ActionMoveLeft},
		{glfw.KeyD, ActionMoveRight},
		{glfw.KeyG, ActionRemoveVoxel},
		{glfw.KeyH, ActionPlaceVoxel},
		{glfw.KeyV, ActionOrthoDebug},
		{glfw.KeyEscape, ActionQuit},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			m := NewManager()
			m.HandleKeyEvent(tt.key, glfw.Press)
			assert.True(t, m.IsActive(tt.action))
		})
	}
}

func TestUnboundAndInvalid(t *testing.T) {
	m := NewManager()
	m.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		assert.False(t, m.IsActive(a), a.String())
	}
	assert.False(t, m.JustPressed(ActionCount))
	assert.False(t, m.IsActive(-1))
	assert.Equal(t, "unknown", ActionCount.String())

	m.UnbindKey(glfw.KeyG)
	m.HandleKeyEvent(glfw.KeyG, glfw.Press)
	assert.False(t, m.IsActive(ActionRemoveVoxel))
}

func TestMouseButtons(t *testing.T) {
	m := NewManager()
	m.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	assert.True(t, m.JustPressed(ActionMouseRight))
	m.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Release)
	assert.False(t, m.IsActive(ActionMouseRight))
}

func TestMouseDelta(t *testing.T) {
	m := NewManager()
	m.HandleCursorPos(100, 100)
	dx, dy := m.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	m.HandleCursorPos(110, 95)
	m.HandleCursorPos(115, 90)
	dx, dy = m.MouseDelta()
	assert.Equal(t, 15.0, dx)
	assert.Equal(t, -10.0, dy)

	m.PostUpdate()
	dx, dy = m.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	m.ResetMouse()
	m.HandleCursorPos(0, 0)
	dx, _ = m.MouseDelta()
	assert.Zero(t, dx)
}
