package config

import "sync"

// RenderSettings holds render configuration
type RenderSettings struct {
	mu          sync.RWMutex
	fpsLimit    int // 0 disables the limiter
	orthoDebug  bool
	wireframe   bool
	showPicker  bool
	titleStats  bool
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:   144,
	showPicker: true,
	titleStats: true,
}

// GetFPSLimit returns the frame cap; 0 means uncapped.
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	globalRenderSettings.fpsLimit = limit
}

// GetOrthoDebug reports whether the top-down culling debug view is active.
func GetOrthoDebug() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.orthoDebug
}

func SetOrthoDebug(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.orthoDebug = enabled
}

func GetWireframe() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.wireframe
}

func SetWireframe(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = enabled
}

// GetShowPicker reports whether the targeted voxel is highlighted.
func GetShowPicker() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.showPicker
}

func SetShowPicker(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showPicker = enabled
}

// GetTitleStats reports whether FPS and culling stats go to the window title.
func GetTitleStats() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.titleStats
}

func SetTitleStats(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.titleStats = enabled
}
