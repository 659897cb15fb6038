package config

import "sync"

// WorldGenSettings holds world generation configuration
type WorldGenSettings struct {
	mu    sync.RWMutex
	caves bool
	trees bool
}

var globalWorldGenSettings = &WorldGenSettings{
	caves: true, // Caves enabled by default
	trees: true,
}

// GetCaves returns whether caves are enabled
func GetCaves() bool {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.caves
}

// SetCaves sets whether caves are enabled
func SetCaves(enabled bool) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.caves = enabled
}

// GetTrees returns whether trees are planted
func GetTrees() bool {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.trees
}

// SetTrees sets whether trees are planted
func SetTrees(enabled bool) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.trees = enabled
}
