package graphics

import (
	"log"
	"sync"

	"mini-voxel/internal/graphics/atlas"
)

var (
	textureCache = make(map[string]uint32)
	cacheMutex   sync.RWMutex
)

// GetAtlasTexture returns a cached block atlas texture for path. A missing
// file falls back to the generated atlas only when allowGenerated is set;
// the fallback is cached under the same path.
func GetAtlasTexture(path string, allowGenerated bool) (uint32, error) {
	cacheMutex.RLock()
	if tex, ok := textureCache[path]; ok {
		cacheMutex.RUnlock()
		return tex, nil
	}
	cacheMutex.RUnlock()

	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	// Double check locking
	if tex, ok := textureCache[path]; ok {
		return tex, nil
	}

	img, generated, err := atlas.LoadOrGenerate(path, allowGenerated)
	if err != nil {
		return 0, err
	}
	if generated {
		log.Printf("atlas %q not found, using generated atlas", path)
	}

	tex := UploadRGBA(img, true)
	textureCache[path] = tex
	return tex, nil
}

// ReleaseTextures deletes every cached texture.
func ReleaseTextures() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	for path, tex := range textureCache {
		DeleteTexture(tex)
		delete(textureCache, path)
	}
}
