package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mini-voxel/internal/noise"
)

// EnvConfigPath names the environment variable consulted when no config
// path is given.
const EnvConfigPath = "MINI_VOXEL_CONFIG"

var ErrInvalid = errors.New("config: invalid value")

// Config is the file-backed start-up configuration. Runtime-tunable render
// settings live in the package-level getters and setters instead.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Picking PickingConfig `yaml:"picking"`
	Assets  AssetsConfig  `yaml:"assets"`

	// MetricsAddr enables the Prometheus endpoint, e.g. ":2112".
	MetricsAddr string `yaml:"metrics_addr"`
}

type WorldConfig struct {
	// Size is the half-width in chunks; the world spans [-Size, Size).
	Size    int    `yaml:"size"`
	Seed    int64  `yaml:"seed"`
	Noise   string `yaml:"noise"`
	Workers int    `yaml:"workers"`
	Caves   bool   `yaml:"caves"`
	Trees   bool   `yaml:"trees"`
}

type WindowConfig struct {
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	FPSLimit int  `yaml:"fps_limit"`
	VSync    bool `yaml:"vsync"`
}

type CameraConfig struct {
	FOV        float32    `yaml:"fov"`
	Near       float32    `yaml:"near"`
	Speed      float32    `yaml:"speed"`
	MouseSpeed float32    `yaml:"mouse_speed"`
	Start      [3]float32 `yaml:"start"`
	Pitch      float32    `yaml:"pitch"`
	// SpawnAboveGround lifts the start position onto the terrain surface.
	SpawnAboveGround bool `yaml:"spawn_above_ground"`
}

type PickingConfig struct {
	Step  float32 `yaml:"step"`
	Reach float32 `yaml:"reach"`
}

type AssetsConfig struct {
	Atlas string `yaml:"atlas"`
	// GenerateAtlas draws the block atlas in code when the atlas file is
	// missing. Off by default so a bad path fails loudly.
	GenerateAtlas bool `yaml:"generate_atlas"`
	// Font is an OpenType file for the stats overlay. Empty selects the
	// built-in bitmap font.
	Font     string `yaml:"font"`
	FontSize int    `yaml:"font_size"`
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Size:    2,
			Seed:    noise.DefaultSeed,
			Noise:   noise.BackendOpenSimplex,
			Workers: 1,
			Caves:   true,
			Trees:   true,
		},
		Window: WindowConfig{
			Width:    1440,
			Height:   900,
			FPSLimit: 144,
		},
		Camera: CameraConfig{
			FOV:        90,
			Near:       0.1,
			Speed:      4,
			MouseSpeed: 0.005,
			Start:      [3]float32{-5, 10, 0},
			Pitch:      -0.45,
		},
		Picking: PickingConfig{
			Step:  0.01,
			Reach: 4,
		},
		Assets: AssetsConfig{
			Atlas:    "assets/textures/atlas.png",
			FontSize: 13,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path falls back to
// MINI_VOXEL_CONFIG; with neither set the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.World.Size <= 0:
		return fmt.Errorf("%w: world.size must be positive, got %d", ErrInvalid, c.World.Size)
	case c.World.Workers < 1:
		return fmt.Errorf("%w: world.workers must be at least 1, got %d", ErrInvalid, c.World.Workers)
	case c.Picking.Step <= 0:
		return fmt.Errorf("%w: picking.step must be positive", ErrInvalid)
	case c.Picking.Reach <= 0:
		return fmt.Errorf("%w: picking.reach must be positive", ErrInvalid)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera.fov must be in (0, 180)", ErrInvalid)
	case c.Assets.FontSize <= 0:
		return fmt.Errorf("%w: assets.font_size must be positive", ErrInvalid)
	case c.Assets.Atlas == "" && !c.Assets.GenerateAtlas:
		return fmt.Errorf("%w: assets.atlas is empty and generate_atlas is off", ErrInvalid)
	}
	if _, err := noise.New(c.World.Noise, c.World.Seed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Apply pushes the runtime-tunable parts of c into the global settings.
func (c *Config) Apply() {
	SetFPSLimit(c.Window.FPSLimit)
	SetCaves(c.World.Caves)
	SetTrees(c.World.Trees)
}
