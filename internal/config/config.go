// Package config holds the settings shared by the demo commands.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Projection selects the camera projection kind.
type Projection string

const (
	Perspective  Projection = "perspective"
	Orthographic Projection = "orthographic"
)

// Window is the demo window geometry.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Camera describes the projection and the orbit followed by the camera.
type Camera struct {
	Projection Projection `toml:"projection"`
	FovDegrees float32    `toml:"fov_degrees"`
	// OrthoSize is the half height of the orthographic view volume.
	OrthoSize   float32 `toml:"ortho_size"`
	Near        float32 `toml:"near"`
	Far         float32 `toml:"far"`
	OrbitRadius float32 `toml:"orbit_radius"`
	OrbitHeight float32 `toml:"orbit_height"`
	// OrbitSpeed is in radians per second.
	OrbitSpeed float32 `toml:"orbit_speed"`
}

// Grid lays out Size x Size cubes of side Cube, Spacing apart.
type Grid struct {
	Size    int     `toml:"size"`
	Spacing float32 `toml:"spacing"`
	Cube    float32 `toml:"cube"`
}

// Culling selects the bounding volume and plane normalization.
type Culling struct {
	// Spheres classifies bounding spheres instead of boxes.
	Spheres   bool `toml:"spheres"`
	Normalize bool `toml:"normalize"`
}

// Map configures the top-down PNG written by cullmap.
type Map struct {
	Output string  `toml:"output"`
	Size   int     `toml:"size"`
	Angle  float32 `toml:"angle"`
}

// Config is the full settings file.
type Config struct {
	Window  Window  `toml:"window"`
	Camera  Camera  `toml:"camera"`
	Grid    Grid    `toml:"grid"`
	Culling Culling `toml:"culling"`
	Map     Map     `toml:"map"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Title: "Craft3D (OpenGL)"},
		Camera: Camera{
			Projection:  Perspective,
			FovDegrees:  45,
			OrthoSize:   10,
			Near:        0.1,
			Far:         100,
			OrbitRadius: 12,
			OrbitHeight: 4,
			OrbitSpeed:  0.5,
		},
		Grid:    Grid{Size: 21, Spacing: 2, Cube: 1},
		Culling: Culling{Normalize: true},
		Map:     Map{Output: "cullmap.png", Size: 512},
	}
}

// Load reads a TOML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every out of range setting.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	switch c.Camera.Projection {
	case Perspective:
		if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
			errs = append(errs, fmt.Errorf("fov_degrees %v must be in (0, 180)", c.Camera.FovDegrees))
		}
		if c.Camera.Near <= 0 {
			errs = append(errs, fmt.Errorf("near %v must be positive for a perspective camera", c.Camera.Near))
		}
	case Orthographic:
		if c.Camera.OrthoSize <= 0 {
			errs = append(errs, fmt.Errorf("ortho_size %v must be positive", c.Camera.OrthoSize))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown projection %q", c.Camera.Projection))
	}
	if c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("far %v must be beyond near %v", c.Camera.Far, c.Camera.Near))
	}
	if c.Grid.Size <= 0 {
		errs = append(errs, fmt.Errorf("grid size %d must be positive", c.Grid.Size))
	}
	if c.Grid.Cube <= 0 || c.Grid.Cube > c.Grid.Spacing {
		errs = append(errs, fmt.Errorf("cube %v must be in (0, spacing %v]", c.Grid.Cube, c.Grid.Spacing))
	}
	if c.Culling.Spheres && !c.Culling.Normalize {
		errs = append(errs, errors.New("sphere culling requires normalize = true"))
	}
	if c.Map.Size <= 0 {
		errs = append(errs, fmt.Errorf("map size %d must be positive", c.Map.Size))
	}
	return errors.Join(errs...)
}

// Aspect returns the window aspect ratio.
func (c Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}
