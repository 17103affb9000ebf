// Command cullmap renders a top-down PNG of the demo scene with every cube
// colored by its frustum classification.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/fulldump/frustum"
	"github.com/fulldump/frustum/internal/config"
	"github.com/fulldump/frustum/internal/raster"
	"github.com/fulldump/frustum/internal/scene"
)

var (
	background   = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	insideColor  = color.RGBA{R: 255, G: 255, A: 255}
	partialColor = color.RGBA{R: 255, G: 102, A: 255}
	outsideColor = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	cameraColor  = color.RGBA{R: 220, G: 40, B: 40, A: 255}
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		slog.Error(err.Error())
		os.Exit(2)
	}

	stats, err := run(cfg)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	slog.Info("map written", "path", cfg.Map.Output,
		"inside", stats.Inside, "partial", stats.Partial, "outside", stats.Outside)
}

// loadConfig parses the command line and applies only the flags that were
// given on top of the config file.
func loadConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("cullmap", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	out := fs.String("out", "", "output PNG (overrides map.output)")
	angle := fs.Float64("angle", 0, "camera orbit angle in radians (overrides map.angle)")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Map.Output = *out
		case "angle":
			cfg.Map.Angle = float32(*angle)
		}
	})
	return cfg, nil
}

func run(cfg config.Config) (scene.Stats, error) {
	objects := scene.Grid(cfg.Grid.Size, cfg.Grid.Spacing, cfg.Grid.Cube)
	camera := scene.NewCamera(cfg.Camera)
	camera.Advance(cfg.Map.Angle)

	vp := scene.Projection(cfg.Camera, cfg.Aspect()).Mul4(camera.View())
	culler := frustum.New(vp, cfg.Culling.Normalize)
	results, stats := scene.Cull(culler, objects, cfg.Culling.Spheres, nil)

	img := render(cfg, camera, objects, results)

	f, err := os.Create(cfg.Map.Output)
	if err != nil {
		return stats, fmt.Errorf("create map: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return stats, fmt.Errorf("encode map: %w", err)
	}
	return stats, f.Close()
}

func render(cfg config.Config, camera *scene.Camera, objects []scene.Object, results []frustum.Intersection) *image.RGBA {
	size := cfg.Map.Size
	// leave room for the camera, which orbits outside the grid
	extent := max(scene.Extent(cfg.Grid.Size, cfg.Grid.Spacing, cfg.Grid.Cube), camera.Radius) * 1.1

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	raster.FillRect(img, 0, 0, size-1, size-1, background)

	for i, o := range objects {
		col := outsideColor
		switch results[i] {
		case frustum.Inside:
			col = insideColor
		case frustum.Partial:
			col = partialColor
		}
		x0, y0 := scene.TopDown(o.Box.Min, extent, size)
		x1, y1 := scene.TopDown(o.Box.Max, extent, size)
		raster.FillRect(img, x0, y0, x1, y1, col)
	}

	eye := camera.Eye()
	ex, ey := scene.TopDown(eye, extent, size)
	raster.DrawRect(img, ex-2, ey-2, ex+2, ey+2, cameraColor)

	if cfg.Camera.Projection == config.Perspective {
		// horizontal half angle of the view
		half := math32.Atan(math32.Tan(mgl32.DegToRad(cfg.Camera.FovDegrees)/2) * cfg.Aspect())
		forward := camera.Target.Sub(eye)
		forward[1] = 0
		forward = forward.Normalize().Mul(2 * extent)
		for _, a := range []float32{-half, half} {
			tip := eye.Add(scene.RotateY(forward, a))
			tx, ty := scene.TopDown(tip, extent, size)
			raster.DrawLine(img, ex, ey, tx, ty, cameraColor)
		}
	}
	return img
}
