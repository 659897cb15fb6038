package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"mini-voxel/internal/config"
	"mini-voxel/internal/game"
	"mini-voxel/internal/graphics"
	"mini-voxel/internal/input"
	"mini-voxel/internal/metrics"
	"mini-voxel/internal/noise"
	"mini-voxel/internal/pipeline"
	"mini-voxel/internal/world"
)

const title = "mini-voxel"

// GL and GLFW calls must stay on the main thread.
func init() { runtime.LockOSThread() }

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (default $"+config.EnvConfigPath+")")
		headless   = flag.Bool("headless", false, "build the world without a window and exit")
		hold       = flag.Bool("hold", false, "headless: keep serving metrics until interrupted")
		size       = flag.Int("world-size", 0, "world half-width in chunks")
		seed       = flag.Int64("seed", 0, "noise seed")
		backend    = flag.String("noise", "", "noise backend: opensimplex, perlin or value")
		workers    = flag.Int("workers", 0, "init pass workers")
		metricsAt  = flag.String("metrics", "", "serve Prometheus metrics on this address")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	// explicitly set flags win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "world-size":
			cfg.World.Size = *size
		case "seed":
			cfg.World.Seed = *seed
		case "noise":
			cfg.World.Noise = *backend
		case "workers":
			cfg.World.Workers = *workers
		case "metrics":
			cfg.MetricsAddr = *metricsAt
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Apply()

	srv := metrics.Serve(cfg.MetricsAddr)
	closer.Bind(func() { shutdown(srv) })

	src, err := noise.New(cfg.World.Noise, cfg.World.Seed)
	if err != nil {
		closer.Fatalln(err)
	}
	w := world.New(cfg.World.Size)
	opts := pipeline.Options{Workers: cfg.World.Workers, Caves: cfg.World.Caves, Trees: cfg.World.Trees}

	if *headless {
		runHeadless(w, src, opts, *hold)
		return
	}
	runWindowed(cfg, w, src, opts)
}

func runHeadless(w *world.World, src noise.Source, opts pipeline.Options, hold bool) {
	u := &world.NopUploader{}
	stats, err := pipeline.Build(w, src, opts, u)
	if err != nil {
		closer.Fatalln(err)
	}
	for _, pass := range []string{pipeline.PassTerrain, pipeline.PassCaves, pipeline.PassTrees, pipeline.PassMeshing, pipeline.PassUpload} {
		if d, ok := stats.Passes[pass]; ok {
			log.Printf("  %-8s %v", pass, d.Round(time.Microsecond))
		}
	}
	if hold {
		closer.Hold()
		return
	}
	closer.Close()
}

func runWindowed(cfg *config.Config, w *world.World, src noise.Source, opts pipeline.Options) {
	if err := glfw.Init(); err != nil {
		closer.Fatalln(err)
	}

	window, err := game.SetupWindow(cfg.Window, title)
	if err != nil {
		glfw.Terminate()
		closer.Fatalln(err)
	}

	// uploads need the GL context, so the build runs on this thread
	u := graphics.NewGLUploader()
	if _, err := pipeline.Build(w, src, opts, u); err != nil {
		glfw.Terminate()
		closer.Fatalln(err)
	}

	session, err := game.NewSession(window, cfg, w, u)
	if err != nil {
		glfw.Terminate()
		closer.Fatalln(err)
	}

	game.NewApp(window, input.NewManager(), session, title).Run()

	// closer cleanups run off the main thread, so GL teardown happens here
	session.Cleanup()
	log.Printf("released GPU segments, %d still live", u.Live())
	glfw.Terminate()
	closer.Close()
}

func shutdown(srv *http.Server) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("metrics shutdown: %v", err)
	}
}
