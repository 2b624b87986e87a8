// Command cluidemo compiles a clui scene into a draw list and renders it to a
// PNG with the software renderer.
//
// Usage:
//
//	cluidemo -scene ui.yaml -output ui.png
//	cluidemo -width 1024 -height 768 -v
//
// Without -scene a built-in layout is rendered.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/clui"
	"github.com/gogpu/clui/geom"
	"github.com/gogpu/clui/pipeline"
	"github.com/gogpu/clui/render"
	"github.com/gogpu/clui/scenefile"
)

func main() {
	var (
		width      = flag.Float64("width", 800, "viewport width")
		height     = flag.Float64("height", 600, "viewport height")
		scenePath  = flag.String("scene", "", "scene file (.yaml, .yml or .toml)")
		output     = flag.String("output", "clui.png", "output file")
		background = flag.String("background", "#202020", "background color")
		verbose    = flag.Bool("v", false, "debug logging")
		spirv      = flag.Bool("spirv", false, "also compile the window shader to SPIR-V")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	clui.SetLogger(logger)

	bg, ok := clui.Hex(*background)
	if !ok {
		log.Fatalf("Invalid background color %q", *background)
	}

	start := time.Now()
	tk := clui.New(
		clui.WithViewport(geom.Scalar(*width), geom.Scalar(*height)),
		clui.WithHost(clui.HostFuncs{
			ElapsedTimeFunc: func() float64 { return time.Since(start).Seconds() },
			LogMessageFunc: func(msg string) bool {
				logger.Info(msg)
				return true
			},
			ReadFileFunc: os.ReadFile,
		}),
	)

	if *scenePath != "" {
		scene, err := scenefile.LoadHost(tk.Host(), *scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
		if _, err := scene.Apply(tk); err != nil {
			log.Fatalf("Failed to apply scene: %v", err)
		}
	} else {
		buildDemo(tk)
	}

	tk.Update()
	list := tk.DrawList()

	if *spirv {
		if err := reportPipeline(); err != nil {
			log.Fatalf("Shader compilation failed: %v", err)
		}
	}

	img := render.NewImage(&list)
	render.Clear(img, bg.NRGBA())
	if err := render.NewSoftwareRenderer().Render(img, &list); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	tk.Host().LogMessage(fmt.Sprintf("Demo saved to %s (%d sets, %d vertices, %.3fs)",
		*output, len(list.Sets), list.VertexCount(), tk.Host().ElapsedTime()))
}

// buildDemo lays out a panel with a title bar and buttons, plus a tooltip
// layer above it.
func buildDemo(tk *clui.Toolkit) {
	base := tk.MustLayer(tk.CreateLayer())

	panel := base.AddWindow(clui.Window{
		Rect:            geom.FromValues(60, 60, 420, 300),
		BackgroundColor: clui.RGB(0.22, 0.25, 0.3),
	})
	base.AddWindow(clui.Window{
		Rect:            geom.FromValues(0, 0, 420, 32),
		BackgroundColor: clui.RGB(0.15, 0.4, 0.75),
		ZIndex:          1,
		Positioning:     clui.PositionRelative,
		Parent:          panel,
	})
	for i := range 3 {
		base.AddWindow(clui.Window{
			Rect:            geom.FromValues(20+geom.Scalar(i)*130, 240, 110, 36),
			BackgroundColor: clui.RGB(0.9, 0.6+0.1*float32(i), 0.2),
			ZIndex:          1,
			Positioning:     clui.PositionRelative,
			Parent:          panel,
		})
	}

	// Drawn behind the panel despite being added last.
	base.AddWindow(clui.Window{
		Rect:            geom.FromValues(40, 40, 460, 340),
		BackgroundColor: clui.RGBA(0, 0, 0, 0.4),
		ZIndex:          -1,
	})

	overlay := tk.MustLayer(tk.CreateLayer())
	overlay.AddWindow(clui.Window{
		Rect:            geom.FromValues(400, 280, 180, 60),
		BackgroundColor: clui.RGBA(1, 1, 0.85, 0.9),
	})
}

func reportPipeline() error {
	code, err := pipeline.CompileSPIRV()
	if err != nil {
		return err
	}
	desc := pipeline.NewDescriptor(nil)
	clui.Logger().Info("window pipeline",
		"spirv_words", len(code),
		"format", desc.Targets[0].Format,
		"stride", desc.Buffers[0].ArrayStride,
	)
	return nil
}

func savePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
