// Command toryn shows the raster demos and scene files in the terminal, or
// renders one of them to a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"toryn/internal/demo"
	"toryn/internal/geom"
	"toryn/internal/render"
	"toryn/internal/scene"
	"toryn/internal/tui"
	"toryn/internal/window"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (.wkt, .geojson, .csv, .kml)")
		pngPath   = flag.String("png", "", "render headlessly to this PNG file and exit")
		demoName  = flag.String("demo", "lines", "demo rendered by -png when no scene is given")
		width     = flag.Int("width", 300, "PNG width in pixels")
		height    = flag.Int("height", 300, "PNG height in pixels")
		scale     = flag.Int("scale", 1, "PNG pixel enlargement")
		method    = flag.String("method", "midpoint", "line rasterizer: midpoint or incremental")
		steps     = flag.Int("steps", 100, "samples of the interactive curve")
		logPath   = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	m, err := geom.ParseMethod(*method)
	if err != nil {
		log.Fatal(err)
	}
	if *scenePath == "" && flag.NArg() > 0 {
		*scenePath = flag.Arg(0)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		render.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else if *pngPath != "" {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	}

	if *pngPath != "" {
		if err := export(*pngPath, *scenePath, *demoName, window.Options{Width: *width, Height: *height, Method: m, Steps: *steps}, *scale); err != nil {
			log.Fatal(err)
		}
		return
	}

	model := tui.New(tui.Options{Method: m, Steps: *steps, Path: *scenePath})
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

// export renders a scene file, or the named demo, into a PNG.
func export(out, scenePath, demoName string, opts window.Options, scale int) error {
	w := window.New(opts)
	if scenePath != "" {
		sc, err := scene.Load(scenePath)
		if err != nil {
			return err
		}
		w.Show(demo.FromScene(filepath.Base(scenePath), sc))
	} else {
		found := false
		for i, d := range demo.All() {
			if d.Name() == demoName {
				w.Select(i)
				found = true
			}
		}
		if !found {
			return fmt.Errorf("unknown demo %q", demoName)
		}
	}
	// rejected primitives are logged; the rest of the frame is still saved
	img, _ := w.Render()
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := img.WritePNG(f, scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("%s saved to %s (%dx%d)", w.Active().Name(), out, opts.Width*max(scale, 1), opts.Height*max(scale, 1))
	return nil
}
