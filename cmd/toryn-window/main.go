// Command toryn-window shows the raster demos in a desktop window.
// Keys 1-5 select a demo, M toggles the line method, C clears the curve and
// a left click adds a curve control point.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"toryn/internal/demo"
	"toryn/internal/geom"
	"toryn/internal/render"
	"toryn/internal/scene"
	"toryn/internal/window"
)

var demoKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

type game struct {
	win       *window.Window
	offscreen *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for i, k := range demoKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.win.Select(i)
			ebiten.SetWindowTitle("toryn: " + g.win.Active().Name())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.win.ToggleMethod()
		slog.Info("method", "method", g.win.Method())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.win.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.win.Click(ebiten.CursorPosition())
	}
	g.win.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	img, _ := g.win.Render()
	g.offscreen.WritePixels(img.RGBA.Pix)
	screen.DrawImage(g.offscreen, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.win.Size()
}

func main() {
	var (
		width   = flag.Int("width", 500, "window width")
		height  = flag.Int("height", 500, "window height")
		method  = flag.String("method", "midpoint", "line rasterizer: midpoint or incremental")
		steps   = flag.Int("steps", 100, "samples of the interactive curve")
		verbose = flag.Bool("v", false, "log every draw call")
	)
	flag.Parse()

	m, err := geom.ParseMethod(*method)
	if err != nil {
		log.Fatal(err)
	}
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	win := window.New(window.Options{Width: *width, Height: *height, Method: m, Steps: *steps})
	if flag.NArg() > 0 {
		sc, err := scene.Load(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		win.Show(demo.FromScene(filepath.Base(flag.Arg(0)), sc))
	}

	w, h := win.Size()
	g := &game{win: win, offscreen: ebiten.NewImage(w, h)}
	ebiten.SetWindowTitle("toryn: " + win.Active().Name())
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
