package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"toryn/internal/geom"
)

// Image renders into an RGBA bitmap, white on black like the window demos.
type Image struct {
	RGBA       *image.RGBA
	Foreground color.Color
	Background color.Color
}

func NewImage(w, h int) *Image {
	img := &Image{
		RGBA:       image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1))),
		Foreground: color.White,
		Background: color.Black,
	}
	img.Clear()
	return img
}

// Viewport returns the bitmap size in pixels.
func (img *Image) Viewport() geom.Viewport {
	b := img.RGBA.Bounds()
	return geom.Viewport{Width: float32(b.Dx()), Height: float32(b.Dy())}
}

func (img *Image) Clear() {
	draw.Draw(img.RGBA, img.RGBA.Bounds(), image.NewUniform(img.Background), image.Point{}, draw.Src)
}

func (img *Image) set(x, y int) {
	img.RGBA.Set(x, y, img.Foreground)
}

func (img *Image) DrawPoints(vs []geom.Vertex, vp geom.Viewport) {
	b := img.RGBA.Bounds()
	for _, v := range vs {
		img.set(devicePixel(v, b.Dx(), b.Dy()))
	}
}

func (img *Image) DrawLineStrip(vs []geom.Vertex, vp geom.Viewport) {
	b := img.RGBA.Bounds()
	strip(vs, b.Dx(), b.Dy(), img.set)
}

// WritePNG encodes the bitmap, enlarged scale times with nearest-neighbour
// sampling so single pixels stay crisp.
func (img *Image) WritePNG(w io.Writer, scale int) error {
	var src image.Image = img.RGBA
	if scale > 1 {
		b := img.RGBA.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img.RGBA, b, xdraw.Src, nil)
		src = dst
	}
	return png.Encode(w, src)
}
