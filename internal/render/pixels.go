package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"lifeviz/pkg/geom"
)

// ImageCanvas paints into an in-memory RGBA image. Pixels outside the image
// are clipped.
type ImageCanvas struct {
	img  *image.RGBA
	col  color.RGBA
	face font.Face
}

// NewImageCanvas allocates a width x height canvas.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		col:  color.RGBA{A: 255},
		face: basicfont.Face7x13,
	}
}

// Image returns the painted image.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// SetColor selects the color for subsequent fills.
func (c *ImageCanvas) SetColor(col color.Color) {
	r, g, b, a := col.RGBA()
	c.col = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// FillRect paints r.
func (c *ImageCanvas) FillRect(r geom.Rect) {
	b := c.img.Bounds()
	r = r.Intersect(geom.Rect{X: b.Min.X, Y: b.Min.Y, W: b.Dx(), H: b.Dy()})
	for y := r.Y; y < r.Y+r.H; y++ {
		c.fillRow(y, r.X, r.X+r.W-1)
	}
}

// FillSpans paints every span.
func (c *ImageCanvas) FillSpans(spans []geom.Span) {
	b := c.img.Bounds()
	for _, s := range spans {
		if s.Y < b.Min.Y || s.Y >= b.Max.Y {
			continue
		}
		c.fillRow(s.Y, max(s.X0, b.Min.X), min(s.X1, b.Max.X-1))
	}
}

func (c *ImageCanvas) fillRow(y, x0, x1 int) {
	if x1 < x0 {
		return
	}
	buf := c.img.Pix[c.img.PixOffset(x0, y):]
	for i := 0; i <= x1-x0; i++ {
		base := i * 4
		buf[base+0] = c.col.R
		buf[base+1] = c.col.G
		buf[base+2] = c.col.B
		buf[base+3] = c.col.A
	}
}

// DrawText draws s with the basic 7x13 face.
func (c *ImageCanvas) DrawText(s string, origin geom.Point) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.col),
		Face: c.face,
		Dot:  fixed.P(origin.X, origin.Y),
	}
	d.DrawString(s)
}

// EncodePNG writes the canvas as a PNG image.
func (c *ImageCanvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
