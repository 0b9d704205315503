//go:build ebiten

package app

import (
	"image/color"
	"io/fs"
	"log"
	"time"

	"lifeviz/internal/render"
	"lifeviz/pkg/geom"
	"lifeviz/pkg/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	cfg     layout.Config
	palette render.Palette

	lay       *layout.Layout
	layErr    error
	width     int
	height    int
	dragging  bool
	warnedFor [2]int
}

// New constructs a Game for the provided session and layout configuration.
func New(session *Session, cfg layout.Config) *Game {
	return &Game{session: session, cfg: cfg, palette: render.DefaultPalette()}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePlaying()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Randomize(time.Now().UnixNano())
	}

	g.handleDrop()
	if g.lay != nil {
		g.handleMouse()
	}

	if _, err := s.Tick(time.Now()); err != nil {
		log.Printf("step failed: %v", err)
	}
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.lay.Press(mx, my).Action == layout.ActionSlider {
			g.dragging = true
		}
	}
	if g.dragging {
		g.session.SetFraction(g.lay.Slider.Fraction(mx))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		hit := g.lay.Release(mx, my, g.session.Playing())
		if err := g.session.Apply(hit); err != nil {
			log.Printf("upload failed: %v", err)
		}
		g.dragging = false
	}
}

func (g *Game) handleDrop() {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		log.Printf("reading dropped files: %v", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := g.session.LoadFS(files, e.Name()); err != nil {
			log.Printf("loading dropped pattern: %v", err)
		}
		return
	}
}

// Draw renders the grid, the live cells and the controls.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.lay == nil {
		screen.Fill(color.White)
		text.Draw(screen, "Window too small to show the grid", basicfont.Face7x13, 8, 20, color.Black)
		return
	}
	sim := g.session.Sim()
	render.DrawFrame(&canvas{dst: screen}, render.Frame{
		Layout:   g.lay,
		Size:     sim.Size(),
		Cells:    sim.Cells(),
		Playing:  g.session.Playing(),
		Speed:    g.session.Fraction(),
		Interval: g.session.Interval(),
		Palette:  g.palette,
	})
}

// Layout reports the window size as the logical screen size and lays out
// the view whenever it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height || (g.lay == nil && g.layErr == nil) {
		g.width, g.height = outsideWidth, outsideHeight
		size := g.session.Sim().Size()
		g.lay, g.layErr = layout.New(g.cfg, outsideWidth, outsideHeight, size.H, size.W)
		if g.layErr != nil && g.warnedFor != [2]int{outsideWidth, outsideHeight} {
			g.warnedFor = [2]int{outsideWidth, outsideHeight}
			log.Printf("warning: %v", g.layErr)
		}
	}
	return outsideWidth, outsideHeight
}

// canvas paints render output onto an ebiten image.
type canvas struct {
	dst *ebiten.Image
	col color.Color
}

func (c *canvas) SetColor(col color.Color) { c.col = col }

func (c *canvas) FillRect(r geom.Rect) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.col, false)
}

func (c *canvas) FillSpans(spans []geom.Span) {
	for _, s := range spans {
		vector.DrawFilledRect(c.dst, float32(s.X0), float32(s.Y), float32(s.X1-s.X0+1), 1, c.col, false)
	}
}

func (c *canvas) DrawText(s string, origin geom.Point) {
	text.Draw(c.dst, s, basicfont.Face7x13, origin.X, origin.Y, c.col)
}
