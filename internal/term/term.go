// Package term is a terminal front end. Each board cell is one character;
// the columns and rows between cells play the part of the grid lines, so
// the same Mapper that serves the GUI maps clicks here with a cell size of
// two characters.
package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifeviz/internal/app"
	"lifeviz/pkg/geom"
	"lifeviz/pkg/layout"
)

const (
	cellSize   = 2
	margin     = 1
	statusRows = 1
	speedStep  = 0.1
)

var (
	styleDefault = tcell.StyleDefault
	styleCell    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDot     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// App draws a Session on a tcell screen and feeds it keyboard and mouse input.
type App struct {
	screen  tcell.Screen
	session *app.Session
	mapper  layout.Mapper

	rows, cols int
	origin     geom.Point
	tooSmall   bool
	buttons    tcell.ButtonMask
	message    string
}

// New builds an App for an initialized screen.
func New(screen tcell.Screen, session *app.Session) *App {
	a := &App{
		screen:  screen,
		session: session,
		mapper:  layout.Mapper{CellSize: cellSize, Margin: margin},
	}
	a.resize()
	return a
}

func (a *App) resize() {
	w, h := a.screen.Size()
	size := a.session.Sim().Size()
	rows, cols, err := a.mapper.Visible(w, h-statusRows, size.H, size.W)
	if err != nil {
		a.tooSmall = true
		a.rows, a.cols = 0, 0
		return
	}
	a.tooSmall = false
	a.rows, a.cols = rows, cols
	a.origin = geom.Point{X: size.W/2 - cols/2, Y: size.H/2 - rows/2}
}

// Visible returns the number of board rows and columns on screen.
func (a *App) Visible() (rows, cols int) { return a.rows, a.cols }

// Origin returns the board cell shown at the top-left, as Point{X: col, Y: row}.
func (a *App) Origin() geom.Point { return a.origin }

// HandleEvent applies one input event. It returns false when the user quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	s := a.session
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.TogglePlaying()
			case 'n':
				s.StepOnce()
			case 'c':
				s.Clear()
			case 'r':
				s.Randomize(time.Now().UnixNano())
			case 'l':
				a.report(s.Reload())
			case '+', '=':
				s.SetFraction(s.Fraction() + speedStep)
			case '-':
				s.SetFraction(s.Fraction() - speedStep)
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasPressed := a.buttons&tcell.Button1 != 0
		a.buttons = ev.Buttons()
		// Cells toggle on release, like the GUI.
		if wasPressed && !pressed {
			x, y := ev.Position()
			if cell, ok := a.cellAt(x, y); ok {
				s.Toggle(cell)
			}
		}
	}
	return true
}

func (a *App) cellAt(x, y int) (geom.Point, bool) {
	if a.tooSmall {
		return geom.Point{}, false
	}
	v, ok := a.mapper.ScreenToGrid(x, y, a.rows, a.cols)
	if !ok {
		return geom.Point{}, false
	}
	return v.Add(a.origin), true
}

func (a *App) report(err error) {
	if err != nil {
		a.message = err.Error()
		log.Printf("load failed: %v", err)
		return
	}
	a.message = ""
}

// Draw paints the visible board and the status line.
func (a *App) Draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	if a.tooSmall {
		a.text(0, 0, "terminal too small", styleDefault)
		a.screen.Show()
		return
	}
	sim := a.session.Sim()
	size := sim.Size()
	cells := sim.Cells()
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			p := a.mapper.GridToScreen(r, c)
			br, bc := a.origin.Y+r, a.origin.X+c
			if cells[br*size.W+bc] != 0 {
				a.screen.SetContent(p.X+1, p.Y+1, '█', nil, styleCell)
				continue
			}
			a.screen.SetContent(p.X+1, p.Y+1, '·', nil, styleDot)
		}
	}

	status := a.status()
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	a.text(0, h-1, status, styleStatus)
	a.screen.Show()
}

func (a *App) status() string {
	s := a.session
	state := "paused"
	if s.Playing() {
		state = "running"
	}
	line := fmt.Sprintf(" %s | gen %d | %d ms | space play  n step  r random  c clear  l load  +/- speed  q quit",
		state, s.Generation(), s.Interval().Milliseconds())
	if a.message != "" {
		line = " " + a.message + " |" + line
	}
	return line
}

func (a *App) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// poll forwards screen events until the screen is finalized or ctx is done.
func (a *App) poll(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Run polls input and redraws until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go a.poll(ctx, events)

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return nil
			}
			a.Draw()
		case now := <-ticker.C:
			stepped, err := a.session.Tick(now)
			if err != nil {
				return err
			}
			if stepped {
				a.Draw()
			}
		}
	}
}
