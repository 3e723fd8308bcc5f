//go:build ebiten

package app

import (
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panelWidth = 240

// Game adapts a life board to the ebiten.Game interface: it routes
// panel events, keyboard shortcuts, and mouse editing into board
// operations, and paints the result each frame.
type Game struct {
	board   core.Board
	painter *render.GridPainter
	panel   *ui.ControlPanel
	overlay *ui.Overlay
	timer   *core.FixedStep

	cells []uint8

	onColor  color.Color
	offColor color.Color

	scale   int
	density float64

	playing  bool
	tickOnce bool

	cursorX    int
	cursorY    int
	cursorOver bool
}

// New constructs a Game for the provided board.
func New(board core.Board, cfg *Config) *Game {
	size := board.Size()
	g := &Game{
		board:    board,
		painter:  render.NewGridPainter(size.W, size.H),
		panel:    ui.NewControlPanel(panelWidth),
		overlay:  ui.NewOverlay(),
		timer:    core.NewFixedStep(StepInterval(cfg.Speed)),
		cells:    make([]uint8, size.W*size.H),
		onColor:  color.RGBA{G: 255, A: 255},
		offColor: color.Black,
		scale:    cfg.Scale,
		density:  cfg.Density,
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	g.panel.SetSpeed(cfg.Speed)
	g.panel.SetShowGrid(cfg.ShowGrid)
	return g
}

// Update handles per-frame input and advances the board when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.setPlaying(!g.playing)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.board.Randomize(g.density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.board.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.panel.SetShowGrid(!g.panel.ShowGrid())
	}

	ev := g.panel.Update(g.canvasWidth())
	if ev.Randomize {
		g.board.Randomize(g.density)
	}
	if ev.Clear {
		g.board.Clear()
	}
	if ev.TogglePlay {
		g.setPlaying(!g.playing)
	}
	if ev.StepOnce {
		g.tickOnce = true
	}

	g.timer.SetInterval(StepInterval(g.panel.Speed()))
	g.handleEditing()

	if g.tickOnce || (g.playing && g.timer.ShouldStep()) {
		g.board.Step()
		g.timer.Restart()
		g.tickOnce = false
	}
	return nil
}

// handleEditing paints cells while a mouse button is held over the
// canvas and tracks the hovered cell for the highlight.
func (g *Game) handleEditing() {
	mx, my := ebiten.CursorPosition()
	g.cursorOver = mx >= 0 && my >= 0 && mx < g.canvasWidth() && my < g.canvasHeight()
	if !g.cursorOver {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	g.cursorX = mx / g.scale
	g.cursorY = my / g.scale

	// The bounding check above already clips to the canvas, so Set
	// cannot fail here.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		_ = g.board.Set(g.cursorX, g.cursorY, true)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		_ = g.board.Set(g.cursorX, g.cursorY, false)
	}
}

func (g *Game) setPlaying(v bool) {
	g.playing = v
	g.panel.SetPlaying(v)
	if v {
		g.timer.Restart()
	}
}

// Draw renders the board, overlays, and control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.board.Snapshot(g.cells); err == nil {
		g.painter.Blit(screen, g.cells, g.onColor, g.offColor, g.scale)
	}
	if g.panel.ShowGrid() {
		g.overlay.DrawGridLines(screen, g.board.Size(), g.scale)
	}
	if g.cursorOver {
		g.overlay.DrawCursor(screen, g.cursorX, g.cursorY, g.scale)
	}
	g.panel.Draw(screen, g.canvasWidth(), g.canvasHeight())
}

// Layout returns the logical screen size: the scaled canvas plus the
// control panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvasWidth() + panelWidth, g.canvasHeight()
}

func (g *Game) canvasWidth() int  { return g.board.Size().W * g.scale }
func (g *Game) canvasHeight() int { return g.board.Size().H * g.scale }
