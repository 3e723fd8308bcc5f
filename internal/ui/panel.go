//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Events collects the one-shot actions produced by panel interaction
// during a single Update.
type Events struct {
	Randomize  bool
	Clear      bool
	TogglePlay bool
	StepOnce   bool
}

// ControlPanel renders the playback controls to the right of the
// canvas and turns mouse interaction into Events.
type ControlPanel struct {
	width      int
	panel      *ebiten.Image
	pixel      *ebiten.Image
	lastHeight int

	playing  bool
	speed    float64
	showGrid bool
	dragging bool

	randomRect  image.Rectangle
	clearRect   image.Rectangle
	playRect    image.Rectangle
	stepRect    image.Rectangle
	sliderTrack image.Rectangle
	sliderGrab  image.Rectangle
	gridBox     image.Rectangle
}

// NewControlPanel constructs a panel of the given width.
func NewControlPanel(width int) *ControlPanel {
	if width < 0 {
		width = 0
	}
	p := &ControlPanel{width: width, speed: speedDefault, showGrid: true}
	if width > 0 {
		p.pixel = ebiten.NewImage(1, 1)
		p.pixel.Fill(color.White)
	}
	p.layoutControls()
	return p
}

// Speed returns the slider position, between speedFastEnd and
// speedSlowEnd.
func (p *ControlPanel) Speed() float64 { return p.speed }

// SetSpeed moves the slider, clamping to its range.
func (p *ControlPanel) SetSpeed(v float64) {
	if v < speedFastEnd {
		v = speedFastEnd
	}
	if v > speedSlowEnd {
		v = speedSlowEnd
	}
	p.speed = v
}

// ShowGrid reports whether the grid-lines checkbox is ticked.
func (p *ControlPanel) ShowGrid() bool { return p.showGrid }

// SetShowGrid ticks or unticks the grid-lines checkbox.
func (p *ControlPanel) SetShowGrid(v bool) { p.showGrid = v }

// SetPlaying updates the play/pause button label.
func (p *ControlPanel) SetPlaying(v bool) { p.playing = v }

// Update handles panel interaction for the current frame. offsetX is
// the panel's screen position, i.e. the canvas width.
func (p *ControlPanel) Update(offsetX int) Events {
	var ev Events
	if p.width <= 0 {
		return ev
	}

	mx, my := ebiten.CursorPosition()
	px := mx - offsetX

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && px >= 0 {
		switch {
		case pointInRect(px, my, p.randomRect):
			ev.Randomize = true
		case pointInRect(px, my, p.clearRect):
			ev.Clear = true
		case pointInRect(px, my, p.playRect):
			ev.TogglePlay = true
		case pointInRect(px, my, p.stepRect):
			ev.StepOnce = true
		case pointInRect(px, my, p.gridBox):
			p.showGrid = !p.showGrid
		case pointInRect(px, my, p.sliderGrab):
			p.dragging = true
		}
	}

	if p.dragging {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			p.dragging = false
		} else {
			p.speed = sliderValue(px-p.sliderTrack.Min.X, p.sliderTrack.Dx(), speedSlowEnd, speedFastEnd)
		}
	}
	return ev
}

// Draw paints the panel anchored at offsetX with the given height.
func (p *ControlPanel) Draw(screen *ebiten.Image, offsetX, height int) {
	if p.width <= 0 || height <= 0 {
		return
	}
	if p.panel == nil || p.panel.Bounds().Dx() != p.width || p.lastHeight != height {
		p.panel = ebiten.NewImage(p.width, height)
		p.lastHeight = height
	}
	p.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(p.panel, "Game of Life", face, panelPadding, panelPadding+headerBaseline, headerColor)

	p.drawButton(p.randomRect, "Randomize")
	p.drawButton(p.clearRect, "Clear")
	if p.playing {
		p.drawButton(p.playRect, "Pause")
	} else {
		p.drawButton(p.playRect, "Play")
	}
	p.drawSlider()
	p.drawButton(p.stepRect, "Step")
	p.drawCheckbox(p.gridBox, "Grid lines", p.showGrid)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(p.panel, op)
}

func (p *ControlPanel) drawSlider() {
	face := basicfont.Face7x13
	labelY := p.sliderTrack.Min.Y + labelNudge
	text.Draw(p.panel, "Speed", face, panelPadding, labelY, labelColor)

	p.fillRect(p.sliderTrack, trackColor)

	knobX := p.sliderTrack.Min.X + sliderOffset(p.speed, p.sliderTrack.Dx(), speedSlowEnd, speedFastEnd)
	knob := image.Rect(knobX-knobWidth/2, p.sliderTrack.Min.Y-knobOverhang,
		knobX+knobWidth/2, p.sliderTrack.Max.Y+knobOverhang)
	p.fillRect(knob, knobColor)

	value := strconv.FormatFloat(p.speed, 'f', 2, 64)
	text.Draw(p.panel, value, face, p.sliderTrack.Max.X+buttonGap, labelY, labelColor)
}

func (p *ControlPanel) drawButton(rect image.Rectangle, label string) {
	p.fillRect(rect, buttonColor)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.panel, label, face, x, y, buttonTextColor)
}

func (p *ControlPanel) drawCheckbox(box image.Rectangle, label string, checked bool) {
	p.fillRect(box, buttonColor)
	if checked {
		p.fillRect(box.Inset(checkInset), buttonTextColor)
	}
	face := basicfont.Face7x13
	text.Draw(p.panel, label, face, box.Max.X+buttonGap+2, box.Min.Y+checkboxBaseline, labelColor)
}

func (p *ControlPanel) fillRect(rect image.Rectangle, col color.RGBA) {
	if p.pixel == nil || p.panel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	p.panel.DrawImage(p.pixel, op)
}

func (p *ControlPanel) layoutControls() {
	if p.width <= 0 {
		return
	}
	inner := p.width - 2*panelPadding
	button := func(top int) image.Rectangle {
		return image.Rect(panelPadding, top, panelPadding+inner, top+buttonHeight)
	}
	p.randomRect = button(randomTop)
	p.clearRect = button(clearTop)
	p.playRect = button(playTop)
	p.stepRect = button(stepTop)

	p.sliderTrack = image.Rect(panelPadding+sliderLabelWidth, sliderTop,
		p.width-panelPadding-sliderValueWidth, sliderTop+trackHeight)
	p.sliderGrab = p.sliderTrack.Inset(-grabSlack)

	p.gridBox = image.Rect(panelPadding, gridTop, panelPadding+checkboxSize, gridTop+checkboxSize)
}

var (
	headerColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	buttonColor     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonTextColor = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	trackColor      = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	knobColor       = color.RGBA{R: 200, G: 200, B: 210, A: 255}
)

const (
	speedSlowEnd = 1.0
	speedFastEnd = 0.1
	speedDefault = 0.5

	panelPadding   = 12
	headerBaseline = 18
	buttonHeight   = 28
	buttonGap      = 6

	randomTop = 44
	clearTop  = 84
	playTop   = 136
	sliderTop = 188
	stepTop   = 224
	gridTop   = 288

	sliderLabelWidth = 48
	sliderValueWidth = 40
	trackHeight      = 6
	knobWidth        = 8
	knobOverhang     = 5
	grabSlack        = 8
	labelNudge       = 9

	checkboxSize     = 16
	checkInset       = 4
	checkboxBaseline = 13
)
