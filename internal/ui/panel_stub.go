//go:build !ebiten

package ui

// Events collects the one-shot actions produced by panel interaction
// during a single Update.
type Events struct {
	Randomize  bool
	Clear      bool
	TogglePlay bool
	StepOnce   bool
}

// ControlPanel is a no-op placeholder for headless builds.
type ControlPanel struct{}

// NewControlPanel constructs a stub panel.
func NewControlPanel(int) *ControlPanel { return &ControlPanel{} }

// Update is a no-op in headless builds.
func (p *ControlPanel) Update(int) Events { return Events{} }

// Draw is a no-op placeholder.
func (p *ControlPanel) Draw(any, int, int) {}

// Speed reports a zero slider position in headless builds.
func (p *ControlPanel) Speed() float64 { return 0 }

// SetSpeed is a no-op in headless builds.
func (p *ControlPanel) SetSpeed(float64) {}

// ShowGrid is always false in headless builds.
func (p *ControlPanel) ShowGrid() bool { return false }

// SetShowGrid is a no-op in headless builds.
func (p *ControlPanel) SetShowGrid(bool) {}

// SetPlaying is a no-op in headless builds.
func (p *ControlPanel) SetPlaying(bool) {}
