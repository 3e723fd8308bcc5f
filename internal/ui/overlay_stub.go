//go:build !ebiten

package ui

import "lifegrid/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// DrawGridLines is a no-op in headless builds.
func (o *Overlay) DrawGridLines(any, core.Size, int) {}

// DrawCursor is a no-op placeholder.
func (o *Overlay) DrawCursor(any, int, int, int) {}
