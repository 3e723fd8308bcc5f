package ui

import (
	"image"
	"math"
)

// pointInRect reports whether (x, y) lies inside rect.
func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// sliderValue converts a cursor offset within a track of the given
// width into a value interpolated from the left end to the right end,
// clamping at both.
func sliderValue(px, width int, left, right float64) float64 {
	if width <= 0 {
		return left
	}
	t := float64(px) / float64(width)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return left + (right-left)*t
}

// sliderOffset is the inverse of sliderValue: the knob position in
// track pixels for a value.
func sliderOffset(value float64, width int, left, right float64) int {
	span := right - left
	if span == 0 || width <= 0 {
		return 0
	}
	t := (value - left) / span
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return int(math.Round(t * float64(width)))
}
