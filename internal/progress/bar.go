package progress

import (
	"fmt"
	"strings"
)

const (
	// Width is the number of cells in the bar
	Width = 25

	FilledCell = "█"
	EmptyCell  = "░"
)

// Clamp limits a percentage to 0..100.
func Clamp(percent int) int {
	return min(max(percent, 0), 100)
}

// Cells returns the filled cell count: floor(percent/4) within 0..Width.
func Cells(percent int) int {
	return Clamp(percent) / 4
}

// Fraction returns the filled share of the bar quantized to whole cells, for
// renderers that take a 0..1 ratio.
func Fraction(percent int) float64 {
	return float64(Cells(percent)) / Width
}

// Bar renders the cells without decoration.
func Bar(percent int) string {
	filled := Cells(percent)
	return strings.Repeat(FilledCell, filled) + strings.Repeat(EmptyCell, Width-filled)
}

// Label renders the numeric percentage.
func Label(percent int) string {
	return fmt.Sprintf("%d%%", Clamp(percent))
}
