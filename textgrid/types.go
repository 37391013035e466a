// Package textgrid defines the Grid type and the MarkerSpec predicate
// configuration used to classify characters as foreground or background.
package textgrid

import (
	"strings"
	"unicode"
)

// MarkerSpec configures which characters count as marks (foreground).
//
// Classification rules, in order:
//
//  1. If MarkRunes is non-empty, a rune is a MARK iff it appears in
//     MarkRunes. Everything else is BLANK.
//  2. Otherwise a rune is BLANK iff it is Unicode whitespace or appears in
//     BlankRunes; every other rune is a MARK.
//
// The zero value is the default spec: any non-whitespace rune is a mark.
type MarkerSpec struct {
	// MarkRunes, when non-empty, is the exhaustive set of mark characters.
	MarkRunes string
	// BlankRunes lists additional background glyphs (for example '.' in
	// drawings that use a visible background character).
	BlankRunes string
}

// DefaultMarkerSpec returns the default classification: whitespace is
// background, everything else is a mark.
func DefaultMarkerSpec() MarkerSpec {
	return MarkerSpec{}
}

// IsMark reports whether r is classified as foreground under the spec.
// Complexity: O(|MarkRunes|+|BlankRunes|) per rune (sets are tiny).
func (s MarkerSpec) IsMark(r rune) bool {
	if s.MarkRunes != "" {
		return strings.ContainsRune(s.MarkRunes, r)
	}
	if unicode.IsSpace(r) {
		return false
	}

	return !strings.ContainsRune(s.BlankRunes, r)
}

// Grid is an immutable rectangular matrix of mark/blank cells.
// Width and Height define dimensions; marks[y][x] reports whether the cell
// at column x, row y is foreground; runes[y][x] keeps the original glyph so
// diagnostics can render the submission back. Build one with Parse.
type Grid struct {
	Width, Height int
	marks         [][]bool
	runes         [][]rune
}

// Mark reports whether the cell at (x, y) is foreground.
// Callers must ensure (x, y) is in bounds. Complexity: O(1).
func (g *Grid) Mark(x, y int) bool {
	return g.marks[y][x]
}

// Rune returns the original character at (x, y).
// Callers must ensure (x, y) is in bounds. Complexity: O(1).
func (g *Grid) Rune(x, y int) rune {
	return g.runes[y][x]
}

// InBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// MarkCount returns the total number of foreground cells.
// Complexity: O(W×H).
func (g *Grid) MarkCount() int {
	var n int
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.marks[y][x] {
				n++
			}
		}
	}

	return n
}
