package textgrid

import "strings"

// Parse converts raw text into a Grid, classifying each character per spec.
//
// Lines are split on '\n'; a trailing '\r' is stripped from each line so
// CRLF submissions parse identically to LF ones. Trailing blank lines are
// trimmed (they carry no drawing information), leading and interior lines
// are preserved as-is.
//
// Returns ErrEmptyInput if no lines remain after trimming,
// ErrRaggedRows if any two remaining lines differ in rune length.
// Complexity: O(W×H) time and memory.
func Parse(raw string, spec MarkerSpec) (*Grid, error) {
	lines := strings.Split(raw, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	// Trim trailing blank lines only; a blank interior line is a valid
	// (all-background) canvas row.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrRaggedRows
		}
	}
	// Uniformly zero-width rows cannot form a canvas (width ≥ 1 required).
	if w == 0 {
		return nil, ErrEmptyInput
	}

	h := len(rows)
	marks := make([][]bool, h)
	for y := 0; y < h; y++ {
		marks[y] = make([]bool, w)
		for x, r := range rows[y] {
			marks[y][x] = spec.IsMark(r)
		}
	}

	return &Grid{Width: w, Height: h, marks: marks, runes: rows}, nil
}
