package textgrid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ringcheck/textgrid"
)

//----------------------------------------------------------------------------//
// Parse error tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty or ragged inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		err  error
	}{
		{"Empty", "", textgrid.ErrEmptyInput},
		{"OnlyNewlines", "\n\n\n", textgrid.ErrEmptyInput},
		{"OnlyWhitespaceLines", "   \n  \n", textgrid.ErrEmptyInput},
		{"ZeroWidthRows", "\n\n###", textgrid.ErrRaggedRows},
		{"Ragged", "###\n##\n###", textgrid.ErrRaggedRows},
		{"RaggedLast", "##\n##\n#", textgrid.ErrRaggedRows},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := textgrid.Parse(tc.raw, textgrid.DefaultMarkerSpec())
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.raw, err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Parse success tests
//----------------------------------------------------------------------------//

// TestParse_Dimensions checks width/height and trailing-blank trimming.
func TestParse_Dimensions(t *testing.T) {
	g, err := textgrid.Parse("###\n# #\n###\n\n\n", textgrid.DefaultMarkerSpec())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if g.Width != 3 || g.Height != 3 {
		t.Errorf("dimensions = %dx%d; want 3x3", g.Width, g.Height)
	}
	if g.MarkCount() != 8 {
		t.Errorf("MarkCount() = %d; want 8", g.MarkCount())
	}
	if g.Mark(1, 1) {
		t.Error("Mark(1,1)=true; want false (interior space)")
	}
	if !g.Mark(0, 0) {
		t.Error("Mark(0,0)=false; want true")
	}
}

// TestParse_CRLF verifies that CRLF line endings parse like LF.
func TestParse_CRLF(t *testing.T) {
	lf, err := textgrid.Parse("##\n##\n", textgrid.DefaultMarkerSpec())
	if err != nil {
		t.Fatalf("Parse(LF) error: %v", err)
	}
	crlf, err := textgrid.Parse("##\r\n##\r\n", textgrid.DefaultMarkerSpec())
	if err != nil {
		t.Fatalf("Parse(CRLF) error: %v", err)
	}
	if lf.Width != crlf.Width || lf.Height != crlf.Height {
		t.Errorf("CRLF grid %dx%d differs from LF grid %dx%d",
			crlf.Width, crlf.Height, lf.Width, lf.Height)
	}
}

// TestParse_InteriorBlankLine keeps blank interior rows as background rows.
func TestParse_InteriorBlankLine(t *testing.T) {
	g, err := textgrid.Parse("###\n   \n###", textgrid.DefaultMarkerSpec())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if g.Height != 3 {
		t.Errorf("Height = %d; want 3", g.Height)
	}
	for x := 0; x < 3; x++ {
		if g.Mark(x, 1) {
			t.Errorf("Mark(%d,1)=true; want false", x)
		}
	}
}

//----------------------------------------------------------------------------//
// MarkerSpec tests
//----------------------------------------------------------------------------//

// TestMarkerSpec_Default classifies whitespace as blank, the rest as marks.
func TestMarkerSpec_Default(t *testing.T) {
	spec := textgrid.DefaultMarkerSpec()
	for _, r := range "#Xo*.-0" {
		if !spec.IsMark(r) {
			t.Errorf("IsMark(%q)=false; want true", r)
		}
	}
	for _, r := range " \t" {
		if spec.IsMark(r) {
			t.Errorf("IsMark(%q)=true; want false", r)
		}
	}
}

// TestMarkerSpec_BlankRunes treats declared background glyphs as blank.
func TestMarkerSpec_BlankRunes(t *testing.T) {
	spec := textgrid.MarkerSpec{BlankRunes: "."}
	if spec.IsMark('.') {
		t.Error("IsMark('.')=true; want false with BlankRunes=\".\"")
	}
	if !spec.IsMark('#') {
		t.Error("IsMark('#')=false; want true")
	}
}

// TestMarkerSpec_MarkRunes restricts marks to the explicit set.
func TestMarkerSpec_MarkRunes(t *testing.T) {
	spec := textgrid.MarkerSpec{MarkRunes: "#"}
	if !spec.IsMark('#') {
		t.Error("IsMark('#')=false; want true")
	}
	if spec.IsMark('o') {
		t.Error("IsMark('o')=true; want false with MarkRunes=\"#\"")
	}

	g, err := textgrid.Parse("#o\no#", spec)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if g.MarkCount() != 2 {
		t.Errorf("MarkCount() = %d; want 2", g.MarkCount())
	}
}
