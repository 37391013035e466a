// Package textgrid turns a raw block of text into a rectangular grid of
// marked and blank cells, the first stage of circle-drawing validation.
//
// What:
//
//   - Parse splits raw text into lines, trims trailing blank lines, and
//     classifies every character as MARK or BLANK per a MarkerSpec.
//   - Grid is an immutable width×height matrix of booleans with O(1) cell
//     access; coordinates are cell indices with x = column, y = row,
//     origin at the top-left.
//   - MarkerSpec is a pure predicate configuration: either an explicit set
//     of mark runes, or (default) "anything that is not whitespace and not
//     a declared blank glyph is a mark".
//
// Why:
//
//   - Golf-challenge submissions arrive as plain text; downstream geometry
//     needs a well-formed rectangular canvas before anything can be fitted.
//   - Uneven row lengths cannot represent a canvas, so they are rejected
//     here rather than silently padded.
//
// Complexity:
//
//   - Parse: O(W×H) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyInput: no lines remain after trimming trailing blanks.
//   - ErrRaggedRows: rows have differing lengths.
package textgrid
