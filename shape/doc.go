// Package shape extracts the geometry of a drawing from a parsed grid:
// the set of mark coordinates, their connectivity structure, and the
// enclosure probe used to detect rings that leak.
//
// What:
//
//   - Extract collects all mark cells into a point set and partitions it
//     into connected components under Conn4 or Conn8 adjacency.
//   - Shape exposes the components and the largest one, so callers can
//     distinguish a single coherent ring from scattered noise.
//   - EscapePath flood-fills background cells orthogonally from an interior
//     cell; a non-nil result is a shortest path proving the ring does not
//     enclose its interior.
//   - RenderPath paves an escape path back into the original drawing for
//     human-readable diagnostics.
//
// Why:
//
//   - A circle-outline submission must be one continuous ring; component
//     analysis is how stray marks and broken arcs are told apart.
//   - A ring can cover every angular sector and still have a pinhole gap;
//     the orthogonal background flood is the exact dual of 8-connected
//     marks, so it finds gaps that coverage metrics miss.
//
// Complexity:
//
//   - Extract:    O(W×H×d), d = 4 or 8. Memory: O(W×H).
//   - EscapePath: O(W×H).             Memory: O(W×H).
//
// Errors:
//
//   - ErrNoMarks: the grid contains no foreground cells at all.
package shape
