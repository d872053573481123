// Package buffer implements the in-memory document behind the notepad text
// surface: grapheme-accurate lines, cursor, selection, undo/redo history and
// the modification flag.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer
