// Package buffer implements the document model for fennec: an ordered list
// of lines plus a caret (cursor) and a selection anchor.
//
// Coordinates are 0-based (Row, Col) in runes. A tab is one column; how wide
// it is on screen is decided by the renderer.
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer
