// Package rules holds the error taxonomy shared by every card zone.
//
// Zone operations wrap one of these sentinels, so callers classify a
// rejected move with errors.Is regardless of which zone refused it.
package rules

import "errors"

var (
	// ErrInvalidMove is returned when a move breaks a placement rule:
	// wrong rank, suit or colour adjacency, or an unacceptable run.
	ErrInvalidMove = errors.New("invalid move")

	// ErrEmptySource is returned when a card is requested from an empty pile.
	ErrEmptySource = errors.New("empty source")
)
