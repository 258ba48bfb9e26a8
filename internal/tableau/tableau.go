// Package tableau implements the seven columns of the playing area. Each
// column keeps a face-down hidden pile and a face-up visible run on top of
// it; the visible run always descends in rank and alternates colour.
package tableau

import (
	"fmt"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/foundation"
	"github.com/arcanaland/solitaire/internal/rules"
	"github.com/arcanaland/solitaire/internal/stock"
)

// Columns is the number of tableau columns
const Columns = 7

// ErrColumnOutOfRange is returned for a column index outside 0..Columns-1
var ErrColumnOutOfRange = fmt.Errorf("%w: column out of range", rules.ErrInvalidMove)

type Tableau struct {
	hidden  [Columns][]card.Card
	visible [Columns][]card.Card
}

// New lays out the initial piles. Pile i becomes column i: every card but
// the last is hidden, the last is turned face up.
func New(piles [][]card.Card) (*Tableau, error) {
	if len(piles) != Columns {
		return nil, fmt.Errorf("tableau needs %d piles, got %d", Columns, len(piles))
	}

	t := &Tableau{}
	for i, pile := range piles {
		if len(pile) == 0 {
			return nil, fmt.Errorf("tableau pile %d is empty", i)
		}
		last := len(pile) - 1
		t.hidden[i] = append([]card.Card(nil), pile[:last]...)
		t.visible[i] = []card.Card{pile[last]}
	}
	return t, nil
}

func checkColumn(col int) error {
	if col < 0 || col >= Columns {
		return fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}
	return nil
}

// FlipTop turns the top hidden card of col face up. It does nothing when
// the hidden pile is empty.
func (t *Tableau) FlipTop(col int) {
	if checkColumn(col) != nil {
		return
	}
	hidden := t.hidden[col]
	if len(hidden) == 0 {
		return
	}
	t.visible[col] = append(t.visible[col], hidden[len(hidden)-1])
	t.hidden[col] = hidden[:len(hidden)-1]
}

// Accepts reports whether run, ordered bottom to top, may be placed on col
func (t *Tableau) Accepts(run []card.Card, col int) bool {
	if checkColumn(col) != nil || len(run) == 0 {
		return false
	}

	visible := t.visible[col]
	if len(visible) == 0 {
		return run[0].Rank() == card.King
	}
	return run[0].CanStackOn(visible[len(visible)-1])
}

// Place appends run to col if the column accepts it
func (t *Tableau) Place(run []card.Card, col int) error {
	if err := checkColumn(col); err != nil {
		return err
	}
	if !t.Accepts(run, col) {
		if len(run) == 0 {
			return fmt.Errorf("%w: nothing to place", rules.ErrInvalidMove)
		}
		return fmt.Errorf("%w: %s cannot go on column %d", rules.ErrInvalidMove, run[0], col+1)
	}
	t.visible[col] = append(t.visible[col], run...)
	return nil
}

// LongestColumn returns the height of the tallest column, hidden cards included
func (t *Tableau) LongestColumn() int {
	longest := 0
	for i := 0; i < Columns; i++ {
		if n := len(t.hidden[i]) + len(t.visible[i]); n > longest {
			longest = n
		}
	}
	return longest
}

// MoveColumn moves the longest acceptable run from the top of src onto dst.
// Split points are tried from the base of the visible run upward, so the
// first accepted suffix is also the longest.
func (t *Tableau) MoveColumn(src, dst int) error {
	if err := checkColumn(src); err != nil {
		return err
	}
	if err := checkColumn(dst); err != nil {
		return err
	}
	if src == dst {
		return fmt.Errorf("%w: column %d onto itself", rules.ErrInvalidMove, src+1)
	}

	visible := t.visible[src]
	if len(visible) == 0 {
		return fmt.Errorf("%w: column %d has no face-up cards", rules.ErrEmptySource, src+1)
	}

	for i := range visible {
		run := visible[i:]
		if !t.Accepts(run, dst) {
			continue
		}
		t.visible[dst] = append(t.visible[dst], run...)
		t.visible[src] = visible[:i:i]
		if i == 0 {
			t.FlipTop(src)
		}
		return nil
	}

	return fmt.Errorf("%w: no run from column %d fits column %d", rules.ErrInvalidMove, src+1, dst+1)
}

// MoveTopToFoundation moves the top visible card of col onto its suit pile
func (t *Tableau) MoveTopToFoundation(col int, f *foundation.Foundation) error {
	if err := checkColumn(col); err != nil {
		return err
	}

	visible := t.visible[col]
	if len(visible) == 0 {
		return fmt.Errorf("%w: column %d has no face-up cards", rules.ErrEmptySource, col+1)
	}

	if err := f.Add(visible[len(visible)-1]); err != nil {
		return err
	}
	t.visible[col] = visible[:len(visible)-1]
	if len(t.visible[col]) == 0 {
		t.FlipTop(col)
	}
	return nil
}

// MoveFromDiscard moves the top discard card onto col
func (t *Tableau) MoveFromDiscard(s *stock.Stock, col int) error {
	if err := checkColumn(col); err != nil {
		return err
	}

	top, ok := s.PeekDiscard()
	if !ok {
		return fmt.Errorf("%w: discard pile is empty", rules.ErrEmptySource)
	}
	if err := t.Place([]card.Card{top}, col); err != nil {
		return err
	}
	s.PopDiscard()
	return nil
}

// Hidden returns a copy of the face-down cards of col, bottom first
func (t *Tableau) Hidden(col int) []card.Card {
	if checkColumn(col) != nil {
		return nil
	}
	return append([]card.Card(nil), t.hidden[col]...)
}

// Visible returns a copy of the face-up run of col, bottom first
func (t *Tableau) Visible(col int) []card.Card {
	if checkColumn(col) != nil {
		return nil
	}
	return append([]card.Card(nil), t.visible[col]...)
}

// Restore builds a tableau from explicit hidden and visible piles, bottom
// first. Every non-empty visible run must descend in rank and alternate in
// colour, and a column may not hold hidden cards under an empty visible run.
func Restore(hidden, visible [Columns][]card.Card) (*Tableau, error) {
	t := &Tableau{}
	for col := 0; col < Columns; col++ {
		if len(visible[col]) == 0 && len(hidden[col]) > 0 {
			return nil, fmt.Errorf("column %d has hidden cards but none face up", col+1)
		}
		run := visible[col]
		for i := 1; i < len(run); i++ {
			if !run[i].CanStackOn(run[i-1]) {
				return nil, fmt.Errorf("column %d: %s cannot sit on %s", col+1, run[i], run[i-1])
			}
		}
		t.hidden[col] = append([]card.Card(nil), hidden[col]...)
		t.visible[col] = append([]card.Card(nil), run...)
	}
	return t, nil
}
