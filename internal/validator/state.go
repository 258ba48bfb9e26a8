package validator

import (
	"fmt"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/deck"
	"github.com/arcanaland/solitaire/internal/game"
	"github.com/arcanaland/solitaire/internal/tableau"
)

// ValidateGame deals a game from the decoded config and checks the
// opening position. Validate must have succeeded first.
func (v *Validator) ValidateGame() (ValidationResults, error) {
	if v.config == nil {
		return v.Results, fmt.Errorf("config has not been validated")
	}
	if !v.Results.OK() {
		return v.Results, nil
	}

	g, err := game.New(game.Options{Decks: v.config.Decks, Seed: v.config.Seed}, nil)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("cannot deal a game: %v", err))
		return v.Results, nil
	}

	s := g.Snapshot()
	v.Results.merge(CheckSnapshot(s))
	for col := 0; col < tableau.Columns; col++ {
		if len(s.Hidden[col]) != col || len(s.Visible[col]) != 1 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("column %d dealt %d hidden and %d visible cards", col+1, len(s.Hidden[col]), len(s.Visible[col])))
		}
	}
	return v.Results, nil
}

// CheckSnapshot verifies the invariants every reachable position holds:
// card conservation, descending alternating visible runs, flipped columns
// and ascending single-suit foundation piles.
func CheckSnapshot(s game.Snapshot) ValidationResults {
	var results ValidationResults

	checkConservation(s, &results)
	checkTableau(s, &results)
	checkFoundation(s, &results)

	return results
}

func checkConservation(s game.Snapshot, results *ValidationResults) {
	decks := s.Decks
	if decks < 1 {
		decks = 1
	}

	counts := make(map[card.Card]int)
	for _, c := range s.Cards() {
		if !c.Valid() {
			results.Errors = append(results.Errors, "position holds an invalid card")
			continue
		}
		counts[c]++
	}

	for _, c := range deck.Standard() {
		if counts[c] != decks {
			results.Errors = append(results.Errors,
				fmt.Sprintf("%s appears %d times, expected %d", c, counts[c], decks))
		}
	}
}

func checkTableau(s game.Snapshot, results *ValidationResults) {
	for col := 0; col < tableau.Columns; col++ {
		run := s.Visible[col]
		if len(run) == 0 && len(s.Hidden[col]) > 0 {
			results.Errors = append(results.Errors,
				fmt.Sprintf("column %d has hidden cards but none face up", col+1))
		}
		for i := 1; i < len(run); i++ {
			if !run[i].CanStackOn(run[i-1]) {
				results.Errors = append(results.Errors,
					fmt.Sprintf("column %d: %s sits on %s", col+1, run[i], run[i-1]))
			}
		}
	}
}

func checkFoundation(s game.Snapshot, results *ValidationResults) {
	for _, suit := range card.Suits {
		for i, c := range s.Foundation[suit] {
			if c.Suit() != suit || c.Rank() != card.Rank(i+1) {
				results.Errors = append(results.Errors,
					fmt.Sprintf("%s pile holds %s at position %d", suit, c, i+1))
			}
		}
	}
}
