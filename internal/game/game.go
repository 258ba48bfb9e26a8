// Package game ties the card zones together. A Game owns the tableau,
// the foundation and the stock, and every change to them goes through one
// of its five moves.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/command"
	"github.com/arcanaland/solitaire/internal/deck"
	"github.com/arcanaland/solitaire/internal/foundation"
	"github.com/arcanaland/solitaire/internal/rules"
	"github.com/arcanaland/solitaire/internal/stock"
	"github.com/arcanaland/solitaire/internal/tableau"
)

// Options configures a new game
type Options struct {
	// Decks is the number of standard decks shuffled together
	Decks int
	// Seed drives the shuffle. Zero picks a seed from the clock.
	Seed int64
}

type Game struct {
	id    uuid.UUID
	seed  int64
	decks int
	moves int

	tableau    *tableau.Tableau
	foundation *foundation.Foundation
	stock      *stock.Stock

	logger *log.Logger
}

// New shuffles a deck and deals a fresh game: piles of 1 to 7 cards to the
// tableau and every remaining card to the draw pile.
func New(opts Options, logger *log.Logger) (*Game, error) {
	if opts.Decks == 0 {
		opts.Decks = 1
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d, err := deck.New(opts.Decks, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return nil, err
	}

	piles := make([][]card.Card, 0, tableau.Columns)
	for n := 1; n <= tableau.Columns; n++ {
		pile, err := d.Deal(n)
		if err != nil {
			return nil, fmt.Errorf("dealing tableau: %w", err)
		}
		piles = append(piles, pile)
	}

	t, err := tableau.New(piles)
	if err != nil {
		return nil, err
	}

	rest, err := d.Deal(d.Remaining())
	if err != nil {
		return nil, fmt.Errorf("dealing stock: %w", err)
	}
	if d.Remaining() != 0 {
		return nil, fmt.Errorf("deck still holds %d cards after dealing", d.Remaining())
	}

	g := &Game{
		id:         uuid.New(),
		seed:       opts.Seed,
		decks:      opts.Decks,
		tableau:    t,
		foundation: foundation.New(),
		stock:      stock.New(rest),
	}
	g.logger = logger.With("game", g.id.String())
	g.logger.Info("dealt new game", "seed", g.seed, "decks", g.decks, "stock", g.stock.DrawCount())

	return g, nil
}

// Assemble builds a game around zones that are already laid out, for
// replaying a known position. The deck count is taken as one.
func Assemble(t *tableau.Tableau, f *foundation.Foundation, s *stock.Stock, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		id:         uuid.New(),
		decks:      1,
		tableau:    t,
		foundation: f,
		stock:      s,
	}
	g.logger = logger.With("game", g.id.String())
	return g
}

func (g *Game) ID() uuid.UUID { return g.id }
func (g *Game) Seed() int64   { return g.seed }
func (g *Game) Decks() int    { return g.decks }

// Moves returns the number of successful moves made so far
func (g *Game) Moves() int { return g.moves }

// HasWon reports whether every foundation pile is complete
func (g *Game) HasWon() bool {
	return g.foundation.HasWon()
}

// DrawToDiscard turns one card from the draw pile onto the discard pile,
// recycling the discard pile when the draw pile is empty.
func (g *Game) DrawToDiscard() error {
	return g.record("s2w", g.stock.DrawToDiscard())
}

// DiscardToFoundation moves the top discard card onto its suit pile
func (g *Game) DiscardToFoundation() error {
	top, ok := g.stock.PeekDiscard()
	if !ok {
		return g.record("w2f", fmt.Errorf("%w: discard pile is empty", rules.ErrEmptySource))
	}
	if err := g.foundation.Add(top); err != nil {
		return g.record("w2f", err)
	}
	g.stock.PopDiscard()
	return g.record("w2f", nil)
}

// DiscardToTableau moves the top discard card onto column col (0-based)
func (g *Game) DiscardToTableau(col int) error {
	return g.record(fmt.Sprintf("w2t%d", col+1), g.tableau.MoveFromDiscard(g.stock, col))
}

// TableauToFoundation moves the top face-up card of column col onto its suit pile
func (g *Game) TableauToFoundation(col int) error {
	return g.record(fmt.Sprintf("t2f%d", col+1), g.tableau.MoveTopToFoundation(col, g.foundation))
}

// TableauToTableau moves the longest acceptable run from src onto dst
func (g *Game) TableauToTableau(src, dst int) error {
	return g.record(fmt.Sprintf("t2t%d%d", src+1, dst+1), g.tableau.MoveColumn(src, dst))
}

// Apply dispatches a parsed command to the matching move. Quit and Invalid
// commands are not moves and are rejected.
func (g *Game) Apply(cmd command.Command) error {
	switch cmd.Kind {
	case command.StockToWaste:
		return g.DrawToDiscard()
	case command.WasteToFoundation:
		return g.DiscardToFoundation()
	case command.WasteToTableau:
		return g.DiscardToTableau(cmd.Dst)
	case command.TableauToFoundation:
		return g.TableauToFoundation(cmd.Src)
	case command.TableauToTableau:
		return g.TableauToTableau(cmd.Src, cmd.Dst)
	}
	return fmt.Errorf("%w: %s is not a move", command.ErrMalformedCommand, cmd.Kind)
}

// record counts a successful move and logs the outcome
func (g *Game) record(move string, err error) error {
	if err != nil {
		g.logger.Debug("move rejected", "move", move, "err", err)
		return err
	}
	g.moves++
	g.logger.Debug("move applied", "move", move, "moves", g.moves, "won", g.HasWon())
	return nil
}
