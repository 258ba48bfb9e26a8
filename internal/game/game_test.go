package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/command"
	"github.com/arcanaland/solitaire/internal/foundation"
	"github.com/arcanaland/solitaire/internal/rules"
	"github.com/arcanaland/solitaire/internal/stock"
	"github.com/arcanaland/solitaire/internal/tableau"
)

type columns = [tableau.Columns][]card.Card

// newTestGame builds a game in a known position. draw is listed bottom
// first, so its last card is the next one drawn.
func newTestGame(t *testing.T, hidden, visible columns, draw ...card.Card) *Game {
	t.Helper()
	tab, err := tableau.Restore(hidden, visible)
	require.NoError(t, err)
	return Assemble(tab, foundation.New(), stock.New(draw), log.New(io.Discard))
}

func TestNewDealsWholeDeck(t *testing.T) {
	g, err := New(Options{Decks: 1, Seed: 1}, nil)
	require.NoError(t, err)

	s := g.Snapshot()
	for col := 0; col < tableau.Columns; col++ {
		assert.Len(t, s.Hidden[col], col, "column %d hidden", col)
		assert.Len(t, s.Visible[col], 1, "column %d visible", col)
	}
	assert.Len(t, s.Draw, 24)
	assert.Empty(t, s.Discard)
	assert.Equal(t, 7, s.Height)

	seen := make(map[card.Card]bool)
	for _, c := range s.Cards() {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
	assert.False(t, g.HasWon())
	assert.Equal(t, int64(1), g.Seed())
	assert.NotEqual(t, uuid.Nil, g.ID())
}

func TestNewMultipleDecks(t *testing.T) {
	g, err := New(Options{Decks: 2, Seed: 5}, nil)
	require.NoError(t, err)
	s := g.Snapshot()
	assert.Len(t, s.Draw, 104-28)
	assert.Len(t, s.Cards(), 104)
	assert.Equal(t, 2, g.Decks())
}

func TestNewDefaults(t *testing.T) {
	g, err := New(Options{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Decks())
	assert.NotZero(t, g.Seed())
}

func TestNewRejectsBadDeckCount(t *testing.T) {
	_, err := New(Options{Decks: -2, Seed: 1}, nil)
	assert.Error(t, err)
}

func TestSameSeedSameDeal(t *testing.T) {
	a, err := New(Options{Seed: 99}, nil)
	require.NoError(t, err)
	b, err := New(Options{Seed: 99}, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestDrawToDiscard(t *testing.T) {
	var hidden, visible columns
	g := newTestGame(t, hidden, visible, card.New(3, card.Clubs), card.New(9, card.Hearts))

	require.NoError(t, g.DrawToDiscard())
	s := g.Snapshot()
	assert.Equal(t, []card.Card{card.New(9, card.Hearts)}, s.Discard)
	assert.Len(t, s.Draw, 1)
	assert.Equal(t, 1, g.Moves())
}

func TestDrawToDiscardWithNoCards(t *testing.T) {
	var hidden, visible columns
	g := newTestGame(t, hidden, visible)

	assert.ErrorIs(t, g.DrawToDiscard(), rules.ErrEmptySource)
	assert.Equal(t, 0, g.Moves())
}

func TestDiscardToFoundation(t *testing.T) {
	var hidden, visible columns
	g := newTestGame(t, hidden, visible, card.New(card.Ace, card.Hearts))

	assert.ErrorIs(t, g.DiscardToFoundation(), rules.ErrEmptySource)

	require.NoError(t, g.DrawToDiscard())
	require.NoError(t, g.DiscardToFoundation())

	s := g.Snapshot()
	top, ok := s.FoundationTop(card.Hearts)
	require.True(t, ok)
	assert.Equal(t, card.New(card.Ace, card.Hearts), top)
	_, ok = s.DiscardTop()
	assert.False(t, ok)
	assert.Equal(t, 2, g.Moves())
}

func TestDiscardToTableau(t *testing.T) {
	var hidden, visible columns
	visible[3] = []card.Card{card.New(card.Queen, card.Spades)}
	g := newTestGame(t, hidden, visible, card.New(card.Jack, card.Diamonds))
	require.NoError(t, g.DrawToDiscard())

	require.NoError(t, g.DiscardToTableau(3))
	s := g.Snapshot()
	assert.Equal(t, []card.Card{card.New(card.Queen, card.Spades), card.New(card.Jack, card.Diamonds)}, s.Visible[3])
	assert.Empty(t, s.Discard)
}

func TestRejectedMovesLeaveStateUnchanged(t *testing.T) {
	var hidden, visible columns
	hidden[0] = []card.Card{card.New(4, card.Clubs)}
	visible[0] = []card.Card{card.New(card.Queen, card.Hearts)}
	visible[1] = []card.Card{card.New(card.Jack, card.Hearts)}
	visible[2] = []card.Card{card.New(5, card.Spades)}

	tests := []struct {
		name string
		move func(g *Game) error
		want error
	}{
		{name: "red jack from discard onto red queen", move: func(g *Game) error { return g.DiscardToTableau(0) }, want: rules.ErrInvalidMove},
		{name: "red jack column onto red queen", move: func(g *Game) error { return g.TableauToTableau(1, 0) }, want: rules.ErrInvalidMove},
		{name: "queen to empty foundation", move: func(g *Game) error { return g.TableauToFoundation(0) }, want: rules.ErrInvalidMove},
		{name: "jack of diamonds to empty foundation", move: func(g *Game) error { return g.DiscardToFoundation() }, want: rules.ErrInvalidMove},
		{name: "empty column to foundation", move: func(g *Game) error { return g.TableauToFoundation(6) }, want: rules.ErrEmptySource},
		{name: "empty column to column", move: func(g *Game) error { return g.TableauToTableau(6, 0) }, want: rules.ErrEmptySource},
		{name: "five onto empty column", move: func(g *Game) error { return g.TableauToTableau(2, 5) }, want: rules.ErrInvalidMove},
		{name: "column out of range", move: func(g *Game) error { return g.DiscardToTableau(7) }, want: tableau.ErrColumnOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, hidden, visible, card.New(2, card.Clubs), card.New(card.Jack, card.Diamonds))
			require.NoError(t, g.DrawToDiscard())
			before := g.Snapshot()

			err := tt.move(g)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, g.Snapshot())
		})
	}
}

func TestTableauToTableauMovesWholeKingRun(t *testing.T) {
	var hidden, visible columns
	hidden[0] = []card.Card{card.New(2, card.Clubs)}
	visible[0] = []card.Card{
		card.New(card.King, card.Spades),
		card.New(card.Queen, card.Diamonds),
		card.New(card.Jack, card.Spades),
	}
	g := newTestGame(t, hidden, visible)

	require.NoError(t, g.TableauToTableau(0, 4))
	s := g.Snapshot()
	assert.Equal(t, visible[0], s.Visible[4])
	assert.Equal(t, []card.Card{card.New(2, card.Clubs)}, s.Visible[0])
	assert.Empty(t, s.Hidden[0])
}

func TestTableauToFoundationWins(t *testing.T) {
	var hidden, visible columns
	for i, suit := range card.Suits {
		visible[i] = []card.Card{card.New(card.King, suit)}
	}
	g := newTestGame(t, hidden, visible)
	for _, suit := range card.Suits {
		for r := card.Ace; r < card.King; r++ {
			require.NoError(t, g.foundation.Add(card.New(r, suit)))
		}
	}

	for i := range card.Suits {
		assert.False(t, g.HasWon())
		require.NoError(t, g.TableauToFoundation(i))
	}
	assert.True(t, g.HasWon())
	assert.Equal(t, 4, g.Moves())
}

func TestApply(t *testing.T) {
	var hidden, visible columns
	visible[0] = []card.Card{card.New(card.King, card.Clubs)}
	visible[1] = []card.Card{card.New(card.Ace, card.Diamonds)}
	visible[2] = []card.Card{card.New(card.Queen, card.Hearts)}
	g := newTestGame(t, hidden, visible, card.New(card.Jack, card.Spades), card.New(card.Ace, card.Spades))

	require.NoError(t, g.Apply(command.Command{Kind: command.StockToWaste}))
	require.NoError(t, g.Apply(command.Command{Kind: command.WasteToFoundation}))
	require.NoError(t, g.Apply(command.Command{Kind: command.TableauToFoundation, Src: 1}))
	require.NoError(t, g.Apply(command.Command{Kind: command.TableauToTableau, Src: 2, Dst: 0}))
	require.NoError(t, g.Apply(command.Command{Kind: command.StockToWaste}))
	require.NoError(t, g.Apply(command.Command{Kind: command.WasteToTableau, Dst: 0}))

	s := g.Snapshot()
	assert.Equal(t, []card.Card{
		card.New(card.King, card.Clubs),
		card.New(card.Queen, card.Hearts),
		card.New(card.Jack, card.Spades),
	}, s.Visible[0])
	assert.Len(t, s.Foundation[card.Spades], 1)
	assert.Len(t, s.Foundation[card.Diamonds], 1)
	assert.Equal(t, 6, s.Moves)

	assert.ErrorIs(t, g.Apply(command.Command{Kind: command.Quit}), command.ErrMalformedCommand)
	assert.ErrorIs(t, g.Apply(command.Command{Kind: command.Invalid}), command.ErrMalformedCommand)
	assert.Equal(t, 6, g.Moves())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	g, err := New(Options{Seed: 3}, nil)
	require.NoError(t, err)

	s := g.Snapshot()
	s.Visible[0][0] = card.Card{}
	s.Draw[0] = card.Card{}

	again := g.Snapshot()
	assert.True(t, again.Visible[0][0].Valid())
	assert.True(t, again.Draw[0].Valid())
}
