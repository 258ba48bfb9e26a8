package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/solitaire/internal/card"
	"github.com/arcanaland/solitaire/internal/game"
)

func plain() *Renderer {
	return New(Options{Color: false, Width: 60})
}

func TestBoardOpeningDeal(t *testing.T) {
	g, err := game.New(game.Options{Seed: 21}, nil)
	require.NoError(t, err)
	s := g.Snapshot()

	out := plain().Board(s)
	lines := strings.Split(out, "\n")

	assert.Equal(t, strings.Repeat("-", 60), lines[0])
	assert.Equal(t, "Empty\t24 cards\t\t♣\t♥\t♠\t♦", lines[2])
	assert.Contains(t, out, "\t1\t2\t3\t4\t5\t6\t7\n")
	assert.Equal(t, 28-7, strings.Count(out, "\tX"))
	assert.Contains(t, out, "Moves: 0")

	// first tableau row: column 1 shows its only card, the rest are hidden
	var first string
	for i, line := range lines {
		if line == "\t1\t2\t3\t4\t5\t6\t7" {
			first = lines[i+2]
			break
		}
	}
	assert.Equal(t, "\t"+s.Visible[0][0].String()+"\tX\tX\tX\tX\tX\tX", first)
}

func TestBoardShowsWasteAndFoundation(t *testing.T) {
	var s game.Snapshot
	s.Discard = []card.Card{card.New(5, card.Spades), card.New(card.Queen, card.Hearts)}
	s.Foundation[card.Spades] = []card.Card{card.New(card.Ace, card.Spades), card.New(2, card.Spades)}
	s.Visible[6] = []card.Card{card.New(card.King, card.Clubs)}
	s.Height = 1

	out := plain().Board(s)
	assert.Contains(t, out, "Q♥\tEmpty\t\t♣\t♥\t2♠\t♦\n")
	assert.Contains(t, out, "\t\t\t\t\t\t\tK♣\n")
}

func TestWidthIsClamped(t *testing.T) {
	assert.Equal(t, DefaultWidth, New(Options{}).width)
	assert.Equal(t, minWidth, New(Options{Width: 10}).width)
	assert.Equal(t, maxWidth, New(Options{Width: 400}).width)
}

func TestColorCanBeForced(t *testing.T) {
	r := New(Options{Color: true})
	assert.Contains(t, r.Card(card.New(card.Ace, card.Hearts)), "\x1b[")
	assert.Equal(t, "A♠", r.Card(card.New(card.Ace, card.Spades)))

	assert.Equal(t, "A♥", plain().Card(card.New(card.Ace, card.Hearts)))
}

func TestMessages(t *testing.T) {
	r := plain()
	assert.Contains(t, r.Help(), "t2t # #")
	assert.Contains(t, r.Welcome(), "WELCOME TO SOLITAIRE")
	assert.Contains(t, r.Won(120), "120 moves")
	assert.Equal(t, "Game has ended!\n", r.Ended())
	assert.Equal(t, "Invalid move!\n", r.Error("Invalid move!"))
}

func TestTerminalWidthFallsBack(t *testing.T) {
	assert.Equal(t, DefaultWidth, TerminalWidth(-1))
}
