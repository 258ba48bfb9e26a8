// Package session runs the interactive command loop around a game.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/arcanaland/solitaire/internal/command"
	"github.com/arcanaland/solitaire/internal/game"
	"github.com/arcanaland/solitaire/internal/render"
	"github.com/arcanaland/solitaire/internal/rules"
)

// Outcome is how a session ended
type Outcome int

const (
	Quit Outcome = iota
	Won
)

func (o Outcome) String() string {
	if o == Won {
		return "won"
	}
	return "quit"
}

const prompt = "Enter a command key (Type 'quit' to exit game): "

// rejections are the messages shown when a well-formed move is refused
var rejections = map[command.Kind]string{
	command.StockToWaste:        "Invalid move: No cards left in the Stock pile.",
	command.WasteToFoundation:   "Invalid move: Unable to transfer card from Waste to Foundation pile.",
	command.WasteToTableau:      "Invalid move: Unable to transfer card from Waste to Tableau column.",
	command.TableauToFoundation: "Invalid move: Unable to transfer card from Tableau to Foundation pile.",
	command.TableauToTableau:    "Invalid move: Unable to transfer card to Tableau column.",
}

type Session struct {
	game     *game.Game
	renderer *render.Renderer
	in       *bufio.Scanner
	out      io.Writer
	logger   *log.Logger
}

func New(g *game.Game, r *render.Renderer, in io.Reader, out io.Writer, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:     g,
		renderer: r,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger.With("game", g.ID().String()),
	}
}

// Run plays until the player quits, the input ends or the game is won
func (s *Session) Run() (Outcome, error) {
	s.print(s.renderer.Welcome())
	s.print(s.renderer.Board(s.game.Snapshot()))
	s.print(s.renderer.Help())

	for !s.game.HasWon() {
		s.print(prompt)
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return Quit, fmt.Errorf("reading command: %w", err)
			}
			s.print("\n" + s.renderer.Ended())
			return Quit, nil
		}
		line := s.in.Text()

		cmd, err := command.Parse(line)
		if err != nil {
			s.logger.Debug("malformed command", "input", line, "err", err)
			s.print(s.renderer.Error("Invalid move!"))
			continue
		}
		if cmd.Kind == command.Quit {
			s.print(s.renderer.Ended())
			return Quit, nil
		}

		if err := s.game.Apply(cmd); err != nil {
			s.reject(cmd, err)
			continue
		}
		s.print(s.renderer.Board(s.game.Snapshot()))
	}

	s.logger.Info("game won", "moves", s.game.Moves())
	s.print(s.renderer.Won(s.game.Moves()))
	return Won, nil
}

func (s *Session) reject(cmd command.Command, err error) {
	s.logger.Debug("move refused", "command", cmd.String(), "err", err)

	msg, ok := rejections[cmd.Kind]
	if !ok || !(errors.Is(err, rules.ErrInvalidMove) || errors.Is(err, rules.ErrEmptySource)) {
		msg = "Invalid move!"
	}
	s.print(s.renderer.Error(msg))
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}
