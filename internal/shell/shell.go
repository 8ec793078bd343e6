package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/lk16/othello-agent/internal/client"
	"github.com/lk16/othello-agent/internal/config"
	"github.com/lk16/othello-agent/internal/match"
	"github.com/lk16/othello-agent/internal/othello"
	"github.com/lk16/othello-agent/internal/player"
	"github.com/lk16/othello-agent/internal/search"
	"github.com/rs/zerolog/log"
)

const (
	timeLimitPrompt = "Enter time limit in ms: "
	modePrompt      = "Choose mode: "
	colorPrompt     = "Play as (b)lack or (w)hite: "
)

// Mode is a game mode that can be selected in the shell.
type Mode int

const (
	AgentVsAgentMode Mode = iota + 1
	PlayerVsAgentMode
	AgentVsRandomMode
	BenchmarkMode
)

var modeNames = map[Mode]string{
	AgentVsAgentMode:  "Agent vs agent",
	PlayerVsAgentMode: "Player vs agent",
	AgentVsRandomMode: "Agent vs random",
	BenchmarkMode:     "Benchmark agent vs random",
}

// Input reads lines of user input. It is implemented by *readline.Instance.
type Input interface {
	player.LineReader
	Close() error
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewReadline creates the line editor used for interactive sessions.
func NewReadline() (*readline.Instance, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     "/tmp/othello-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}

	return l, nil
}

// Shell runs interactive games.
type Shell struct {
	input Input
	out   io.Writer
	cfg   *config.Config
	store BenchmarkStore
}

// NewShell creates a shell. The store may be nil, then benchmarks are only written to CSV files.
func NewShell(input Input, out io.Writer, cfg *config.Config, store BenchmarkStore) *Shell {
	return &Shell{
		input: input,
		out:   out,
		cfg:   cfg,
		store: store,
	}
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// IsExit reports whether err was caused by the user closing the input.
func IsExit(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}

// Run asks for the time limit and mode and runs the selected mode once.
func (s *Shell) Run(ctx context.Context) error {
	defer s.input.Close()

	timeLimit, err := s.askTimeLimit()
	if err != nil {
		return err
	}
	s.cfg.SetTimeLimit(timeLimit)

	mode, err := s.askMode()
	if err != nil {
		return err
	}

	log.Debug().
		Str("mode", modeNames[mode]).
		Dur("time_limit", timeLimit).
		Int("depth_limit", s.cfg.Search().DepthLimit).
		Msg("Starting")

	switch mode {
	case AgentVsAgentMode:
		return s.playMatch(ctx, s.newAgent("agent 1"), s.newAgent("agent 2"))
	case PlayerVsAgentMode:
		return s.playVsAgent(ctx)
	case AgentVsRandomMode:
		return s.playMatch(ctx, s.newAgent("agent"), player.NewRandom("random"))
	case BenchmarkMode:
		return RunBenchmark(ctx, s.cfg, s.out, s.store)
	}

	return nil
}

func (s *Shell) readLine(prompt string) (string, error) {
	s.input.SetPrompt(prompt)

	line, err := s.input.Readline()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// askTimeLimit reads the time limit. An empty line keeps the configured limit.
func (s *Shell) askTimeLimit() (time.Duration, error) {
	for {
		line, err := s.readLine(timeLimitPrompt)
		if err != nil {
			return 0, err
		}

		if line == "" {
			return s.cfg.TimeLimit(), nil
		}

		ms, err := strconv.Atoi(line)
		if err != nil || ms < 1 {
			s.println("Invalid time limit, try again")
			continue
		}

		return time.Duration(ms) * time.Millisecond, nil
	}
}

func (s *Shell) askMode() (Mode, error) {
	for mode := AgentVsAgentMode; mode <= BenchmarkMode; mode++ {
		s.printf("%d. %s\n", mode, modeNames[mode])
	}

	for {
		line, err := s.readLine(modePrompt)
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(line)
		mode := Mode(choice)
		if _, ok := modeNames[mode]; err != nil || !ok {
			s.println("Invalid mode, try again")
			continue
		}

		return mode, nil
	}
}

func (s *Shell) askColor() (othello.Color, error) {
	for {
		line, err := s.readLine(colorPrompt)
		if err != nil {
			return othello.Empty, err
		}

		switch strings.ToLower(line) {
		case "b", "black":
			return othello.Black, nil
		case "w", "white":
			return othello.White, nil
		}

		s.println("Invalid color, try again")
	}
}

func (s *Shell) newAgent(name string) player.Player {
	if s.cfg.AgentServerURL != "" {
		return player.NewRemote(name, client.NewAPIClient(s.cfg.AgentServerURL), s.cfg.Search())
	}
	return player.NewAgent(name, search.NewEngine(s.cfg.Search()))
}

func (s *Shell) playVsAgent(ctx context.Context) error {
	color, err := s.askColor()
	if err != nil {
		return err
	}

	human := player.NewHuman("player", s.input, s.out)
	agent := s.newAgent("agent")

	if color == othello.Black {
		return s.playMatch(ctx, human, agent)
	}
	return s.playMatch(ctx, agent, human)
}

func (s *Shell) playMatch(ctx context.Context, black, white player.Player) error {
	s.printBoard(othello.NewBoardStart(), othello.Black)

	result, err := match.Run(ctx, black, white, match.Options{
		Observer: s.printTurn,
	})
	if err != nil {
		return err
	}

	s.printResult(result, black, white)
	return nil
}

func (s *Shell) printBoard(board othello.Board, mover othello.Color) {
	for _, line := range board.ASCIIArtLines(mover) {
		s.println(line)
	}
}

func (s *Shell) printTurn(turn match.Turn) {
	if turn.Move.IsPass() {
		s.printf("%s (%s) passes\n", turn.Mover, turn.Player)
	} else {
		s.printf("%s (%s) plays %s\n", turn.Mover, turn.Player, turn.Move)
	}

	s.printBoard(turn.Board, turn.Mover.Opponent())
}

// WinnerLine returns the message announcing the winner.
func WinnerLine(winner othello.Color) string {
	switch winner {
	case othello.Black:
		return "Black player wins!"
	case othello.White:
		return "White player wins!"
	default:
		return "It's a tie!"
	}
}

func (s *Shell) printResult(result *match.Result, black, white player.Player) {
	s.printf("Final score: %d\n", result.Score)
	s.println(WinnerLine(result.Winner))

	for _, side := range []struct {
		color  othello.Color
		player player.Player
	}{{othello.Black, black}, {othello.White, white}} {
		if _, ok := side.player.(*player.Human); ok {
			continue
		}

		s.printf("Average time per move (%s, %s): %s\n",
			side.color, side.player.Name(), result.AverageMoveTime[side.color])
	}
}
