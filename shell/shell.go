// Package shell implements the interactive advisory session: one game
// state, one heuristic configuration and one style, driven by a
// readline command loop.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/solitairelab/klondike/bridge"
	"github.com/solitairelab/klondike/heuristics"
)

const helpText = "commands: best, mcts [<playouts> <depth>], prob, " +
	"custom <file>, weights <file>, set <field> <value>, " +
	"style <aggressive|conservative|neutral>, help, quit"

type ShellController struct {
	l   *readline.Instance
	out io.Writer

	eng   bridge.Engine
	state bridge.GameState
	cfg   *heuristics.Config
	style heuristics.Style
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(eng bridge.Engine, historyFile string) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mklondike>\033[0m ",
		HistoryFile:     historyFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{
		l:     l,
		out:   l.Stderr(),
		eng:   eng,
		state: eng.NewGame(0),
		cfg:   &heuristics.Config{},
		style: heuristics.StyleNeutral,
	}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) best() {
	moves := sc.eng.RankedMoves(sc.state, sc.style, sc.cfg)
	if len(moves) == 0 {
		sc.showMessage("No moves available.")
		return
	}
	sc.showMessage(moves[0].Move.String())
}

func (sc *ShellController) mcts(args []string) {
	var playouts, depth int
	switch len(args) {
	case 0:
		// engine defaults
	case 2:
		var err error
		if playouts, err = strconv.Atoi(args[0]); err != nil {
			sc.showError(fmt.Errorf("playouts %q is not an integer", args[0]))
			return
		}
		if depth, err = strconv.Atoi(args[1]); err != nil {
			sc.showError(fmt.Errorf("depth %q is not an integer", args[1]))
			return
		}
	default:
		sc.showError(errors.New("usage: mcts [<playouts> <depth>]"))
		return
	}
	m, ok := sc.eng.BestMoveMCTS(sc.state, sc.style, sc.cfg, playouts, depth)
	if !ok {
		sc.showMessage("No move found.")
		return
	}
	sc.showMessage(m.String())
}

func (sc *ShellController) prob() {
	cols := sc.eng.ColumnProbabilities(sc.state)
	for i, col := range cols {
		sc.showMessage(fmt.Sprintf("Column %d:", i+1))
		for _, cp := range col {
			sc.showMessage(fmt.Sprintf("  %s: %.2f%%", cp.Card, cp.P*100))
		}
	}
}

func (sc *ShellController) loadCustom(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := normalizeStateDoc(raw)
	if err != nil {
		return err
	}
	state, err := sc.eng.StateFromJSON(doc)
	if err != nil {
		return err
	}
	sc.state = state
	log.Debug().Str("path", path).Msg("loaded custom state")
	sc.showMessage("loaded " + path)
	return nil
}

func (sc *ShellController) loadWeights(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg, err := heuristics.FromJSON(raw)
	if err != nil {
		return err
	}
	// replacement is wholesale: all ten fields come from the document
	sc.cfg = cfg
	sc.showMessage("heuristics loaded " + path)
	return nil
}

func (sc *ShellController) setField(field, value string) {
	if err := sc.cfg.Set(field, value); err != nil {
		sc.showError(err)
		return
	}
	sc.showMessage(field + " set to " + value)
}

func (sc *ShellController) setStyle(name string) {
	style, err := heuristics.StyleFromString(name)
	if err != nil {
		sc.showError(err)
		return
	}
	sc.style = style
	sc.showMessage("style set to " + style.String())
}

// LoadWeightsFile replaces the session configuration from a weights
// document; used for startup flags.
func (sc *ShellController) LoadWeightsFile(path string) error {
	return sc.loadWeights(path)
}

// SetStyle replaces the session style.
func (sc *ShellController) SetStyle(style heuristics.Style) {
	sc.style = style
}

func (sc *ShellController) commandSwitch(line string, sig chan os.Signal) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "best":
		sc.best()

	case "mcts":
		sc.mcts(args)

	case "prob":
		sc.prob()

	case "custom":
		if len(args) != 1 {
			sc.showError(errors.New("usage: custom <file>"))
			break
		}
		if err := sc.loadCustom(args[0]); err != nil {
			sc.showError(err)
		}

	case "weights":
		if len(args) != 1 {
			sc.showError(errors.New("usage: weights <file>"))
			break
		}
		if err := sc.loadWeights(args[0]); err != nil {
			sc.showError(err)
		}

	case "set":
		if len(args) != 2 {
			sc.showError(errors.New("usage: set <field> <value>"))
			break
		}
		sc.setField(args[0], args[1])

	case "style":
		if len(args) != 1 {
			sc.showError(errors.New("usage: style <aggressive|conservative|neutral>"))
			break
		}
		sc.setStyle(args[0])

	case "help":
		sc.showMessage(helpText)

	case "quit", "exit":
		sig <- syscall.SIGINT
		return errors.New("sending quit signal")

	default:
		sc.showMessage("Unknown command. Type 'help' for list.")
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if err := sc.commandSwitch(line, sig); err != nil {
			break
		}
	}
	log.Debug().Msg("Exiting readline loop...")
}
