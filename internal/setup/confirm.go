package setup

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// Confirmer decides whether an already-configured setup should run
// again. Injected so tests and unattended callers can answer without a
// terminal.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// InteractiveConfirmer asks on the terminal. When stdin is not a TTY
// the answer is no, so scripted runs never hang on the prompt.
type InteractiveConfirmer struct{}

func (InteractiveConfirmer) Confirm(prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, nil
	}

	rl, err := readline.New(prompt)
	if err != nil {
		return false, err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		// ^C or EOF counts as a decline.
		return false, nil
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
