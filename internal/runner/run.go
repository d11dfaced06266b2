package runner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned when the trimmed input is empty.
var ErrEmptyInput = errors.New("empty input")

// Runner resolves user input to an executable and launches it, mimicking
// the Windows Run dialog. The lookup sources and the spawner are fields
// so tests can substitute them; NewRunner wires the real ones.
type Runner struct {
	SearchDirs func() []string
	Extensions func() []string
	Spawn      func(path string) error
}

func NewRunner() *Runner {
	return &Runner{
		SearchDirs: SearchDirs,
		Extensions: Extensions,
		Spawn:      Spawn,
	}
}

// Run resolves and launches a single user-submitted command. Resolution
// and spawning are one-shot: a failure is reported back and the user
// retries by submitting again.
func (r *Runner) Run(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return ErrEmptyInput
	}

	var executable string
	if IsExplicitPath(input) {
		resolved, err := ResolveExplicit(input)
		if err != nil {
			return err
		}
		executable = resolved
	} else {
		resolved, ok := ResolveOnPath(input, r.SearchDirs(), r.Extensions())
		if !ok {
			return fmt.Errorf("'%s' is not recognized as a command or program", input)
		}
		executable = resolved
	}

	if err := r.Spawn(executable); err != nil {
		return fmt.Errorf("failed to spawn process: %v", err)
	}

	return nil
}
