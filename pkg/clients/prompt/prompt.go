package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when confirmation is required but there is no
// input to read the answer from
var ErrNotInteractive = errors.New("no input available to confirm the operation")

// Prompt asks the operator to confirm a destructive operation
//
//go:generate mockery --name Prompt --filename prompt.go
type Prompt interface {
	// Confirm displays message and returns true only when the operator types
	// the expected value back
	Confirm(message, expected string) (bool, error)
}

// New returns a Prompt reading from in. When in is a terminal an interactive
// form is rendered, otherwise a single line is read.
func New(in io.Reader, out io.Writer, l logger.Logger) Prompt {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return &FormPrompt{log: l}
	}

	return &LinePrompt{in: bufio.NewReader(in), out: out, log: l}
}

// LinePrompt reads the confirmation as a single line of text
type LinePrompt struct {
	in  *bufio.Reader
	out io.Writer
	log logger.Logger
}

func (p *LinePrompt) Confirm(message, expected string) (bool, error) {
	fmt.Fprintln(p.out, message)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	if errors.Is(err, io.EOF) && line == "" {
		return false, ErrNotInteractive
	}

	answer := strings.TrimSpace(line)
	p.log.Debug("Read confirmation", "answer", answer, "expected", expected)

	return answer == expected, nil
}

// FormPrompt renders the confirmation as a terminal form
type FormPrompt struct {
	log logger.Logger
}

func (p *FormPrompt) Confirm(message, expected string) (bool, error) {
	var answer string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(message).
				Placeholder(expected).
				Value(&answer),
		),
	)

	err := form.Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}

		return false, fmt.Errorf("unable to read confirmation: %w", err)
	}

	p.log.Debug("Read confirmation", "answer", answer, "expected", expected)

	return strings.TrimSpace(answer) == expected, nil
}

// AutoApprove confirms every operation, it is used when interactive mode is
// disabled
type AutoApprove struct{}

func (AutoApprove) Confirm(message, expected string) (bool, error) {
	return true, nil
}
