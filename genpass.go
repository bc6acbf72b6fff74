// Package genpass implements the genpass command line.
package genpass

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"melato.org/genpass/password"
	"melato.org/genpass/usage"
)

const (
	red   = "\x1B[01;31m"
	reset = "\x1B[00m"
)

// App runs the command.  Output goes to Stdout and Stderr.
type App struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Generator *password.Generator
	Banner    *usage.Banner
	// Color enables terminal escapes in messages written to Stderr.
	Color bool
}

// NewApp returns an App that writes to the process standard streams
// and reads from the system random source.
func NewApp(banner *usage.Banner) *App {
	return &App{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Generator: &password.Generator{Source: password.System},
		Banner:    banner,
		Color:     IsTerminal(os.Stderr),
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run parses the arguments and generates the password.
// It returns a *Error on failure, and writes nothing to Stdout unless it succeeds.
func (t *App) Run(args []string) error {
	config, err := Build(args)
	if err != nil {
		return err
	}
	generator := t.Generator
	if generator == nil {
		generator = &password.Generator{}
	}
	s, err := generator.Generate(config.Length)
	if err != nil {
		return &Error{Kind: AppError, Err: err}
	}
	if _, err = fmt.Fprintln(t.Stdout, s); err != nil {
		return &Error{Kind: AppError, Err: err}
	}
	return nil
}

// Main runs the command with the program arguments and returns the process exit code.
func (t *App) Main(args []string) int {
	if WantsHelp(args) {
		t.printUsage()
		return 0
	}
	err := t.Run(args)
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		t.printError(e.Kind.Label(), err)
		if e.Kind == ConfigError {
			t.printUsage()
		}
	} else {
		fmt.Fprintln(t.Stderr, err)
	}
	return ExitCode(err)
}

func (t *App) printError(label string, err error) {
	if t.Color {
		label = red + label + reset
	}
	fmt.Fprintf(t.Stderr, "%s: %v\n", label, err)
}

func (t *App) printUsage() {
	if t.Banner != nil {
		t.Banner.Write(t.Stderr, t.Color)
	}
}
