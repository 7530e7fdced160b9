// Package command implements the SocialBook command interpreter.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/socialbook/internal/stats"
)

// Model is the application state commands read from.
type Model = stats.Model

// Result is returned to the caller for display.
type Result struct {
	Feedback string
}

// Command is a parsed, executable user command.
type Command interface {
	Execute(m Model) (Result, error)
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFormat  = errors.New("invalid command format")
)

// Error reports a failed command execution.
type Error struct {
	Command string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// FormatError carries the usage text of the command that was misused.
type FormatError struct {
	Usage string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s\n%s", ErrInvalidFormat, e.Usage)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

type spec struct {
	usage string
	build func() Command
}

var commands = map[string]spec{
	StatisticsWord: {StatisticsUsage, func() Command { return &Statistics{} }},
	ListWord:       {ListUsage, func() Command { return List{} }},
}

// Parse turns a line of user input into a command. Commands take no arguments.
func Parse(input string) (Command, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, &FormatError{Usage: Usage()}
	}
	word := fields[0]
	sp, ok := commands[word]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, word)
	}
	if len(fields) > 1 {
		return nil, &FormatError{Usage: sp.usage}
	}
	return sp.build(), nil
}

// Usage returns the usage text of every command.
func Usage() string {
	return strings.Join([]string{StatisticsUsage, ListUsage}, "\n\n")
}
