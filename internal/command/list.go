package command

import (
	"fmt"
	"strings"

	"github.com/dshills/socialbook/internal/stats"
)

const (
	ListWord    = "list"
	ListUsage   = ListWord + ": Lists all the people currently shown in SocialBook.\nExample: " + ListWord
	MessageList = "Listed %d people"
)

// List prints the displayed persons, numbered from 1.
type List struct{}

func (List) Execute(m Model) (Result, error) {
	if err := stats.RequireModel(m); err != nil {
		return Result{}, &Error{Command: ListWord, Err: err}
	}
	shown := m.FilteredPersonList()
	var b strings.Builder
	fmt.Fprintf(&b, MessageList, len(shown))
	for i, p := range shown {
		fmt.Fprintf(&b, "\n%d. %s", i+1, p.Summary())
	}
	return Result{Feedback: b.String()}, nil
}
