package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/socialbook/internal/book"
	"github.com/dshills/socialbook/internal/config"
	"github.com/dshills/socialbook/internal/person"
	"github.com/dshills/socialbook/internal/schema"
)

// bookFlags selects the address book and the persons on display.
type bookFlags struct {
	book     string
	priority string
	names    []string
	tag      string
	verbose  bool
}

func (f *bookFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.book, "book", "", "Address book YAML file (default from config, else socialbook.yaml)")
	flags.StringVar(&f.priority, "priority", "", "Only show persons with this priority: high, medium, or low")
	flags.StringSliceVar(&f.names, "name", nil, "Only show persons whose name contains this word (may be repeated)")
	flags.StringVar(&f.tag, "tag", "", "Only show persons with this tag")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")
}

func (f *bookFlags) logf() func(string, ...any) {
	logger := log.New(os.Stderr, "", 0)
	return func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}
}

// loadConfig reads the config file and fills flags the user left unset.
func loadConfig(f *bookFlags, verbose func(string, ...any)) (config.Config, error) {
	path := config.Path()
	if path != "" {
		verbose("Loading config: %s", path)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, exitError(3, "failed to load config: %v", err)
	}
	if f.book == "" {
		f.book = cfg.Book
	}
	return cfg, nil
}

// openBook loads, validates and filters the address book.
func openBook(f *bookFlags, verbose func(string, ...any)) (*book.Book, error) {
	verbose("Loading address book: %s", f.book)
	b, err := book.Load(f.book)
	if err != nil {
		return nil, exitError(3, "failed to load address book: %v", err)
	}
	verbose("Loaded %d persons (%s)", len(b.Persons), b.Hash)

	if errs := schema.Validate(b); len(errs) > 0 {
		lines := make([]string, 0, len(errs)+1)
		lines = append(lines, "address book failed validation:")
		for _, e := range errs {
			lines = append(lines, "  "+e.Error())
		}
		return nil, exitError(5, "%s", strings.Join(lines, "\n"))
	}

	pred, err := f.predicate()
	if err != nil {
		return nil, exitError(3, "%v", err)
	}
	b.UpdateFilter(pred)
	verbose("Showing %d persons", len(b.FilteredPersonList()))
	return b, nil
}

func (f *bookFlags) predicate() (book.Predicate, error) {
	var preds []book.Predicate
	if f.priority != "" {
		p, err := person.ParsePriority(f.priority)
		if err != nil {
			return nil, fmt.Errorf("invalid --priority: %w", err)
		}
		preds = append(preds, book.PriorityIs(p))
	}
	if len(f.names) > 0 {
		preds = append(preds, book.NameContains(f.names...))
	}
	if f.tag != "" {
		preds = append(preds, book.HasTag(f.tag))
	}
	if len(preds) == 0 {
		return book.ShowAll, nil
	}
	return book.All(preds...), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
