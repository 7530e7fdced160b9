// Package book handles reading an address book file and tracking the list of
// persons currently on display.
package book

import (
	"crypto/sha256"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/socialbook/internal/person"
)

// Book holds a loaded address book with its displayed subset.
type Book struct {
	FilePath string
	Hash     string
	Persons  []person.Person

	filter Predicate
}

type file struct {
	Persons []person.Person `yaml:"persons"`
}

// Load reads an address book file, normalizes priorities and computes its
// SHA-256 hash. All persons are displayed initially.
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("book.Load: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("book.Load: %s: %w", path, err)
	}
	b.FilePath = path
	return b, nil
}

// Parse decodes address book YAML.
func Parse(data []byte) (*Book, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	for i := range f.Persons {
		p, err := person.ParsePriority(string(f.Persons[i].Priority))
		if err != nil {
			return nil, fmt.Errorf("persons[%d] (%s): %w", i, f.Persons[i].Name, err)
		}
		f.Persons[i].Priority = p
	}
	h := sha256.Sum256(data)
	return &Book{
		Hash:    fmt.Sprintf("sha256:%x", h),
		Persons: f.Persons,
		filter:  ShowAll,
	}, nil
}

// New builds an in-memory book from persons. The slice is not copied.
func New(persons []person.Person) *Book {
	return &Book{Persons: persons, filter: ShowAll}
}

// UpdateFilter replaces the display predicate. A nil predicate shows everyone.
func (b *Book) UpdateFilter(pred Predicate) {
	if pred == nil {
		pred = ShowAll
	}
	b.filter = pred
}

// FilteredPersonList returns the persons currently on display, in file order.
func (b *Book) FilteredPersonList() []person.Person {
	pred := b.filter
	if pred == nil {
		pred = ShowAll
	}
	shown := make([]person.Person, 0, len(b.Persons))
	for _, p := range b.Persons {
		if pred(p) {
			shown = append(shown, p)
		}
	}
	return shown
}
