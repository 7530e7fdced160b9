// Package schema validates a loaded address book before commands run on it.
package schema

import (
	"fmt"
	"strings"

	"github.com/dshills/socialbook/internal/book"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks every person in the book for structural validity.
func Validate(b *book.Book) []ValidationError {
	var errs []ValidationError
	if b == nil {
		return []ValidationError{{"book", "required"}}
	}

	names := make(map[string]bool)
	for i, p := range b.Persons {
		prefix := fmt.Sprintf("persons[%d]", i)
		name := strings.TrimSpace(p.Name)
		key := strings.ToLower(name)
		if name == "" {
			errs = append(errs, ValidationError{prefix + ".name", "required"})
		} else if names[key] {
			errs = append(errs, ValidationError{prefix + ".name", fmt.Sprintf("duplicate person: %q", p.Name)})
		} else {
			names[key] = true
		}
		if !p.Priority.Valid() {
			errs = append(errs, ValidationError{prefix + ".priority", fmt.Sprintf("invalid: %q", p.Priority)})
		}
		if p.Email != "" && !strings.Contains(p.Email, "@") {
			errs = append(errs, ValidationError{prefix + ".email", fmt.Sprintf("invalid: %q", p.Email)})
		}
		for j, tag := range p.Tags {
			if strings.TrimSpace(tag) == "" {
				errs = append(errs, ValidationError{fmt.Sprintf("%s.tags[%d]", prefix, j), "must not be empty"})
			}
		}
	}
	return errs
}
