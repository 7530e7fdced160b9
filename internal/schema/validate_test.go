package schema

import (
	"strings"
	"testing"

	"github.com/dshills/socialbook/internal/book"
	"github.com/dshills/socialbook/internal/person"
)

func validBook() *book.Book {
	return book.New([]person.Person{
		{Name: "Alex Yeoh", Email: "alex@example.com", Priority: person.PriorityHigh, Tags: []string{"friends"}},
		{Name: "Bernice Yu", Priority: person.PriorityLow},
	})
}

func TestValidateValid(t *testing.T) {
	errs := Validate(validBook())
	for _, e := range errs {
		t.Errorf("unexpected error: %s", e)
	}
}

func TestValidateNil(t *testing.T) {
	errs := Validate(nil)
	if len(errs) != 1 || errs[0].Path != "book" {
		t.Errorf("Validate(nil) = %v, want single book error", errs)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(b *book.Book)
		wantPath string
	}{
		{"missing name", func(b *book.Book) { b.Persons[0].Name = "  " }, "persons[0].name"},
		{"duplicate name", func(b *book.Book) { b.Persons[1].Name = "alex yeoh" }, "persons[1].name"},
		{"bad priority", func(b *book.Book) { b.Persons[1].Priority = "URGENT" }, "persons[1].priority"},
		{"bad email", func(b *book.Book) { b.Persons[0].Email = "alex.example.com" }, "persons[0].email"},
		{"empty tag", func(b *book.Book) { b.Persons[0].Tags = []string{"friends", ""} }, "persons[0].tags[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBook()
			tt.mutate(b)
			errs := Validate(b)
			found := false
			for _, e := range errs {
				if e.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error at %s, got %v", tt.wantPath, errs)
			}
		})
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{"persons[0].name", "required"}
	if !strings.Contains(e.Error(), "persons[0].name: required") {
		t.Errorf("unexpected error string %q", e.Error())
	}
}
