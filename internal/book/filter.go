package book

import (
	"strings"

	"github.com/dshills/socialbook/internal/person"
)

// Predicate decides whether a person is displayed.
type Predicate func(person.Person) bool

// ShowAll displays every person.
func ShowAll(person.Person) bool { return true }

// PriorityIs matches persons with exactly the given priority.
func PriorityIs(p person.Priority) Predicate {
	return func(pp person.Person) bool { return pp.Priority == p }
}

// NameContains matches persons whose name contains any of the keywords as a
// whole word, ignoring case. No keywords matches nobody.
func NameContains(keywords ...string) Predicate {
	return func(p person.Person) bool {
		words := strings.Fields(p.Name)
		for _, kw := range keywords {
			for _, w := range words {
				if strings.EqualFold(w, kw) {
					return true
				}
			}
		}
		return false
	}
}

// HasTag matches persons carrying the tag.
func HasTag(tag string) Predicate {
	return func(p person.Person) bool { return p.HasTag(tag) }
}

// All combines predicates; a person must satisfy every one.
func All(preds ...Predicate) Predicate {
	return func(p person.Person) bool {
		for _, pred := range preds {
			if pred != nil && !pred(p) {
				return false
			}
		}
		return true
	}
}
