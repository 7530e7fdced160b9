// Package stats computes priority statistics over the displayed persons.
package stats

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/dshills/socialbook/internal/person"
)

// User-visible message templates. Each placeholder receives a decimal count.
const (
	MessageSuccess        = "Here are all the statistics:\n%s"
	MessageTotalPeople    = "Total Number Of People: %s"
	MessageHighPriority   = "Number Of HIGH Priority People: %s"
	MessageMediumPriority = "Number Of MEDIUM Priority People: %s"
	MessageLowPriority    = "Number Of LOW Priority People: %s"
)

// ErrInvalidState is returned when there is no model to read persons from.
var ErrInvalidState = errors.New("stats: invalid state: no person list available")

// Model provides the list of persons currently on display.
type Model interface {
	FilteredPersonList() []person.Person
}

// Report holds the counts for one statistics request. Reports are comparable
// with ==.
type Report struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Compute counts persons by priority. Persons with an unrecognized priority
// only contribute to Total.
func Compute(persons []person.Person) Report {
	r := Report{Total: len(persons)}
	for _, p := range persons {
		switch p.Priority {
		case person.PriorityHigh:
			r.High++
		case person.PriorityMedium:
			r.Medium++
		case person.PriorityLow:
			r.Low++
		}
	}
	return r
}

// FromModel computes a report over the model's displayed persons.
func FromModel(m Model) (Report, error) {
	if err := RequireModel(m); err != nil {
		return Report{}, err
	}
	return Compute(m.FilteredPersonList()), nil
}

// RequireModel returns ErrInvalidState if m is nil or wraps a nil pointer.
func RequireModel(m Model) error {
	if isNil(m) {
		return ErrInvalidState
	}
	return nil
}

func isNil(m Model) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Count returns the count for a single priority.
func (r Report) Count(p person.Priority) int {
	switch p {
	case person.PriorityHigh:
		return r.High
	case person.PriorityMedium:
		return r.Medium
	case person.PriorityLow:
		return r.Low
	}
	return 0
}

// Lines returns the four formatted lines: total, high, medium, low.
func (r Report) Lines() []string {
	return []string{
		fmt.Sprintf(MessageTotalPeople, strconv.Itoa(r.Total)),
		fmt.Sprintf(MessageHighPriority, strconv.Itoa(r.High)),
		fmt.Sprintf(MessageMediumPriority, strconv.Itoa(r.Medium)),
		fmt.Sprintf(MessageLowPriority, strconv.Itoa(r.Low)),
	}
}

// String joins Lines with newlines.
func (r Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Message wraps the report in the success template shown to the user.
func (r Report) Message() string {
	return fmt.Sprintf(MessageSuccess, r.String())
}
