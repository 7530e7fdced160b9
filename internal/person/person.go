// Package person defines the contact record held in an address book.
package person

import (
	"fmt"
	"strings"
)

// Person is a single contact in the address book.
type Person struct {
	Name     string   `yaml:"name" json:"name"`
	Phone    string   `yaml:"phone,omitempty" json:"phone,omitempty"`
	Email    string   `yaml:"email,omitempty" json:"email,omitempty"`
	Address  string   `yaml:"address,omitempty" json:"address,omitempty"`
	Priority Priority `yaml:"priority" json:"priority"`
	Tags     []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// HasTag reports whether the person carries tag, compared case-insensitively.
func (p Person) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Summary is the one-line form used in list output.
func (p Person) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]", p.Name, p.Priority)
	if p.Phone != "" {
		fmt.Fprintf(&b, " Phone: %s", p.Phone)
	}
	if p.Email != "" {
		fmt.Fprintf(&b, " Email: %s", p.Email)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, " Tags: %s", strings.Join(p.Tags, ", "))
	}
	return b.String()
}
