package book

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/dshills/socialbook/internal/person"
)

func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(filepath.Dir(filename)))
}

func loadSample(t *testing.T) *Book {
	t.Helper()
	b, err := Load(filepath.Join(projectRoot(), "testdata", "books", "sample.yaml"))
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	return b
}

func TestLoad(t *testing.T) {
	b := loadSample(t)
	if len(b.Persons) != 4 {
		t.Fatalf("got %d persons, want 4", len(b.Persons))
	}
	if !strings.HasPrefix(b.Hash, "sha256:") {
		t.Errorf("hash %q missing sha256 prefix", b.Hash)
	}
	// lower-case priorities are normalized
	if b.Persons[1].Priority != person.PriorityHigh {
		t.Errorf("Persons[1].Priority = %q, want HIGH", b.Persons[1].Priority)
	}
	if got := len(b.FilteredPersonList()); got != 4 {
		t.Errorf("default filter shows %d persons, want 4", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "persons:\n  - name: Roy\n    priority: urgent\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid priority")
	}
	if !strings.Contains(err.Error(), "Roy") {
		t.Errorf("error %q should name the person", err)
	}
}

func TestParseEmpty(t *testing.T) {
	b, err := Parse([]byte("persons: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(b.FilteredPersonList()) != 0 {
		t.Error("expected empty list")
	}
}

func TestFilters(t *testing.T) {
	b := loadSample(t)

	tests := []struct {
		name string
		pred Predicate
		want []string
	}{
		{"all", ShowAll, []string{"Alex Yeoh", "Bernice Yu", "Charlotte Oliveiro", "David Li"}},
		{"nil", nil, []string{"Alex Yeoh", "Bernice Yu", "Charlotte Oliveiro", "David Li"}},
		{"high", PriorityIs(person.PriorityHigh), []string{"Alex Yeoh", "Bernice Yu"}},
		{"name", NameContains("alex", "david"), []string{"Alex Yeoh", "David Li"}},
		{"name partial word", NameContains("Ale"), nil},
		{"tag", HasTag("friends"), []string{"Alex Yeoh", "Bernice Yu"}},
		{"combined", All(HasTag("friends"), PriorityIs(person.PriorityHigh), NameContains("yu")), []string{"Bernice Yu"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b.UpdateFilter(tt.pred)
			got := b.FilteredPersonList()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d persons, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("[%d] = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestFilteredListDoesNotAlias(t *testing.T) {
	b := New([]person.Person{{Name: "A", Priority: person.PriorityLow}})
	shown := b.FilteredPersonList()
	shown[0].Name = "changed"
	if b.Persons[0].Name != "A" {
		t.Error("modifying the displayed list changed the book")
	}
}
