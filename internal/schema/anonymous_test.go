package schema

import (
	"testing"

	fuzz "github.com/google/gofuzz"
)

func TestAnonymousTypeNameSequence(t *testing.T) {
	s := New(1, 0)
	want := []string{"Bar_element", "Bar_element_2", "Bar_element_3"}
	for i, w := range want {
		if got := s.AnonymousTypeName("Bar"); got != w {
			t.Fatalf("call %d AnonymousTypeName(Bar) = %q, want %q", i+1, got, w)
		}
	}
}

func TestAnonymousTypeNameIndependentCounters(t *testing.T) {
	s := New(1, 0)
	calls := []struct{ owner, want string }{
		{"Bar", "Bar_element"},
		{"Baz", "Baz_element"},
		{"Bar", "Bar_element_2"},
		{"Baz", "Baz_element_2"},
		{"Baz", "Baz_element_3"},
	}
	for _, call := range calls {
		if got := s.AnonymousTypeName(call.owner); got != call.want {
			t.Fatalf("AnonymousTypeName(%s) = %q, want %q", call.owner, got, call.want)
		}
	}
	if got := New(1, 1).AnonymousTypeName("Bar"); got != "Bar_element" {
		t.Fatalf("fresh table AnonymousTypeName(Bar) = %q, want Bar_element", got)
	}
}

func TestAnonymousTypeNameUnique(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 6)
	for round := 0; round < 50; round++ {
		var owners []string
		f.Fuzz(&owners)
		s := New(1, 0)
		seen := make(map[string]string)
		for i := 0; i < 40; i++ {
			owner := owners[i%len(owners)]
			name := s.AnonymousTypeName(owner)
			if prev, ok := seen[name]; ok {
				t.Fatalf("AnonymousTypeName(%q) = %q, already produced for %q", owner, name, prev)
			}
			seen[name] = owner
		}
	}
}
