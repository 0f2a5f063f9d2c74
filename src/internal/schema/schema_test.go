package schema

import (
	"strings"
	"testing"
)

func TestNewBookKeepsID(t *testing.T) {
	b := NewBook("A1", "Dune", "Herbert", "", 1965)
	b.Title = "Dune Messiah"
	b.Year = 1969
	if b.ID() != "A1" {
		t.Fatalf("id changed: %q", b.ID())
	}
	if b.Title != "Dune Messiah" || b.Year != 1969 {
		t.Fatalf("fields not updated: %+v", b)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		isbn string
		want string
	}{
		{"", "ISBN: not provided"},
		{"   ", "ISBN: not provided"},
		{"978-2070368228", "ISBN: 978-2070368228"},
	}
	for _, c := range cases {
		got := NewBook("x", "1984", "George Orwell", c.isbn, 1949).String()
		if !strings.Contains(got, c.want) {
			t.Fatalf("String()=%q want substring %q", got, c.want)
		}
	}
}

func TestIDWithPrefix(t *testing.T) {
	gen := IDWithPrefix(DefaultIDPrefix)
	a, b := gen(), gen()
	if !strings.HasPrefix(a, "ID-") {
		t.Fatalf("missing prefix: %q", a)
	}
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
	if NewID() == "" {
		t.Fatalf("empty id")
	}
}
