package names

import "testing"

func TestInitials(t *testing.T) {
	if got := Initials("Jane Q"); got != "J. Q." {
		t.Fatalf("Initials: want 'J. Q.', got %q", got)
	}
	if got := Initials("  "); got != "" {
		t.Fatalf("Initials blank: want '', got %q", got)
	}
}

func TestSplit(t *testing.T) {
	cases := []struct{ in, fam, giv string }{
		{"Herbert, Frank", "Herbert", "F."},
		{"John Ronald Reuel Tolkien", "Tolkien", "J. R. R."},
		{"Orwell", "Orwell", ""},
		{"Albert Camus", "Camus", "A."},
		{"", "", ""},
	}
	for _, c := range cases {
		fam, giv := Split(c.in)
		if fam != c.fam || giv != c.giv {
			t.Fatalf("Split(%q): got (%q,%q) want (%q,%q)", c.in, fam, giv, c.fam, c.giv)
		}
	}
}
