// Package names splits personal names for citation keys.
package names

import "strings"

// Initials turns given names into spaced initials: "Jane Q" -> "J. Q.".
func Initials(given string) string {
	var out []string
	for _, w := range strings.Fields(given) {
		r := []rune(w)
		out = append(out, strings.ToUpper(string(r[0]))+".")
	}
	return strings.Join(out, " ")
}

// Split accepts "Family, Given" or "Given Family" and returns the family
// name with the given names as initials.
func Split(name string) (family, givenInitials string) {
	name = strings.TrimSpace(name)
	if family, given, ok := strings.Cut(name, ","); ok {
		return strings.TrimSpace(family), Initials(given)
	}
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[len(parts)-1], Initials(strings.Join(parts[:len(parts)-1], " "))
}
