package shared

import "strings"

// Key canonicalizes a free-text identifier for lookups: surrounding
// whitespace is trimmed and case is folded. Every proficiency and
// source-name comparison in the engine goes through this function, so
// authoring variance ("Stealth", " stealth ") never breaks matching.
func Key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// KeysEqual reports whether two raw strings resolve to the same canonical key.
func KeysEqual(a, b string) bool {
	return Key(a) == Key(b)
}
