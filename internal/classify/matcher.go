package classify

import "regexp"

// Matcher is a tagged value: either an exact-string comparison or a
// compiled lexical pattern. The variant is chosen when the catalog is
// built, not dispatched at runtime.
//
// Design decision: A small struct with two mutually exclusive fields
// rather than an interface because the catalog is static data; there is
// nothing polymorphic to extend, and a flat value keeps catalog entries
// literal and reviewable.
type Matcher struct {
	exact string
	re    *regexp.Regexp
}

// Exact builds a case-sensitive exact-equality matcher.
// Used for declared input types, which are canonical tokens.
func Exact(value string) Matcher {
	return Matcher{exact: value}
}

// Regex builds a case-insensitive lexical matcher.
// The expression is compiled once at catalog construction; a malformed
// expression is a programming error and panics at startup.
func Regex(expr string) Matcher {
	return Matcher{re: regexp.MustCompile(`(?i)` + expr)}
}

// Match tests s and returns the matched text.
// For exact matchers the matched text is the value itself.
func (m Matcher) Match(s string) (string, bool) {
	if m.re != nil {
		if loc := m.re.FindStringIndex(s); loc != nil {
			return s[loc[0]:loc[1]], true
		}
		return "", false
	}
	if s == m.exact {
		return s, true
	}
	return "", false
}
