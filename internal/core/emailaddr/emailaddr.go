// Package emailaddr holds the email-format predicate used at the input boundary.
//
// The accepted grammar: a local part of letters, digits, and ._%+-, an @, a
// domain of letters, digits, dots, and hyphens, a final dot, and a top-level
// label of at least two letters. Strings containing two consecutive dots
// anywhere are rejected.
package emailaddr

import (
	"regexp"
	"strings"
)

// re2 has no lookahead, so the consecutive-dot rule lives in Valid, not here
var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Valid reports whether s matches the accepted email grammar.
// Empty input is invalid. Pure function, safe for concurrent use.
func Valid(s string) bool {
	if s == "" || strings.Contains(s, "..") {
		return false
	}
	return emailRe.MatchString(s)
}
