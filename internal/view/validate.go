package view

import "regexp"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address. A permissive
// shape check only; the server is the authority on account identity.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
