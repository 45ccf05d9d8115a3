package controllers

import (
	"strings"
)

// Authenticator gates the terminal behind an access code. The code comes
// from the environment at startup; an empty code means the terminal
// starts unlocked.
type Authenticator struct {
	accessCode string
}

func NewAuthenticator(accessCode string) *Authenticator {
	return &Authenticator{accessCode: accessCode}
}

// Required reports whether the session starts locked
func (a *Authenticator) Required() bool {
	return a.accessCode != ""
}

// Verify compares the trimmed input against the access code. Matching is
// exact and case-sensitive; there is no lockout, a wrong code just asks
// again.
func (a *Authenticator) Verify(input string) bool {
	if a.accessCode == "" {
		return true
	}
	return strings.TrimSpace(input) == a.accessCode
}

// MaskEcho produces the length-preserving echo for secret input so the
// transcript shows that something was typed without showing what.
func MaskEcho(input, mask string) string {
	if mask == "" {
		mask = "*"
	}
	return strings.Repeat(mask, len([]rune(input)))
}
