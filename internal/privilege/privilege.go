// Package privilege models the elevated scope required for dictionary I/O.
//
// Dictionary resolution runs at construction time but can be reached
// indirectly from restricted call sites (embedded scripting, host-driven
// callbacks) that must not be able to trigger filesystem probes on their
// own. Instead of an ambient security toggle, the capability is an explicit
// token: the process entry point acquires one with Grant and threads it into
// the resolver, and every probe or load runs through Do. The zero-value
// token carries no privilege and is rejected before the action runs.
package privilege

import "errors"

// ErrNoPrivilege is returned when an action is attempted with a token that
// was not issued by Grant.
var ErrNoPrivilege = errors.New("privilege: filesystem access attempted without a granted token")

// Token is the capability to perform dictionary filesystem I/O.
type Token struct {
	granted bool
}

// Grant issues a privilege token. Only process entry points (plugin
// construction, the CLI root) should call this; everything downstream
// receives the token as a parameter.
func Grant() Token {
	return Token{granted: true}
}

// Valid reports whether the token was issued by Grant.
func (t Token) Valid() bool { return t.granted }

// Do runs fn inside the privileged scope. The scope is stack-disciplined: it
// begins and ends on this call frame and never crosses a goroutine boundary.
// Errors from fn pass through unaltered.
func Do[T any](tok Token, fn func() (T, error)) (T, error) {
	if !tok.granted {
		var zero T
		return zero, ErrNoPrivilege
	}
	return fn()
}
