package httpq

import "errors"

var (
	// ErrMalformedStartLine: the first line of the head block does not
	// consist of exactly three space-separated tokens. Surfaces as
	// StateInvalid; retrievable through Err for diagnostics.
	ErrMalformedStartLine = errors.New("malformed start line")

	// ErrIncompleteIdentity: a message was composed with only a part of its
	// mandatory start line fields. Either all of them must be given, or none.
	ErrIncompleteIdentity = errors.New("start line fields must be set all-or-nothing")

	// ErrNoJSONBody: JSON decoding was requested on a message that carries
	// no JSON Content-Type or no body at all.
	ErrNoJSONBody = errors.New("message carries no json body")
)
