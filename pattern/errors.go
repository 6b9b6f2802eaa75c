package pattern

import "errors"

var (
	// ErrInvalidArgument is returned for a malformed shortcut or uri.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidRoute is returned when a route does not follow the route grammar.
	ErrInvalidRoute = errors.New("invalid route")
)
