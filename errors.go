package routematch

import "github.com/fasthttp/routematch/pattern"

var (
	// ErrInvalidArgument reports a malformed shortcut, uri or owner list.
	ErrInvalidArgument = pattern.ErrInvalidArgument

	// ErrInvalidRoute reports a route that does not follow the route grammar.
	ErrInvalidRoute = pattern.ErrInvalidRoute
)
