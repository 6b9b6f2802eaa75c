package pattern

import (
	"fmt"
	"strings"
)

// Match reports whether uri matches route.
//
// In prefix mode the route only has to match the beginning of the uri and
// rest holds the unmatched remainder, "/" if nothing is left. In exact mode
// the whole uri must match, with an optional trailing slash.
//
// Params holds the values of the {name} placeholders in the order they
// appear in route.
func (c *Compiler) Match(uri, route string, exact bool) (rest string, params []string, ok bool, err error) {
	if !strings.HasPrefix(uri, "/") {
		return "", nil, false, fmt.Errorf("%w: uri must begin with '/' in uri '%s'", ErrInvalidArgument, uri)
	}

	if route == "/" && (!exact || uri == "/") {
		return uri, []string{}, true, nil
	}

	if !ValidateRoute(route) {
		return "", nil, false, fmt.Errorf("%w: '%s'", ErrInvalidRoute, route)
	}

	m, err := c.anchored(route, exact)
	if err != nil {
		return "", nil, false, err
	}

	rest, params, ok = m.match(CleanURI(uri))

	return rest, params, ok, nil
}

func (m *matcher) match(uri string) (string, []string, bool) {
	loc := m.regex.FindStringSubmatchIndex(uri)
	if loc == nil {
		return "", nil, false
	}

	rest := "/"
	if m.rest > 0 && loc[2*m.rest] >= 0 {
		rest = uri[loc[2*m.rest]:loc[2*m.rest+1]]
	}

	params := make([]string, len(m.params))
	for i, idx := range m.params {
		params[i] = uri[loc[2*idx]:loc[2*idx+1]]
	}

	return rest, params, true
}
