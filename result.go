package routematch

// RouteOwner is anything that declares a route.
type RouteOwner interface {
	Route() string
}

// StaticRoute is a RouteOwner whose route is the string itself.
type StaticRoute string

// Route returns the route.
func (s StaticRoute) Route() string {
	return string(s)
}

// MatchResult is the outcome of a successful Match.
type MatchResult struct {
	owner     RouteOwner
	restOfURI string
	params    []string
}

func newMatchResult(owner RouteOwner, restOfURI string, params []string) *MatchResult {
	return &MatchResult{
		owner:     owner,
		restOfURI: restOfURI,
		params:    params,
	}
}

// Owner returns the matched route owner.
func (m *MatchResult) Owner() RouteOwner {
	return m.owner
}

// RestOfURI returns the part of the uri not consumed by the route, always
// starting with '/'.
func (m *MatchResult) RestOfURI() string {
	return m.restOfURI
}

// Params returns a copy of the placeholder values, in route order.
func (m *MatchResult) Params() []string {
	params := make([]string, len(m.params))
	copy(params, m.params)

	return params
}

// Param returns the i-th placeholder value, or "" if there is none.
func (m *MatchResult) Param(i int) string {
	if i < 0 || i >= len(m.params) {
		return ""
	}

	return m.params[i]
}
