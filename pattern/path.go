package pattern

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

// CleanURI collapses every run of consecutive '/' in uri into a single one.
func CleanURI(uri string) string {
	if !strings.Contains(uri, "//") {
		return uri
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i := 0; i < len(uri); i++ {
		if uri[i] == '/' && i > 0 && uri[i-1] == '/' {
			continue
		}

		buf.WriteByte(uri[i])
	}

	return buf.String()
}

// ValidateRoute checks route against the route grammar: one or more
// '/'-prefixed segments, each a literal, a #shortcut or a {placeholder}.
func ValidateRoute(route string) bool {
	return routeGrammarRegex.MatchString(route)
}
