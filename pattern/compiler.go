package pattern

import (
	"fmt"
	"regexp"

	"github.com/go-logr/logr"
	"github.com/valyala/bytebufferpool"
)

// WithLogger sets the logger used to report compilations and shortcut
// definitions at V(1).
func WithLogger(logger logr.Logger) Option {
	return func(c *Compiler) {
		c.log = logger
	}
}

// NewCompiler returns a Compiler expanding the given shortcuts.
// A nil registry is replaced by an empty one.
func NewCompiler(shortcuts *Shortcuts, opts ...Option) *Compiler {
	if shortcuts == nil {
		shortcuts = NewShortcuts()
	}

	c := &Compiler{
		shortcuts: shortcuts,
		log:       logr.Discard(),
	}
	c.reset()

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Define registers a shortcut and drops the compiled cache, so routes
// referencing the token pick up the new fragment.
func (c *Compiler) Define(token, fragment string) error {
	if err := c.shortcuts.Define(token, fragment); err != nil {
		return err
	}

	c.mu.Lock()
	c.reset()
	c.mu.Unlock()

	c.log.V(1).Info("shortcut defined", "shortcut", token, "pattern", fragment)

	return nil
}

func (c *Compiler) reset() {
	c.compiled = make(map[string]string)
	c.prefix = make(map[string]*matcher)
	c.exact = make(map[string]*matcher)
}

// Compile returns the unanchored pattern of route.
//
// Shortcut tokens are replaced by their fragments and every {name}
// placeholder becomes a capture named p0, p1, ... from left to right.
// The result is cached under the raw route.
func (c *Compiler) Compile(route string) string {
	c.mu.RLock()
	compiled, ok := c.compiled[route]
	c.mu.RUnlock()

	if ok {
		return compiled
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.compile(route)
}

// compile must be called with c.mu held for writing.
func (c *Compiler) compile(route string) string {
	if compiled, ok := c.compiled[route]; ok {
		return compiled
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	start := 0
	for i, loc := range placeholderRegex.FindAllStringIndex(route, -1) {
		buf.WriteString(c.shortcuts.Expand(route[start:loc[0]]))
		fmt.Fprintf(buf, paramGroup, i)
		start = loc[1]
	}
	buf.WriteString(c.shortcuts.Expand(route[start:]))

	compiled := buf.String()
	c.compiled[route] = compiled

	c.log.V(1).Info("route compiled", "route", route, "pattern", compiled)

	return compiled
}

// anchored returns the cached matcher of route for the given mode.
func (c *Compiler) anchored(route string, exact bool) (*matcher, error) {
	c.mu.RLock()
	m, ok := c.matchers(exact)[route]
	c.mu.RUnlock()

	if ok {
		return m, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cache := c.matchers(exact)
	if m, ok := cache[route]; ok {
		return m, nil
	}

	suffix := prefixSuffix
	if exact {
		suffix = exactSuffix
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString("^")
	buf.WriteString(c.compile(route))
	buf.WriteString(suffix)

	regex, err := regexp.Compile(buf.String())
	if err != nil {
		return nil, fmt.Errorf("%w: route '%s' compiles to '%s': %v", ErrInvalidRoute, route, buf.String(), err)
	}

	m = newMatcher(regex)
	cache[route] = m

	return m, nil
}

// matchers must be called with c.mu held.
func (c *Compiler) matchers(exact bool) map[string]*matcher {
	if exact {
		return c.exact
	}

	return c.prefix
}

func newMatcher(regex *regexp.Regexp) *matcher {
	m := &matcher{regex: regex, rest: regex.SubexpIndex(restGroupName)}

	for i := 0; ; i++ {
		idx := regex.SubexpIndex(fmt.Sprintf("p%d", i))
		if idx < 0 {
			break
		}

		m.params = append(m.params, idx)
	}

	return m
}
