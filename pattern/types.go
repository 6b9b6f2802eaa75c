package pattern

import (
	"regexp"
	"sync"

	"github.com/go-logr/logr"
)

// Compiler turns routes into regular expressions and matches uris against
// them. Compiled patterns are cached per raw route for the lifetime of the
// Compiler.
type Compiler struct {
	shortcuts *Shortcuts
	log       logr.Logger

	mu       sync.RWMutex
	compiled map[string]string
	prefix   map[string]*matcher
	exact    map[string]*matcher
}

// Option configures a Compiler.
type Option func(*Compiler)

// matcher is an anchored pattern ready to run against a normalized uri.
type matcher struct {
	regex  *regexp.Regexp
	params []int
	rest   int
}
