package pattern

import (
	"fmt"
	"regexp"
	"regexp/syntax"
	"sort"
	"strings"
	"sync"
)

// Shortcuts stores named regex fragments that can be referenced from routes
// as #name segments.
type Shortcuts struct {
	mu       sync.RWMutex
	lookup   map[string]string
	replacer *strings.Replacer
}

// NewShortcuts returns an empty registry.
func NewShortcuts() *Shortcuts {
	return &Shortcuts{
		lookup:   make(map[string]string),
		replacer: strings.NewReplacer(),
	}
}

// Define registers fragment under token, replacing any previous fragment.
//
// The token must look like #name and the fragment must be a valid regular
// expression. Capturing groups inside the fragment are turned into
// non-capturing ones, so shortcuts never produce route parameters.
func (s *Shortcuts) Define(token, fragment string) error {
	if !shortcutTokenRegex.MatchString(token) {
		return fmt.Errorf("%w: shortcut '%s' must match #name", ErrInvalidArgument, token)
	}

	if _, err := regexp.Compile(fragment); err != nil {
		return fmt.Errorf("%w: pattern '%s' of shortcut '%s': %v", ErrInvalidArgument, fragment, token, err)
	}

	stored, err := uncapture(fragment)
	if err != nil {
		return fmt.Errorf("%w: pattern '%s' of shortcut '%s': %v", ErrInvalidArgument, fragment, token, err)
	}

	s.mu.Lock()
	s.lookup[token] = "(?:" + stored + ")"
	s.replacer = newReplacer(s.lookup)
	s.mu.Unlock()

	return nil
}

// Lookup returns the stored fragment of token.
func (s *Shortcuts) Lookup(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fragment, ok := s.lookup[token]

	return fragment, ok
}

// Len returns the number of registered shortcuts.
func (s *Shortcuts) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.lookup)
}

// Expand replaces every registered token found in str with its fragment in a
// single pass. Inserted fragments are not scanned again.
func (s *Shortcuts) Expand(str string) string {
	s.mu.RLock()
	replacer := s.replacer
	s.mu.RUnlock()

	return replacer.Replace(str)
}

// newReplacer builds a replacer where longer tokens take precedence over
// the shorter ones they start with (#slugs before #slug).
func newReplacer(lookup map[string]string) *strings.Replacer {
	tokens := make([]string, 0, len(lookup))
	for token := range lookup {
		tokens = append(tokens, token)
	}

	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}

		return tokens[i] < tokens[j]
	})

	oldnew := make([]string, 0, 2*len(tokens))
	for _, token := range tokens {
		oldnew = append(oldnew, token, lookup[token])
	}

	return strings.NewReplacer(oldnew...)
}

// uncapture rewrites the capturing groups of fragment as non-capturing ones.
// Fragments without groups are returned untouched.
func uncapture(fragment string) (string, error) {
	re, err := syntax.Parse(fragment, syntax.Perl)
	if err != nil {
		return "", err
	}

	if re.MaxCap() == 0 {
		return fragment, nil
	}

	return stripCaptures(re).String(), nil
}

func stripCaptures(re *syntax.Regexp) *syntax.Regexp {
	for i, sub := range re.Sub {
		re.Sub[i] = stripCaptures(sub)
	}

	if re.Op == syntax.OpCapture {
		return re.Sub[0]
	}

	return re
}
