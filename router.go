package routematch

import (
	"fmt"

	"github.com/fasthttp/routematch/pattern"
	"github.com/go-logr/logr"
	gotilsbytes "github.com/savsgio/gotils/bytes"
	gotilsstrconv "github.com/savsgio/gotils/strconv"
	"github.com/valyala/fasthttp"
)

// MatchResultUserValue is the user value key under which MatchCtx stores the
// *MatchResult of a successful match.
var MatchResultUserValue = fmt.Sprintf("__routeMatchResult::%s__", gotilsbytes.Rand(make([]byte, 15)))

// Router matches uris against the routes of an ordered list of owners.
//
// Shortcuts and compiled patterns belong to the Router instance. Once every
// shortcut is defined, Match may be called from multiple goroutines.
type Router struct {
	compiler *pattern.Compiler
	log      logr.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger of the router. Compilations and shortcut
// definitions are logged at V(1), misses at V(2).
func WithLogger(logger logr.Logger) Option {
	return func(r *Router) {
		r.log = logger
	}
}

// New returns a new Router without shortcuts.
func New(opts ...Option) *Router {
	r := &Router{
		log: logr.Discard(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.compiler = pattern.NewCompiler(pattern.NewShortcuts(), pattern.WithLogger(r.log))

	return r
}

// AddShortcut registers fragment under token, so that routes can use it as a
// #name segment. Re-adding a token replaces its fragment.
func (r *Router) AddShortcut(token, fragment string) error {
	return r.compiler.Define(token, fragment)
}

// DefineShortcut is like AddShortcut but returns the router to allow chained
// calls. It panics if the shortcut or its pattern is invalid.
//
// Use:
//
//	r := routematch.New().
//		DefineShortcut("#slug", "[a-z0-9-]+").
//		DefineShortcut("#year", "[0-9]{4}")
func (r *Router) DefineShortcut(token, fragment string) *Router {
	if err := r.AddShortcut(token, fragment); err != nil {
		panic(err)
	}

	return r
}

// Match returns the result of the first owner whose route matches uri, or
// nil if none does.
//
// With exact set, the route must cover the whole uri (a trailing slash is
// allowed). Otherwise it only has to match a prefix ending on a segment
// boundary, and the result holds the rest of the uri.
//
// A route that does not follow the route grammar aborts the lookup with an
// error wrapping ErrInvalidRoute.
func (r *Router) Match(uri string, owners []RouteOwner, exact bool) (*MatchResult, error) {
	if err := validateURI(uri); err != nil {
		return nil, err
	}

	for i, owner := range owners {
		if owner == nil {
			return nil, fmt.Errorf("%w: route owner %d is nil", ErrInvalidArgument, i)
		}

		rest, params, ok, err := r.compiler.Match(uri, owner.Route(), exact)
		if err != nil {
			return nil, err
		}

		if ok {
			return newMatchResult(owner, rest, params), nil
		}
	}

	r.log.V(2).Info("no route matched", "uri", uri, "owners", len(owners), "exact", exact)

	return nil, nil
}

// MatchRoute matches uri against a single route. It returns the rest of the
// uri and the placeholder values when ok is true.
func (r *Router) MatchRoute(uri, route string, exact bool) (rest string, params []string, ok bool, err error) {
	return r.compiler.Match(uri, route, exact)
}

// MatchCtx matches the request path of ctx. A successful result is also
// stored as the MatchResultUserValue user value of ctx.
func (r *Router) MatchCtx(ctx *fasthttp.RequestCtx, owners []RouteOwner, exact bool) (*MatchResult, error) {
	result, err := r.Match(gotilsstrconv.B2S(ctx.Path()), owners, exact)
	if err != nil || result == nil {
		return nil, err
	}

	ctx.SetUserValue(MatchResultUserValue, result)

	return result, nil
}

// ResultFromCtx returns the result stored by MatchCtx, or nil.
func ResultFromCtx(ctx *fasthttp.RequestCtx) *MatchResult {
	result, _ := ctx.UserValue(MatchResultUserValue).(*MatchResult)

	return result
}
