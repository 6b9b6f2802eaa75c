// Copyright 2020-present Sergio Andres Virviescas Santana, fasthttp
// Use of this source code is governed by a BSD-style license that can be found
// in the LICENSE file.

// Package pattern compiles route strings into regular expressions and matches
// request paths against them.
package pattern

import "regexp"

const (
	// paramGroup is the capture a {name} placeholder compiles to.
	paramGroup = `(?P<p%d>[\w\-]+)`

	// restGroupName names the capture holding the unmatched rest of the uri.
	restGroupName = "rest"

	prefixSuffix = `(?P<` + restGroupName + `>/.*)?$`
	exactSuffix  = `/?$`
)

var (
	shortcutTokenRegex = regexp.MustCompile(`^#\w+$`)
	placeholderRegex   = regexp.MustCompile(`\{\w+\}`)
	routeGrammarRegex  = regexp.MustCompile(`^(?:/|/[\w\-]+|/#\w+|/\{\w+\})+$`)
)
