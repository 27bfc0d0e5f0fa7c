package gateway

import "strings"

type matchKind int

const (
	matchExact matchKind = iota
	matchPrefix
)

type pathRule struct {
	kind    matchKind
	pattern string
}

// publicPaths is the allowlist of routes reachable without a token:
// login and registration endpoints for both principal kinds, the root
// and index pages, and static asset prefixes. Rules are evaluated in
// order; exact rules match whole paths, prefix rules match directories.
var publicPaths = []pathRule{
	{matchExact, "/auth/login"},
	{matchExact, "/auth/register"},
	{matchExact, "/client/login"},
	{matchExact, "/"},
	{matchExact, "/index"},
	{matchExact, "/index.html"},
	{matchExact, "/favicon.ico"},
	{matchPrefix, "/frontend/"},
	{matchPrefix, "/static/"},
	{matchPrefix, "/assets/"},
}

// IsPublicPath reports whether the request path bypasses authentication.
func IsPublicPath(path string) bool {
	for _, rule := range publicPaths {
		switch rule.kind {
		case matchExact:
			if path == rule.pattern {
				return true
			}
		case matchPrefix:
			if strings.HasPrefix(path, rule.pattern) {
				return true
			}
		}
	}
	return false
}
