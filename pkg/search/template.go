// Package search expands search URL templates and parses completion payloads.
package search

import (
	"net/url"
	"strings"
)

// QueryPlaceholder marks where the query goes in a Template.
const QueryPlaceholder = "{query}"

// Template is a search URL. Without a placeholder the query is appended.
type Template string

// Expand returns the URL for query, escaping it.
func (t Template) Expand(query string) string {
	q := url.QueryEscape(query)
	s := string(t)
	if strings.Contains(s, QueryPlaceholder) {
		return strings.ReplaceAll(s, QueryPlaceholder, q)
	}
	return s + q
}

// Prefix returns the part of the template before the query, as hosts that
// only accept a URL prefix expect.
func (t Template) Prefix() string {
	s := string(t)
	if i := strings.Index(s, QueryPlaceholder); i >= 0 {
		return s[:i]
	}
	return s
}

// Valid reports whether the template is an absolute http(s) URL.
func (t Template) Valid() bool {
	u, err := url.Parse(strings.ReplaceAll(string(t), QueryPlaceholder, "q"))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
