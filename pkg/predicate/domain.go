// Package predicate builds the URL predicates that scope a binding to one site.
package predicate

import (
	"fmt"
	"regexp"
)

// DefaultPath matches the domain root or any path below it.
const DefaultPath = "(/.*)?"

// Predicate decides whether a binding is active for a page URL.
// *regexp.Regexp satisfies it.
type Predicate interface {
	MatchString(url string) bool
	String() string
}

// Pattern returns the source of the domain predicate for domain and path.
// Subdomain labels are optional; no end anchor is added beyond what path carries.
func Pattern(domain, path string) string {
	if path == "" {
		path = DefaultPath
	}
	return fmt.Sprintf(`^http(s)?://(([a-zA-Z0-9_-]+\.)*)(%s)%s`, regexp.QuoteMeta(domain), path)
}

// ForDomain compiles the predicate for domain and an optional path fragment.
func ForDomain(domain, path string) (*regexp.Regexp, error) {
	if domain == "" {
		return nil, fmt.Errorf("empty domain")
	}
	re, err := regexp.Compile(Pattern(domain, path))
	if err != nil {
		return nil, fmt.Errorf("invalid path %q for %s: %w", path, domain, err)
	}
	return re, nil
}

// Same reports whether two predicates describe the same scope.
// A nil predicate is the global scope.
func Same(a, b Predicate) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	return a.String() == b.String()
}

// Matches reports whether p admits url. A nil predicate admits everything.
func Matches(p Predicate, url string) bool {
	if isNil(p) {
		return true
	}
	return p.MatchString(url)
}

func isNil(p Predicate) bool {
	if p == nil {
		return true
	}
	if re, ok := p.(*regexp.Regexp); ok && re == nil {
		return true
	}
	return false
}
