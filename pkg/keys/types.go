// Package keys models per-site keybinding declarations: binding specs grouped by
// domain, alias groups that clone a domain's list, search engines and the
// default bindings to remove before anything new is applied.
package keys

import (
	"context"
	"fmt"
	"sort"

	"github.com/grovetools/sitekeys/pkg/category"
	"github.com/grovetools/sitekeys/pkg/search"
)

// GlobalDomain is the sentinel domain for unscoped bindings.
const GlobalDomain = "global"

// Mode selects the host registry a binding lands in.
type Mode string

const (
	ModeNormal Mode = "n"
	ModeVisual Mode = "v"
)

// ParseMode accepts "n"/"normal" and "v"/"visual".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "n", "normal":
		return ModeNormal, nil
	case "v", "visual":
		return ModeVisual, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// String returns the representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// Callback is the action run when a binding fires.
type Callback func(ctx context.Context) error

// Action is either a Remap or an Invoke.
type Action interface {
	// Kind returns "remap" or "invoke".
	Kind() string
	isAction()
}

// Remap makes a key behave as if Target had been typed.
type Remap struct {
	Target string
}

func (Remap) Kind() string { return "remap" }
func (Remap) isAction()    {}

// Invoke runs Callback directly.
type Invoke struct {
	Callback Callback
}

func (Invoke) Kind() string { return "invoke" }
func (Invoke) isAction()    {}

// BindingSpec is one declared rule.
type BindingSpec struct {
	Alias       string            // key sequence typed after the leader
	Action      Action            // Remap or Invoke
	Leader      *string           // nil: "" for global, the site leader otherwise
	Category    category.Category // zero value tags as misc
	Description string
	Path        string // URL path fragment; empty means any path
	Hide        bool   // excluded from help listings
}

// Map declares a remap of alias onto target.
func Map(alias, target string) BindingSpec {
	return BindingSpec{Alias: alias, Action: Remap{Target: target}}
}

// Bind declares alias to run cb.
func Bind(alias string, cb Callback) BindingSpec {
	return BindingSpec{Alias: alias, Action: Invoke{Callback: cb}}
}

func (s BindingSpec) WithLeader(leader string) BindingSpec {
	s.Leader = &leader
	return s
}

func (s BindingSpec) InCategory(c category.Category) BindingSpec {
	s.Category = c
	return s
}

func (s BindingSpec) Described(desc string) BindingSpec {
	s.Description = desc
	return s
}

func (s BindingSpec) AtPath(path string) BindingSpec {
	s.Path = path
	return s
}

func (s BindingSpec) Hidden() BindingSpec {
	s.Hide = true
	return s
}

// ResolveLeader returns the leader that applies to s under domain.
func (s BindingSpec) ResolveLeader(domain, siteLeader string) string {
	if s.Leader != nil {
		return *s.Leader
	}
	if domain == GlobalDomain {
		return ""
	}
	return siteLeader
}

// FinalKey is the key string the host recognizes the binding by.
func (s BindingSpec) FinalKey(domain, siteLeader string) string {
	return s.ResolveLeader(domain, siteLeader) + s.Alias
}

// HelpDescription formats the description for help listings.
func (s BindingSpec) HelpDescription() string {
	return fmt.Sprintf("#%s %s", s.Category.Tag(), s.Description)
}

// DomainMap maps a domain (or GlobalDomain) to its ordered binding list.
type DomainMap map[string][]BindingSpec

// Domains returns the domains in processing order: global first, the rest sorted.
func (m DomainMap) Domains() []string {
	out := make([]string, 0, len(m))
	hasGlobal := false
	for d := range m {
		if d == GlobalDomain {
			hasGlobal = true
			continue
		}
		out = append(out, d)
	}
	sort.Strings(out)
	if hasGlobal {
		out = append([]string{GlobalDomain}, out...)
	}
	return out
}

// Len returns the number of specs across all domains.
func (m DomainMap) Len() int {
	n := 0
	for _, l := range m {
		n += len(l)
	}
	return n
}

// AliasGroup maps a base domain to hostnames that clone its binding list.
type AliasGroup map[string][]string

// SearchEngineSpec declares a search engine and its derived bindings.
type SearchEngineSpec struct {
	Alias      string
	Name       string
	Search     search.Template
	Completion *search.Completion
	Callback   Callback
	Favicon    string
}

// Unmaps lists factory defaults to remove before new bindings are applied.
type Unmaps struct {
	Mappings      []string
	VMappings     []string
	SearchAliases map[string][]string // leader -> aliases
}

// Empty reports whether there is nothing to remove.
func (u *Unmaps) Empty() bool {
	return u == nil || (len(u.Mappings) == 0 && len(u.VMappings) == 0 && len(u.SearchAliases) == 0)
}

// Leaders returns the search alias leaders in sorted order.
func (u *Unmaps) Leaders() []string {
	if u == nil {
		return nil
	}
	out := make([]string, 0, len(u.SearchAliases))
	for l := range u.SearchAliases {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Config is the fully resolved input of one startup pass.
type Config struct {
	Unmaps        *Unmaps
	SearchEngines map[string]SearchEngineSpec
	Maps          DomainMap
	VMaps         DomainMap
	Aliases       AliasGroup
	SiteLeader    string
	SearchLeader  *string
}

// DefaultSearchLeader prefixes the derived search bindings when the
// configuration leaves the search leader unset.
const DefaultSearchLeader = "o"

// ResolvedSearchLeader returns the configured search leader, or
// DefaultSearchLeader when none was set. An explicit "" is kept.
func (c Config) ResolvedSearchLeader() string {
	if c.SearchLeader == nil {
		return DefaultSearchLeader
	}
	return *c.SearchLeader
}

// EngineIDs returns the search engine ids in sorted order.
func (c Config) EngineIDs() []string {
	out := make([]string, 0, len(c.SearchEngines))
	for id := range c.SearchEngines {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
