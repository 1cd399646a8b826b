// Package host defines the contracts of the key-dispatch engine, the omnibar and
// the page primitives that compiled bindings are fed into, plus an in-memory
// implementation of all of them.
package host

//go:generate mockgen -source=host.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"

	"github.com/grovetools/sitekeys/pkg/keys"
	"github.com/grovetools/sitekeys/pkg/predicate"
	"github.com/grovetools/sitekeys/pkg/search"
)

var (
	// ErrNotBound is returned when removing a key or search alias that does not exist.
	ErrNotBound = errors.New("not bound")
	// ErrUnknownTarget is returned when a remap points at a key with no binding.
	ErrUnknownTarget = errors.New("unknown remap target")
	// ErrInvalidBinding is returned for registrations the engine cannot accept.
	ErrInvalidBinding = errors.New("invalid binding")
	// ErrNoCompletion is returned when a search alias declares no completion source.
	ErrNoCompletion = errors.New("no completion source")
)

// Registration is one fully resolved binding handed to the engine.
type Registration struct {
	Key         string
	Description string
	Action      keys.Action
	Domain      predicate.Predicate // nil for global bindings
	Hidden      bool
}

// Scope returns the predicate source, or "global".
func (r Registration) Scope() string {
	if r.Domain == nil {
		return keys.GlobalDomain
	}
	return r.Domain.String()
}

// SearchAlias is a search engine registration.
type SearchAlias struct {
	Alias         string
	Name          string
	Search        search.Template
	EmptyModifier string
	Completion    *search.Completion
	Callback      keys.Callback
	FaviconURL    string
	SkipAutoMap   bool
}

// OmnibarRequest opens the omnibar prompt.
type OmnibarRequest struct {
	Type    string
	Extra   string
	Prefill string
}

// Keys is the engine's binding surface. Normal and visual registries are separate.
type Keys interface {
	BindNormalKey(reg Registration) error
	BindVisualKey(reg Registration) error
	UnbindNormalKey(key string) error
	UnbindVisualKey(key string) error
}

// SearchAliases registers and removes search engines.
type SearchAliases interface {
	AddSearchAlias(alias SearchAlias) error
	RemoveSearchAlias(alias, leader string) error
}

// Omnibar opens prompts.
type Omnibar interface {
	OpenOmnibar(req OmnibarRequest) error
}

// Clipboard reads the system clipboard.
type Clipboard interface {
	ReadClipboard(ctx context.Context) (string, error)
}

// Page exposes the current page to callbacks.
type Page interface {
	OpenLink(url string, newTab bool) error
	MetaContent(name string) (string, bool)
}

// Host bundles every collaborator the compiler and actions talk to.
type Host interface {
	Keys
	SearchAliases
	Omnibar
	Clipboard
	Page
}

// Bind routes reg to the registry for mode.
func Bind(k Keys, mode keys.Mode, reg Registration) error {
	if mode == keys.ModeVisual {
		return k.BindVisualKey(reg)
	}
	return k.BindNormalKey(reg)
}

// Unbind removes key from the registry for mode.
func Unbind(k Keys, mode keys.Mode, key string) error {
	if mode == keys.ModeVisual {
		return k.UnbindVisualKey(key)
	}
	return k.UnbindNormalKey(key)
}
