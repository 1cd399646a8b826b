package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/grovetools/sitekeys/pkg/keys"
	"github.com/grovetools/sitekeys/pkg/predicate"
)

// DefaultBinding is a factory binding present before any configuration runs.
type DefaultBinding struct {
	Key         string
	Description string
}

// OpenedLink records a Page.OpenLink call.
type OpenedLink struct {
	URL    string
	NewTab bool
}

type entry struct {
	reg Registration
	run keys.Callback
}

// Memory is an in-memory Host. Remaps resolve their target when bound, the
// way a modal editor's map does, so later changes to the target don't leak in.
type Memory struct {
	mu sync.Mutex

	registries map[keys.Mode][]entry
	aliases    map[string]SearchAlias
	aliasOrder []string

	clipboard string
	metas     map[string]string
	omnibar   []OmnibarRequest
	links     []OpenedLink
	fired     []string
}

// MemoryOption configures a Memory.
type MemoryOption func(*Memory)

// WithDefaults seeds factory bindings for mode. Triggering one records its key
// in Fired.
func WithDefaults(mode keys.Mode, defaults ...DefaultBinding) MemoryOption {
	return func(m *Memory) {
		for _, d := range defaults {
			key := d.Key
			m.registries[mode] = append(m.registries[mode], entry{
				reg: Registration{
					Key:         key,
					Description: d.Description,
					Action:      keys.Invoke{},
				},
				run: func(context.Context) error {
					m.mu.Lock()
					m.fired = append(m.fired, string(mode)+":"+key)
					m.mu.Unlock()
					return nil
				},
			})
		}
	}
}

// WithSearchAliases seeds factory search aliases.
func WithSearchAliases(aliases ...SearchAlias) MemoryOption {
	return func(m *Memory) {
		for _, a := range aliases {
			m.putAlias(a)
		}
	}
}

// WithClipboard sets the initial clipboard text.
func WithClipboard(text string) MemoryOption {
	return func(m *Memory) {
		m.clipboard = text
	}
}

// NewMemory creates an empty in-memory host.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		registries: make(map[keys.Mode][]entry),
		aliases:    make(map[string]SearchAlias),
		metas:      make(map[string]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) BindNormalKey(reg Registration) error {
	return m.bind(keys.ModeNormal, reg)
}

func (m *Memory) BindVisualKey(reg Registration) error {
	return m.bind(keys.ModeVisual, reg)
}

func (m *Memory) UnbindNormalKey(key string) error {
	return m.unbind(keys.ModeNormal, key)
}

func (m *Memory) UnbindVisualKey(key string) error {
	return m.unbind(keys.ModeVisual, key)
}

func (m *Memory) bind(mode keys.Mode, reg Registration) error {
	if reg.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidBinding)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var run keys.Callback
	switch a := reg.Action.(type) {
	case keys.Remap:
		target, ok := m.resolveLocked(mode, a.Target, reg.Domain)
		if !ok {
			return fmt.Errorf("%w: %q (mode %s)", ErrUnknownTarget, a.Target, mode)
		}
		run = target.run
	case keys.Invoke:
		if a.Callback == nil {
			return fmt.Errorf("%w: %q has no callback", ErrInvalidBinding, reg.Key)
		}
		run = a.Callback
	default:
		return fmt.Errorf("%w: %q has no action", ErrInvalidBinding, reg.Key)
	}

	// Last write wins within a scope.
	kept := m.registries[mode][:0]
	for _, e := range m.registries[mode] {
		if e.reg.Key == reg.Key && predicate.Same(e.reg.Domain, reg.Domain) {
			continue
		}
		kept = append(kept, e)
	}
	m.registries[mode] = append(kept, entry{reg: reg, run: run})
	return nil
}

// resolveLocked finds the newest binding for key visible from scope.
func (m *Memory) resolveLocked(mode keys.Mode, key string, scope predicate.Predicate) (entry, bool) {
	reg := m.registries[mode]
	for i := len(reg) - 1; i >= 0; i-- {
		e := reg[i]
		if e.reg.Key != key {
			continue
		}
		if e.reg.Domain == nil || predicate.Same(e.reg.Domain, scope) {
			return e, true
		}
	}
	return entry{}, false
}

func (m *Memory) unbind(mode keys.Mode, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := false
	kept := m.registries[mode][:0]
	for _, e := range m.registries[mode] {
		if e.reg.Key == key {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	m.registries[mode] = kept
	if !removed {
		return fmt.Errorf("%w: %q (mode %s)", ErrNotBound, key, mode)
	}
	return nil
}

// Lookup returns the binding that fires for key on url in mode.
func (m *Memory) Lookup(mode keys.Mode, url, key string) (Registration, bool) {
	e, ok := m.lookup(mode, url, key)
	return e.reg, ok
}

func (m *Memory) lookup(mode keys.Mode, url, key string) (entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg := m.registries[mode]
	for i := len(reg) - 1; i >= 0; i-- {
		if reg[i].reg.Key == key && predicate.Matches(reg[i].reg.Domain, url) {
			return reg[i], true
		}
	}
	return entry{}, false
}

// Trigger runs the binding for key on url in mode and returns its error.
func (m *Memory) Trigger(ctx context.Context, mode keys.Mode, url, key string) error {
	e, ok := m.lookup(mode, url, key)
	if !ok {
		return fmt.Errorf("%w: %q on %s (mode %s)", ErrNotBound, key, url, mode)
	}
	return e.run(ctx)
}

// Bindings returns the registrations for mode in registration order.
func (m *Memory) Bindings(mode keys.Mode) []Registration {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Registration, 0, len(m.registries[mode]))
	for _, e := range m.registries[mode] {
		out = append(out, e.reg)
	}
	return out
}

func (m *Memory) AddSearchAlias(alias SearchAlias) error {
	if alias.Alias == "" {
		return fmt.Errorf("%w: search alias without alias", ErrInvalidBinding)
	}
	if !alias.Search.Valid() && alias.Callback == nil {
		return fmt.Errorf("%w: search alias %q has no usable search URL", ErrInvalidBinding, alias.Alias)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putAlias(alias)
	return nil
}

func (m *Memory) putAlias(alias SearchAlias) {
	if _, ok := m.aliases[alias.Alias]; !ok {
		m.aliasOrder = append(m.aliasOrder, alias.Alias)
	}
	m.aliases[alias.Alias] = alias
}

// RemoveSearchAlias drops alias. The leader only matters to hosts that derive
// key mappings from it; Memory never auto-maps.
func (m *Memory) RemoveSearchAlias(alias, leader string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.aliases[alias]; !ok {
		return fmt.Errorf("%w: search alias %q (leader %q)", ErrNotBound, alias, leader)
	}
	delete(m.aliases, alias)
	for i, a := range m.aliasOrder {
		if a == alias {
			m.aliasOrder = append(m.aliasOrder[:i], m.aliasOrder[i+1:]...)
			break
		}
	}
	return nil
}

// SearchAliases returns registered search aliases in registration order.
func (m *Memory) SearchAliases() []SearchAlias {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]SearchAlias, 0, len(m.aliasOrder))
	for _, a := range m.aliasOrder {
		out = append(out, m.aliases[a])
	}
	return out
}

func (m *Memory) searchAlias(alias string) (SearchAlias, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.aliases[alias]
	if !ok {
		return SearchAlias{}, fmt.Errorf("%w: search alias %q", ErrNotBound, alias)
	}
	return a, nil
}

// Search submits query to the engine registered under alias, the way the
// omnibar does: the expanded URL opens in a new tab. Engines without a usable
// URL run their callback instead and return "".
func (m *Memory) Search(ctx context.Context, alias, query string) (string, error) {
	a, err := m.searchAlias(alias)
	if err != nil {
		return "", err
	}
	if !a.Search.Valid() {
		return "", a.Callback(ctx)
	}
	u := a.Search.Expand(query)
	return u, m.OpenLink(u, true)
}

// CompletionURL returns the suggestion request for query on alias.
func (m *Memory) CompletionURL(alias, query string) (string, error) {
	a, err := m.searchAlias(alias)
	if err != nil {
		return "", err
	}
	if a.Completion == nil {
		return "", fmt.Errorf("%w: search alias %q", ErrNoCompletion, alias)
	}
	return a.Completion.Request(query), nil
}

// Suggestions parses a completion response for alias.
func (m *Memory) Suggestions(alias string, body []byte) ([]string, error) {
	a, err := m.searchAlias(alias)
	if err != nil {
		return nil, err
	}
	if a.Completion == nil {
		return nil, fmt.Errorf("%w: search alias %q", ErrNoCompletion, alias)
	}
	return a.Completion.Parse(body), nil
}

func (m *Memory) OpenOmnibar(req OmnibarRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.omnibar = append(m.omnibar, req)
	return nil
}

// OmnibarRequests returns every prompt opened so far.
func (m *Memory) OmnibarRequests() []OmnibarRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]OmnibarRequest(nil), m.omnibar...)
}

func (m *Memory) ReadClipboard(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clipboard, nil
}

// SetClipboard replaces the clipboard text.
func (m *Memory) SetClipboard(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clipboard = text
}

func (m *Memory) OpenLink(url string, newTab bool) error {
	if url == "" {
		return fmt.Errorf("open link: empty url")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links = append(m.links, OpenedLink{URL: url, NewTab: newTab})
	return nil
}

// Links returns every link opened so far.
func (m *Memory) Links() []OpenedLink {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]OpenedLink(nil), m.links...)
}

func (m *Memory) MetaContent(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.metas[name]
	return v, ok
}

// SetMeta sets a <meta> value on the simulated page.
func (m *Memory) SetMeta(name, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metas[name] = content
}

// Fired returns "mode:key" for each factory default triggered so far.
func (m *Memory) Fired() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.fired...)
}

var _ Host = (*Memory)(nil)
