// Package actions builds binding callbacks from names and arguments, the way
// they are written in configuration files.
package actions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/grovetools/sitekeys/pkg/compiler"
	"github.com/grovetools/sitekeys/pkg/host"
	"github.com/grovetools/sitekeys/pkg/keys"
)

// ErrUnknownAction is returned by Build for names nothing was registered under.
var ErrUnknownAction = errors.New("unknown action")

// Factory builds a callback from configured arguments.
type Factory func(args map[string]any) (keys.Callback, error)

// Registry maps action names to factories.
type Registry struct {
	host      host.Host
	factories map[string]Factory
}

// NewRegistry creates a registry with the built-in actions bound to h.
func NewRegistry(h host.Host) *Registry {
	r := &Registry{host: h, factories: make(map[string]Factory)}
	r.Register("omnibar.open", r.omnibarOpen)
	r.Register("link.open", r.linkOpen)
	r.Register("clipboard.open", r.clipboardOpen)
	r.Register("clipboard.search", r.clipboardSearch)
	r.Register("noop", func(map[string]any) (keys.Callback, error) {
		return func(context.Context) error { return nil }, nil
	})
	return r
}

// Host returns the host the built-in actions talk to.
func (r *Registry) Host() host.Host {
	return r.host
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Names returns the registered action names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build returns the callback for name configured with args.
func (r *Registry) Build(name string, args map[string]any) (keys.Callback, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownAction, name, strings.Join(r.Names(), ", "))
	}
	cb, err := f(args)
	if err != nil {
		return nil, fmt.Errorf("action %s: %w", name, err)
	}
	return cb, nil
}

func (r *Registry) omnibarOpen(args map[string]any) (keys.Callback, error) {
	typ, err := stringArg(args, "type", true)
	if err != nil {
		return nil, err
	}
	extra, err := stringArg(args, "extra", false)
	if err != nil {
		return nil, err
	}
	return func(context.Context) error {
		return r.host.OpenOmnibar(host.OmnibarRequest{Type: typ, Extra: extra})
	}, nil
}

func (r *Registry) linkOpen(args map[string]any) (keys.Callback, error) {
	url, err := stringArg(args, "url", true)
	if err != nil {
		return nil, err
	}
	newTab, err := boolArg(args, "new_tab")
	if err != nil {
		return nil, err
	}
	return func(context.Context) error {
		return r.host.OpenLink(url, newTab)
	}, nil
}

func (r *Registry) clipboardOpen(args map[string]any) (keys.Callback, error) {
	newTab, err := boolArg(args, "new_tab")
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		text, err := r.host.ReadClipboard(ctx)
		if err != nil {
			return fmt.Errorf("reading clipboard: %w", err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return fmt.Errorf("clipboard is empty")
		}
		return r.host.OpenLink(text, newTab)
	}, nil
}

func (r *Registry) clipboardSearch(args map[string]any) (keys.Callback, error) {
	engine, err := stringArg(args, "engine", true)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		text, err := r.host.ReadClipboard(ctx)
		if err != nil {
			return fmt.Errorf("reading clipboard: %w", err)
		}
		return r.host.OpenOmnibar(host.OmnibarRequest{
			Type:    compiler.OmnibarSearchEngine,
			Extra:   engine,
			Prefill: text,
		})
	}, nil
}

func stringArg(args map[string]any, name string, required bool) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("missing argument %q", name)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string, got %T", name, v)
	}
	if required && s == "" {
		return "", fmt.Errorf("argument %q must not be empty", name)
	}
	return s, nil
}

func boolArg(args map[string]any, name string) (bool, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("argument %q must be a boolean, got %T", name, v)
	}
	return b, nil
}
