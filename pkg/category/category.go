// Package category holds the fixed set of help-listing tags a binding can carry.
package category

import (
	"errors"
	"fmt"
)

// Category tags a binding for help listings.
// The zero value is treated as Misc.
type Category string

const (
	Help               Category = "help"
	MouseClick         Category = "mouseClick"
	Scroll             Category = "scroll"
	Tabs               Category = "tabs"
	PageNav            Category = "pageNav"
	Sessions           Category = "sessions"
	SearchSelectedWith Category = "searchSelectedWith"
	Clipboard          Category = "clipboard"
	Omnibar            Category = "omnibar"
	VisualMode         Category = "visualMode"
	VimLikeMarks       Category = "vimLikeMarks"
	Cmdline            Category = "cmdline"
	Proxy              Category = "proxy"
	Misc               Category = "misc"
	InsertMode         Category = "insertMode"
	ChromeURLs         Category = "chromeURLs"
	Settings           Category = "settings"
)

// ErrUnknownCategory is returned by Lookup for names outside the fixed set.
var ErrUnknownCategory = errors.New("unknown category")

// ordered mirrors the host's annotation index order.
var ordered = []Category{
	Help, MouseClick, Scroll, Tabs, PageNav, Sessions, SearchSelectedWith, Clipboard,
	Omnibar, VisualMode, VimLikeMarks, Cmdline, Proxy, Misc, InsertMode, ChromeURLs, Settings,
}

var index = func() map[Category]int {
	m := make(map[Category]int, len(ordered))
	for i, c := range ordered {
		m[c] = i
	}
	return m
}()

// All returns every category in index order.
func All() []Category {
	out := make([]Category, len(ordered))
	copy(out, ordered)
	return out
}

// Lookup resolves a category name. An empty name resolves to Misc.
func Lookup(name string) (Category, error) {
	if name == "" {
		return Misc, nil
	}
	c := Category(name)
	if _, ok := index[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}

// Tag returns the name used in "#<tag> <description>" help strings.
func (c Category) Tag() string {
	if c == "" {
		return string(Misc)
	}
	return string(c)
}

// Index returns the host's numeric annotation index, or -1 if c is not declared.
func (c Category) Index() int {
	if c == "" {
		c = Misc
	}
	if i, ok := index[c]; ok {
		return i
	}
	return -1
}

// String returns the category name.
func (c Category) String() string {
	return c.Tag()
}
