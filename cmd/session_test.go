package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/sitekeys/pkg/category"
	"github.com/grovetools/sitekeys/pkg/config"
	"github.com/grovetools/sitekeys/pkg/host"
	"github.com/grovetools/sitekeys/pkg/keys"
)

const testConfig = `
site_leader = "r"

[unmaps]
mappings = ["L"]

[search_engines.google]
alias = "g"
name = "Google"
search = "https://www.google.com/search?q={query}"

[[keys.maps.global]]
alias = "P"
map = "S"
category = "pageNav"
description = "Back"

[[keys.maps."github.com"]]
alias = "a"
action = "noop"

[[keys.maps."github.com"]]
alias = "a"
action = "omnibar.open"
args = { type = "Commands" }
description = "Commands"

[[keys.maps."home.nest.com"]]
alias = "="
leader = ""
path = "/thermostat/DEVICE_.*"
action = "noop"
description = "Warmer"

[[keys.vmaps.global]]
alias = "Y"
map = "y"
hide = true
`

func newTestSession(t *testing.T, content string) *session {
	t.Helper()
	p := filepath.Join(t.TempDir(), "sitekeys.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))

	log, _ := logtest.NewNullLogger()
	s, err := newSession(context.Background(), log, []string{p})
	require.NoError(t, err)
	return s
}

func TestSession_Views(t *testing.T) {
	s := newTestSession(t, testConfig)
	summary := s.run(context.Background())
	require.Equal(t, 0, summary.Failed(), summary.Err())

	byKey := make(map[string]bindingView)
	for _, v := range s.views(keys.ModeNormal) {
		byKey[v.Scope+" "+v.Key] = v
	}

	back := byKey["global P"]
	assert.Equal(t, "pageNav", back.Category)
	assert.Equal(t, "S", back.Target)
	assert.Equal(t, "remap", back.Kind)

	og := byKey["global og"]
	assert.Equal(t, "omnibar", og.Category)
	assert.Equal(t, "Search Google", og.Description)

	ra := byKey["github.com ra"]
	assert.Equal(t, "Commands", ra.Description)
	assert.Equal(t, "invoke", ra.Kind)

	nest, ok := byKey["home.nest.com/thermostat/DEVICE_.* ="]
	require.True(t, ok)
	assert.Equal(t, "Warmer", nest.Description)

	_, ok = byKey["global L"]
	assert.False(t, ok, "unmapped default")
	assert.Equal(t, "default", byKey["global j"].Kind)

	visual := s.views(keys.ModeVisual)
	var hidden []string
	for _, v := range visual {
		if v.Hidden {
			hidden = append(hidden, v.Key)
		}
	}
	assert.Equal(t, []string{"Y"}, hidden)
}

func TestSession_SkipsMalformedRules(t *testing.T) {
	s := newTestSession(t, `
[[keys.maps.global]]
alias = "a"
action = "noop"

[[keys.maps.global]]
alias = "b"
lua = "page.open_link("

[[keys.maps.global]]
alias = "c"
action = "tab.close"
`)
	require.Len(t, s.skipped, 2)
	assert.ErrorContains(t, s.skipped[0], "keys.maps.global[1]")
	assert.ErrorContains(t, s.skipped[1], "keys.maps.global[2]")

	summary := s.run(context.Background())
	assert.Equal(t, 0, summary.Failed())
	assert.Equal(t, 2, s.failed())

	_, ok := s.host.Lookup(keys.ModeNormal, "https://example.com", "a")
	assert.True(t, ok, "well-formed rules still register")
	_, ok = s.host.Lookup(keys.ModeNormal, "https://example.com", "b")
	assert.False(t, ok)

	var out bytes.Buffer
	require.Error(t, runCheck(context.Background(), &out, s))
	assert.Contains(t, out.String(), "2 malformed rule(s) skipped")
	assert.NotContains(t, out.String(), "registration failure(s)")
}

func TestSession_UnsupportedVersion(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sitekeys.toml")
	require.NoError(t, os.WriteFile(p, []byte("version = \"2.0.0\"\n"), 0644))

	log, _ := logtest.NewNullLogger()
	_, err := newSession(context.Background(), log, []string{p})
	assert.ErrorIs(t, err, config.ErrUnsupportedVersion)
}

func TestSession_AliasScopeLabel(t *testing.T) {
	s := newTestSession(t, `
[keys.aliases]
"stackoverflow.com" = ["superuser.com"]

[[keys.maps."stackoverflow.com"]]
alias = "a"
map = "j"
`)
	require.Equal(t, 0, s.run(context.Background()).Failed())

	scopes := make(map[string]bool)
	for _, v := range s.views(keys.ModeNormal) {
		if v.Key == "ra" {
			scopes[v.Scope] = true
		}
	}
	assert.Equal(t, map[string]bool{
		"stackoverflow.com":                 true,
		"superuser.com (stackoverflow.com)": true,
	}, scopes)
}

func TestRunCheck(t *testing.T) {
	s := newTestSession(t, testConfig)
	var out bytes.Buffer

	require.NoError(t, runCheck(context.Background(), &out, s))
	assert.Contains(t, out.String(), "1 override(s)")
	assert.Contains(t, out.String(), "Every binding registered")
}

func TestRunCheck_ReportsFailures(t *testing.T) {
	s := newTestSession(t, testConfig+`
[[keys.maps."gitlab.com"]]
alias = "z"
map = "no-such-key"
`)
	var out bytes.Buffer

	err := runCheck(context.Background(), &out, s)
	require.Error(t, err)
	assert.Contains(t, out.String(), "1 registration failure(s)")
	assert.Contains(t, out.String(), "no-such-key")
}

func TestSplitDescription(t *testing.T) {
	tests := []struct {
		in       string
		wantCat  category.Category
		wantText string
	}{
		{"#misc ", category.Misc, ""},
		{"#omnibar Search Google", category.Omnibar, "Search Google"},
		{"Scroll down", "", "Scroll down"},
		{"#notacategory text", "", "#notacategory text"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cat, text := splitDescription(tt.in)
			assert.Equal(t, tt.wantCat, cat)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestBrowseSections(t *testing.T) {
	views := []bindingView{
		{Scope: "global", Key: "j", Description: "Scroll down"},
		{Scope: "global", Key: "P", Category: "pageNav", Description: "Back"},
		{Scope: "global", Key: "og", Category: "omnibar", Description: "Search Google"},
		{Scope: "global", Key: "Y", Category: "misc", Hidden: true},
		{Scope: "github.com", Key: "ra", Category: "misc", Description: "Commands"},
	}

	assert.Equal(t, []string{"global", "github.com"}, browseScopes(views))

	sections := browseSections(views, "global", "")
	require.Len(t, sections, 3)
	assert.Equal(t, "pageNav", sections[0].Title)
	assert.Equal(t, "omnibar", sections[1].Title)
	assert.Equal(t, "defaults", sections[2].Title)

	sections = browseSections(views, "global", "GOOGLE")
	require.Len(t, sections, 1)
	assert.Equal(t, "og", sections[0].Bindings[0].Key)
}

func TestRunSearch(t *testing.T) {
	s := newTestSession(t, `
[search_engines.duckduckgo]
alias = "dd"
name = "DuckDuckGo"
search = "https://duckduckgo.com/?q={query}"
completion = { url = "https://duckduckgo.com/ac/?q={query}", path = "#.phrase" }
`)
	ctx := context.Background()
	require.Equal(t, 0, s.run(ctx).Failed())

	var out bytes.Buffer
	require.NoError(t, runSearch(ctx, &out, s, nil, nil))
	assert.Contains(t, out.String(), "https://duckduckgo.com/?q=")
	assert.Contains(t, out.String(), "https://duckduckgo.com/ac/?q=")

	out.Reset()
	require.NoError(t, runSearch(ctx, &out, s, []string{"dd", "go", "modules"}, []byte(`[{"phrase":"go modules"},{"phrase":"go mod tidy"}]`)))
	assert.Contains(t, out.String(), "https://duckduckgo.com/?q=go+modules")
	assert.Contains(t, out.String(), "completion https://duckduckgo.com/ac/?q=go+modules")
	assert.Contains(t, out.String(), "go mod tidy")

	assert.ErrorIs(t, runSearch(ctx, &out, s, []string{"zz", "q"}, nil), host.ErrNotBound)
}
