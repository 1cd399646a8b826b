package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/sitekeys/pkg/actions"
	"github.com/grovetools/sitekeys/pkg/category"
	"github.com/grovetools/sitekeys/pkg/host"
	"github.com/grovetools/sitekeys/pkg/keys"
)

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(sampleTOML), FormatTOML)
	require.NoError(t, err)

	h := host.NewMemory(host.WithClipboard("gophers"))
	cfg, err := f.Build(actions.NewRegistry(h))
	require.NoError(t, err)

	assert.Equal(t, "r", cfg.SiteLeader)
	assert.Nil(t, cfg.SearchLeader)
	assert.Equal(t, keys.DefaultSearchLeader, cfg.ResolvedSearchLeader())
	require.NotNil(t, cfg.Unmaps)
	assert.Equal(t, []string{"h"}, cfg.Unmaps.VMappings)
	assert.Equal(t, keys.AliasGroup{"stackoverflow.com": {"superuser.com"}}, cfg.Aliases)

	google := cfg.SearchEngines["google"]
	assert.Equal(t, "https://www.google.com/search?q=go", google.Search.Expand("go"))
	require.NotNil(t, google.Completion)
	assert.Nil(t, google.Callback)

	global := cfg.Maps[keys.GlobalDomain]
	require.Len(t, global, 1)
	assert.Equal(t, keys.Remap{Target: "S"}, global[0].Action)
	assert.Equal(t, category.Misc, global[0].Category)

	gh := cfg.Maps["github.com"]
	require.Len(t, gh, 1)
	assert.Equal(t, category.Settings, gh[0].Category)
	assert.Equal(t, "#settings Command mode", gh[0].HelpDescription())
	inv, ok := gh[0].Action.(keys.Invoke)
	require.True(t, ok)
	require.NoError(t, inv.Callback(context.Background()))
	assert.Equal(t, []host.OmnibarRequest{{Type: "Commands"}}, h.OmnibarRequests())

	nature := cfg.Maps["nature.com"]
	require.Len(t, nature, 1)
	assert.Equal(t, keys.DOIAlias, nature[0].Alias)
	assert.True(t, nature[0].Hide)

	vm := cfg.VMaps[keys.GlobalDomain]
	require.Len(t, vm, 1)
	lua, ok := vm[0].Action.(keys.Invoke)
	require.True(t, ok)
	require.NoError(t, lua.Callback(context.Background()))
	assert.Equal(t, []host.OpenedLink{{URL: "https://example.com/?q=gophers", NewTab: true}}, h.Links())
}

func TestBuild_CollectsEveryProblem(t *testing.T) {
	f := &File{
		Version: "2.0.0",
		SearchEngines: map[string]SearchEngine{
			"bad": {Alias: "b", Action: "noop", Lua: "x = 1"},
		},
		Keys: Keys{
			Maps: map[string][]Binding{
				"github.com": {
					{Alias: "a", Action: "noop", Category: "nonsense"},
					{Alias: "b", Action: "noop", Lua: "x = 1"},
					{Alias: "c"},
					{Alias: "d", Action: "tab.close"},
					{Alias: "e", Lua: "page.open_link("},
					{Alias: "ok", Map: "S"},
				},
			},
		},
		DOI: &DOI{Domains: map[string]string{"nature.com": "prism"}},
	}

	cfg, err := f.Build(actions.NewRegistry(host.NewMemory()))
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrUnsupportedVersion)
	assert.ErrorIs(t, err, category.ErrUnknownCategory)
	assert.ErrorIs(t, err, ErrAmbiguousBinding)
	assert.ErrorIs(t, err, ErrMissingAction)
	assert.ErrorIs(t, err, actions.ErrUnknownAction)
	assert.ErrorIs(t, err, actions.ErrUnknownProvider)

	var shape *ShapeError
	require.True(t, errors.As(err, &shape))
	assert.Equal(t, "version", shape.Section)
	assert.Contains(t, err.Error(), "keys.maps.github.com[4]")

	require.Len(t, cfg.Maps["github.com"], 1)
	assert.Equal(t, "ok", cfg.Maps["github.com"][0].Alias)
	assert.Empty(t, cfg.SearchEngines)
}

func TestBuild_MapWinsOverCallback(t *testing.T) {
	f := &File{
		Keys: Keys{
			Maps: map[string][]Binding{
				keys.GlobalDomain: {
					{Alias: "P", Map: "S", Action: "noop"},
					{Alias: "N", Map: "D", Lua: "page.open_link('https://example.com')"},
				},
			},
		},
	}

	cfg, err := f.Build(actions.NewRegistry(host.NewMemory()))
	require.NoError(t, err)

	global := cfg.Maps[keys.GlobalDomain]
	require.Len(t, global, 2)
	assert.Equal(t, keys.Remap{Target: "S"}, global[0].Action)
	assert.Equal(t, keys.Remap{Target: "D"}, global[1].Action)
}

func TestBuild_DOIOnAliasTarget(t *testing.T) {
	f := &File{
		Keys: Keys{
			Aliases: map[string][]string{"nature.com": {"springer.com"}},
			Maps: map[string][]Binding{
				"nature.com": {{Alias: "a", Map: "S"}},
			},
		},
		DOI: &DOI{Domains: map[string]string{"springer.com": "citation_doi"}},
	}

	cfg, err := f.Build(actions.NewRegistry(host.NewMemory()))
	require.NoError(t, err)

	springer := cfg.Maps["springer.com"]
	require.Len(t, springer, 2)
	assert.Equal(t, "a", springer[0].Alias)
	assert.Equal(t, keys.DOIAlias, springer[1].Alias)
	require.Len(t, cfg.Maps["nature.com"], 1)

	hydrated := keys.Hydrate(cfg.Maps, cfg.Aliases)
	assert.Len(t, hydrated["springer.com"], 2)
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"", false},
		{"1.0.0", false},
		{"1.9.3", false},
		{"1", false},
		{"0.9.0", true},
		{"2.0.0", true},
		{"latest", true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := CheckVersion(tt.version)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedVersion)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchema(t *testing.T) {
	s := Schema()
	assert.Equal(t, "sitekeys configuration", s.Title)
	assert.Nil(t, s.Required)

	for _, name := range []string{"version", "site_leader", "search_leader", "unmaps", "search_engines", "keys", "doi"} {
		_, ok := s.Properties.Get(name)
		assert.True(t, ok, name)
	}
	_, ok := s.Properties.Get("Undecoded")
	assert.False(t, ok)
}
