package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/sitekeys/pkg/actions"
	"github.com/grovetools/sitekeys/pkg/host"
)

const sampleTOML = `
version = "1.2.0"
site_leader = "r"

[unmaps]
mappings = ["L", ":"]
vmappings = ["h"]
[unmaps.search_aliases]
s = ["g", "d"]

[search_engines.google]
alias = "g"
name = "Google"
search = "https://www.google.com/search?q={query}"
[search_engines.google.completion]
url = "https://suggestqueries.google.com/complete/search?client=firefox&q={query}"
path = "1"

[keys.aliases]
"stackoverflow.com" = ["superuser.com"]

[[keys.maps.global]]
alias = "P"
map = "S"

[[keys.maps."github.com"]]
alias = "a"
action = "omnibar.open"
args = { type = "Commands" }
category = "settings"
description = "Command mode"
colour = "blue"

[[keys.vmaps.global]]
alias = "y"
lua = "page.open_link('https://example.com/?q=' .. page.clipboard(), true)"

[doi]
handler = "https://doi.org/{doi}"
[doi.domains]
"nature.com" = "citation_doi"
`

const sampleYAML = `
site_leader: ","
search_leader: s
keys:
  maps:
    github.com:
      - alias: a
        action: noop
    gitlab.com:
      - alias: b
        map: S
        leader: ""
search_engines:
  google:
    alias: G
    name: Google again
    search: https://google.com/?q=
doi:
  domains:
    dl.acm.org: dc_identifier
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"sitekeys.toml", FormatTOML, false},
		{"sitekeys.TOML", FormatTOML, false},
		{"sitekeys.yml", FormatYAML, false},
		{"dir/sitekeys.yaml", FormatYAML, false},
		{"sitekeys.json", "", true},
		{"sitekeys", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_TOML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "sitekeys.toml", sampleTOML)

	f, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", f.Version)
	assert.Equal(t, "r", f.SiteLeader)
	require.NotNil(t, f.Unmaps)
	assert.Equal(t, []string{"L", ":"}, f.Unmaps.Mappings)
	assert.Equal(t, []string{"g", "d"}, f.Unmaps.SearchAliases["s"])

	google := f.SearchEngines["google"]
	assert.Equal(t, "g", google.Alias)
	require.NotNil(t, google.Completion)
	assert.Equal(t, "1", google.Completion.Path)

	require.Len(t, f.Keys.Maps["github.com"], 1)
	gh := f.Keys.Maps["github.com"][0]
	assert.Equal(t, "omnibar.open", gh.Action)
	assert.Equal(t, "Commands", gh.Args["type"])
	assert.Equal(t, "S", f.Keys.Maps["global"][0].Map)
	assert.Contains(t, f.Keys.VMaps["global"][0].Lua, "page.clipboard()")
	assert.Equal(t, "citation_doi", f.DOI.Domains["nature.com"])

	assert.Equal(t, []string{`keys.maps."github.com".colour`}, f.Undecoded)
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "sitekeys.yaml", sampleYAML)

	f, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, ",", f.SiteLeader)
	require.NotNil(t, f.SearchLeader)
	assert.Equal(t, "s", *f.SearchLeader)

	b := f.Keys.Maps["gitlab.com"][0]
	require.NotNil(t, b.Leader)
	assert.Equal(t, "", *b.Leader)
	assert.Nil(t, f.Keys.Maps["github.com"][0].Leader)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "broken.toml", "site_leader = "))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "broken.yml", "keys: [unterminated"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "sitekeys.ini", "x=1"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_EmptySearchLeader(t *testing.T) {
	f, err := Parse([]byte("search_leader = \"\"\n"), FormatTOML)
	require.NoError(t, err)
	require.NotNil(t, f.SearchLeader)

	cfg, err := f.Build(actions.NewRegistry(host.NewMemory()))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.ResolvedSearchLeader())

	f.Merge(&File{SiteLeader: "x"})
	assert.Equal(t, "", *f.SearchLeader, "an unset leader does not override")
}

func TestLoadFiles_MergesInOrder(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.toml", sampleTOML)
	local := writeFile(t, dir, "local.yaml", sampleYAML)

	f, err := LoadFiles(context.Background(), base, local)
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", f.Version, "unset scalars keep the earlier value")
	assert.Equal(t, ",", f.SiteLeader)
	require.NotNil(t, f.SearchLeader)
	assert.Equal(t, "s", *f.SearchLeader)

	github := f.Keys.Maps["github.com"]
	require.Len(t, github, 2)
	assert.Equal(t, "omnibar.open", github[0].Action)
	assert.Equal(t, "noop", github[1].Action)
	assert.Len(t, f.Keys.Maps["gitlab.com"], 1)

	assert.Equal(t, "G", f.SearchEngines["google"].Alias)
	assert.Equal(t, "https://doi.org/{doi}", f.DOI.Handler)
	assert.Len(t, f.DOI.Domains, 2)
	assert.Equal(t, []string{"L", ":"}, f.Unmaps.Mappings)
}

func TestLoadFiles_Error(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.toml", sampleTOML)

	_, err := LoadFiles(context.Background(), good, filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}

func TestMerge_Unmaps(t *testing.T) {
	f := &File{}
	f.Merge(&File{Unmaps: &Unmaps{Mappings: []string{"a"}, SearchAliases: map[string][]string{"s": {"g"}}}})
	f.Merge(&File{Unmaps: &Unmaps{Mappings: []string{"b"}, VMappings: []string{"v"}, SearchAliases: map[string][]string{"s": {"d"}, "o": {"y"}}}})
	f.Merge(nil)

	assert.Equal(t, []string{"a", "b"}, f.Unmaps.Mappings)
	assert.Equal(t, []string{"v"}, f.Unmaps.VMappings)
	assert.Equal(t, map[string][]string{"s": {"g", "d"}, "o": {"y"}}, f.Unmaps.SearchAliases)
}
