package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/sitekeys/pkg/actions"
	"github.com/grovetools/sitekeys/pkg/host"
	"github.com/grovetools/sitekeys/pkg/keys"
)

func TestWrite_StarterRoundTrip(t *testing.T) {
	for _, name := range []string{"sitekeys.toml", "sitekeys.yml"} {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "nested", name)
			require.NoError(t, Write(p, Starter(), false))

			f, err := Load(p)
			require.NoError(t, err)
			assert.Empty(t, f.Undecoded)
			assert.Equal(t, CurrentVersion, f.Version)
			assert.Equal(t, Starter().Keys.Maps["global"], f.Keys.Maps["global"])

			cfg, err := f.Build(actions.NewRegistry(host.NewMemory()))
			require.NoError(t, err)
			assert.Equal(t, 7, cfg.Maps.Len(), "five declared plus two DOI bindings")
			assert.Equal(t, 1, cfg.VMaps.Len())

			yt := cfg.Maps["youtube.com"][0]
			assert.Equal(t, "F", yt.FinalKey("youtube.com", cfg.SiteLeader))
			assert.Equal(t, "rn", cfg.Maps["github.com"][0].FinalKey("github.com", cfg.SiteLeader))
			assert.Equal(t, keys.DOIAlias, cfg.Maps["nature.com"][0].Alias)
		})
	}
}

func TestWrite_RefusesOverwrite(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sitekeys.toml")
	require.NoError(t, Write(p, Starter(), false))

	err := Write(p, Starter(), false)
	assert.ErrorContains(t, err, "already exists")
	assert.NoError(t, Write(p, &File{SiteLeader: ","}, true))

	f, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, ",", f.SiteLeader)
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	assert.ErrorIs(t, Write(filepath.Join(t.TempDir(), "x.json"), Starter(), false), ErrUnsupportedFormat)
}
