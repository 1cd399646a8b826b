package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOverrides(t *testing.T) {
	maps := DomainMap{
		GlobalDomain: {
			Map("P", "S"),
			Map("d", "j"),
			Map("P", "D").Described("later"),
		},
		"github.com": {
			Map("a", "x"),
			Map("a", "y").AtPath("/issues"),
			Map("b", "z"),
			Map("b", "w").WithLeader("r"),
		},
		"gitlab.com": {
			Map("a", "x"),
		},
	}

	overrides := DetectOverrides(maps, "r", ModeNormal)
	require.Len(t, overrides, 2)

	// "rb" declared twice: once via the site leader, once explicitly.
	assert.Equal(t, "github.com", overrides[0].Domain)
	assert.Equal(t, "rb", overrides[0].Key)
	assert.Equal(t, Remap{Target: "w"}, overrides[0].Winner.Action)

	assert.Equal(t, GlobalDomain, overrides[1].Domain)
	assert.Equal(t, "P", overrides[1].Key)
	assert.Equal(t, "later", overrides[1].Winner.Description)
	require.Len(t, overrides[1].Shadowed, 1)

	grouped := GroupOverridesByDomain(overrides)
	assert.Len(t, grouped["github.com"], 1)
	assert.Equal(t, 0, CountOverrides(overrides, "gitlab.com"))
	assert.Equal(t, ModeNormal, overrides[1].Mode)
}
