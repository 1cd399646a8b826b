package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		path   string
		url    string
		want   bool
	}{
		{"github path", "github.com", "", "https://github.com/foo/bar", true},
		{"github subdomain over http", "github.com", "", "http://www.github.com", true},
		{"github bare root", "github.com", "", "https://github.com", true},
		{"github lookalike", "github.com", "", "https://nogithub.com", false},
		{"dot is literal", "github.com", "", "https://githubxcom.org", false},
		{"every dot escaped", "raw.githubusercontent.com", "", "https://rawxgithubusercontent.com", false},
		{"other scheme", "github.com", "", "ftp://github.com", false},
		{"nest device", "home.nest.com", "/thermostat/DEVICE_.*", "https://home.nest.com/thermostat/DEVICE_123", true},
		{"nest settings", "home.nest.com", "/thermostat/DEVICE_.*", "https://home.nest.com/settings", false},
		{"docs path", "rescript-lang.org", "/docs(/.*)?", "https://rescript-lang.org/docs/manual", true},
		{"docs path miss", "rescript-lang.org", "/docs(/.*)?", "https://rescript-lang.org/blog", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := ForDomain(tt.domain, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, re.MatchString(tt.url), "pattern %s", re.String())
		})
	}
}

func TestForDomain_Errors(t *testing.T) {
	_, err := ForDomain("", "")
	assert.Error(t, err)

	_, err = ForDomain("github.com", "/(unclosed")
	assert.Error(t, err)
}

func TestSameAndMatches(t *testing.T) {
	a, err := ForDomain("github.com", "")
	require.NoError(t, err)
	b, err := ForDomain("github.com", "")
	require.NoError(t, err)
	c, err := ForDomain("gitlab.com", "")
	require.NoError(t, err)

	assert.True(t, Same(a, b))
	assert.False(t, Same(a, c))
	assert.False(t, Same(a, nil))
	assert.True(t, Same(nil, nil))

	assert.True(t, Matches(nil, "https://anything.example"))
	assert.False(t, Matches(c, "https://github.com"))
}
