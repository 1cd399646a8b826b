package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/sitekeys/pkg/host"
)

func TestOpenDOI(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		meta     map[string]string
		handler  string
		want     []host.OpenedLink
	}{
		{
			name:     "citation_doi",
			provider: ProviderCitationDOI,
			meta:     map[string]string{"citation_doi": "10.1038/s41586-020-2649-2"},
			want:     []host.OpenedLink{{URL: "https://doi.org/10.1038/s41586-020-2649-2", NewTab: true}},
		},
		{
			name:     "dc_identifier strips prefix",
			provider: ProviderDCIdentifier,
			meta:     map[string]string{"dc.identifier": "doi:10.1145/3368089.3409740"},
			handler:  "https://sci-hub.example/{doi}",
			want:     []host.OpenedLink{{URL: "https://sci-hub.example/10.1145/3368089.3409740", NewTab: true}},
		},
		{
			name:     "no doi on page",
			provider: ProviderCitationDOI,
		},
		{
			name:     "blank doi",
			provider: ProviderCitationDOI,
			meta:     map[string]string{"citation_doi": "   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := host.NewMemory()
			for k, v := range tt.meta {
				h.SetMeta(k, v)
			}
			cb, err := OpenDOI(h, tt.handler, tt.provider)
			require.NoError(t, err)
			require.NoError(t, cb(context.Background()))
			assert.Equal(t, tt.want, h.Links())
		})
	}
}

func TestOpenDOI_Errors(t *testing.T) {
	h := host.NewMemory()

	_, err := OpenDOI(h, "", "prism_doi")
	assert.ErrorIs(t, err, ErrUnknownProvider)

	_, err = OpenDOI(h, "https://doi.org/", ProviderCitationDOI)
	assert.Error(t, err)
}
