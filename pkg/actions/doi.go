package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/grovetools/sitekeys/pkg/host"
	"github.com/grovetools/sitekeys/pkg/keys"
)

// DOI providers name where a publisher page keeps its DOI.
const (
	ProviderCitationDOI  = "citation_doi"
	ProviderDCIdentifier = "dc_identifier"
)

// DefaultDOIHandler resolves a DOI through doi.org.
const DefaultDOIHandler = "https://doi.org/{doi}"

// ErrUnknownProvider is returned for DOI providers other than the ones above.
var ErrUnknownProvider = errors.New("unknown DOI provider")

// DOIFinder extracts a DOI from the current page. ok is false when the page has none.
type DOIFinder func(p host.Page) (doi string, ok bool)

// FindDOI returns the finder for provider.
func FindDOI(provider string) (DOIFinder, error) {
	switch provider {
	case ProviderCitationDOI:
		return func(p host.Page) (string, bool) {
			return metaDOI(p, "citation_doi", "")
		}, nil
	case ProviderDCIdentifier:
		return func(p host.Page) (string, bool) {
			return metaDOI(p, "dc.identifier", "doi:")
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
}

func metaDOI(p host.Page, name, prefix string) (string, bool) {
	v, ok := p.MetaContent(name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(v), prefix))
	return v, v != ""
}

// OpenDOI returns a callback that opens the page's DOI through handler in a
// new tab. Pages without a DOI are left alone.
func OpenDOI(p host.Page, handler, provider string) (keys.Callback, error) {
	find, err := FindDOI(provider)
	if err != nil {
		return nil, err
	}
	if handler == "" {
		handler = DefaultDOIHandler
	}
	if !strings.Contains(handler, "{doi}") {
		return nil, fmt.Errorf("DOI handler %q has no {doi} placeholder", handler)
	}
	return func(context.Context) error {
		doi, ok := find(p)
		if !ok {
			return nil
		}
		return p.OpenLink(strings.ReplaceAll(handler, "{doi}", doi), true)
	}, nil
}
