package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/sitekeys/pkg/logger"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

var log = logger.New("config")

// Load reads and decodes one configuration file.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	for _, key := range f.Undecoded {
		log.WithFields(logrus.Fields{"file": path, "key": key}).Warn("Ignoring unknown config key")
	}
	return f, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
		if err != nil {
			return nil, err
		}
		for _, k := range md.Undecoded() {
			f.Undecoded = append(f.Undecoded, k.String())
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &f, nil
}

// LoadFiles decodes paths concurrently and merges them in argument order, so
// later files override earlier ones.
func LoadFiles(ctx context.Context, paths ...string) (*File, error) {
	files := make([]*File, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := Load(p)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &File{}
	for _, f := range files {
		merged.Merge(f)
	}
	return merged, nil
}

// Merge layers o over f. Scalars are replaced when o sets them, binding lists
// are appended per domain so o's entries win under last-write-wins, and maps
// are merged key by key.
func (f *File) Merge(o *File) {
	if o == nil {
		return
	}
	if o.Version != "" {
		f.Version = o.Version
	}
	if o.SiteLeader != "" {
		f.SiteLeader = o.SiteLeader
	}
	if o.SearchLeader != nil {
		f.SearchLeader = o.SearchLeader
	}

	if o.Unmaps != nil {
		if f.Unmaps == nil {
			f.Unmaps = &Unmaps{}
		}
		f.Unmaps.Mappings = append(f.Unmaps.Mappings, o.Unmaps.Mappings...)
		f.Unmaps.VMappings = append(f.Unmaps.VMappings, o.Unmaps.VMappings...)
		f.Unmaps.SearchAliases = appendLists(f.Unmaps.SearchAliases, o.Unmaps.SearchAliases)
	}

	for id, e := range o.SearchEngines {
		if f.SearchEngines == nil {
			f.SearchEngines = make(map[string]SearchEngine)
		}
		f.SearchEngines[id] = e
	}

	f.Keys.Aliases = appendLists(f.Keys.Aliases, o.Keys.Aliases)
	f.Keys.Maps = appendBindings(f.Keys.Maps, o.Keys.Maps)
	f.Keys.VMaps = appendBindings(f.Keys.VMaps, o.Keys.VMaps)

	if o.DOI != nil {
		if f.DOI == nil {
			f.DOI = &DOI{}
		}
		if o.DOI.Handler != "" {
			f.DOI.Handler = o.DOI.Handler
		}
		for d, p := range o.DOI.Domains {
			if f.DOI.Domains == nil {
				f.DOI.Domains = make(map[string]string)
			}
			f.DOI.Domains[d] = p
		}
	}

	f.Undecoded = append(f.Undecoded, o.Undecoded...)
}

func appendLists(dst, src map[string][]string) map[string][]string {
	for k, v := range src {
		if dst == nil {
			dst = make(map[string][]string)
		}
		dst[k] = append(dst[k], v...)
	}
	return dst
}

func appendBindings(dst, src map[string][]Binding) map[string][]Binding {
	for k, v := range src {
		if dst == nil {
			dst = make(map[string][]Binding)
		}
		dst[k] = append(dst[k], v...)
	}
	return dst
}
