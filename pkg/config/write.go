package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Starter returns the configuration written by `sitekeys init`.
func Starter() *File {
	none, search := "", "o"
	return &File{
		Version:      CurrentVersion,
		SiteLeader:   "r",
		SearchLeader: &search,
		Unmaps: &Unmaps{
			Mappings: []string{"L", "sb", "sw"},
		},
		SearchEngines: map[string]SearchEngine{
			"duckduckgo": {
				Alias:   "d",
				Name:    "DuckDuckGo",
				Search:  "https://duckduckgo.com/?q={query}",
				Favicon: "https://duckduckgo.com/favicon.ico",
				Completion: &Completion{
					URL:  "https://duckduckgo.com/ac/?q={query}",
					Path: "#.phrase",
				},
			},
		},
		Keys: Keys{
			Aliases: map[string][]string{
				"stackoverflow.com": {"superuser.com", "serverfault.com"},
			},
			Maps: map[string][]Binding{
				"global": {
					{Alias: "P", Map: "S", Category: "pageNav", Description: "Go back in history"},
					{Alias: "N", Map: "D", Category: "pageNav", Description: "Go forward in history"},
					{Alias: ";c", Action: "clipboard.open", Args: map[string]any{"new_tab": true}, Category: "clipboard", Description: "Open clipboard URL in new tab"},
				},
				"github.com": {
					{Alias: "n", Action: "link.open", Args: map[string]any{"url": "https://github.com/notifications"}, Description: "Notifications"},
				},
				"youtube.com": {
					{Alias: "F", Leader: &none, Lua: `page.open_omnibar("Commands")`, Description: "Open commands"},
				},
			},
			VMaps: map[string][]Binding{
				"global": {
					{Alias: "sd", Action: "clipboard.search", Args: map[string]any{"engine": "d"}, Category: "searchSelectedWith", Description: "Search clipboard with DuckDuckGo"},
				},
			},
		},
		DOI: &DOI{
			Handler: "https://doi.org/{doi}",
			Domains: map[string]string{
				"nature.com": "citation_doi",
				"dl.acm.org": "dc_identifier",
			},
		},
	}
}

// Write encodes f to path in the format its extension names. An existing file
// is only replaced when force is set.
func Write(path string, f *File, force bool) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	var data []byte
	switch format {
	case FormatTOML:
		data, err = toml.Marshal(f)
	case FormatYAML:
		data, err = yaml.Marshal(f)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
