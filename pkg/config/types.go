// Package config loads sitekeys configuration files and converts them into
// the runtime values the compiler consumes.
package config

// File is the on-disk shape of a configuration file.
type File struct {
	Version       string                  `toml:"version,omitempty" yaml:"version,omitempty" jsonschema:"description=Configuration format version. Must satisfy ^1 when set."`
	SiteLeader    string                  `toml:"site_leader,omitempty" yaml:"site_leader,omitempty" jsonschema:"description=Prefix for site-scoped bindings that set no leader of their own."`
	SearchLeader  *string                 `toml:"search_leader,omitempty" yaml:"search_leader,omitempty" jsonschema:"description=Prefix for derived search engine bindings. Defaults to o. Empty string for none."`
	Unmaps        *Unmaps                 `toml:"unmaps,omitempty" yaml:"unmaps,omitempty" jsonschema:"description=Factory defaults removed before anything is bound."`
	SearchEngines map[string]SearchEngine `toml:"search_engines,omitempty" yaml:"search_engines,omitempty" jsonschema:"description=Search engines keyed by id."`
	Keys          Keys                    `toml:"keys,omitempty" yaml:"keys,omitempty"`
	DOI           *DOI                    `toml:"doi,omitempty" yaml:"doi,omitempty" jsonschema:"description=Open DOI bindings for publisher sites."`

	// Undecoded lists keys present in the file that no field consumed.
	Undecoded []string `toml:"-" yaml:"-" json:"-"`
}

// Unmaps names factory bindings to remove.
type Unmaps struct {
	Mappings      []string            `toml:"mappings,omitempty" yaml:"mappings,omitempty" jsonschema:"description=Normal mode keys."`
	VMappings     []string            `toml:"vmappings,omitempty" yaml:"vmappings,omitempty" jsonschema:"description=Visual mode keys."`
	SearchAliases map[string][]string `toml:"search_aliases,omitempty" yaml:"search_aliases,omitempty" jsonschema:"description=Search aliases keyed by leader."`
}

// SearchEngine declares one search engine. Action or Lua replace the default
// omnibar behaviour when set.
type SearchEngine struct {
	Alias      string         `toml:"alias" yaml:"alias"`
	Name       string         `toml:"name" yaml:"name"`
	Search     string         `toml:"search" yaml:"search" jsonschema:"description=Search URL. {query} marks where the query goes; without it the query is appended."`
	Favicon    string         `toml:"favicon,omitempty" yaml:"favicon,omitempty"`
	Completion *Completion    `toml:"completion,omitempty" yaml:"completion,omitempty"`
	Action     string         `toml:"action,omitempty" yaml:"action,omitempty"`
	Args       map[string]any `toml:"args,omitempty" yaml:"args,omitempty"`
	Lua        string         `toml:"lua,omitempty" yaml:"lua,omitempty"`
}

// Completion configures search suggestions.
type Completion struct {
	URL  string `toml:"url" yaml:"url"`
	Path string `toml:"path,omitempty" yaml:"path,omitempty" jsonschema:"description=gjson path to the suggestion array."`
}

// Keys holds the binding sections.
type Keys struct {
	Aliases map[string][]string  `toml:"aliases,omitempty" yaml:"aliases,omitempty" jsonschema:"description=Base domain to the hostnames that reuse its bindings."`
	Maps    map[string][]Binding `toml:"maps,omitempty" yaml:"maps,omitempty" jsonschema:"description=Normal mode bindings keyed by domain or global."`
	VMaps   map[string][]Binding `toml:"vmaps,omitempty" yaml:"vmaps,omitempty" jsonschema:"description=Visual mode bindings keyed by domain or global."`
}

// Binding is one declared rule. Exactly one of Map, Action and Lua is set.
type Binding struct {
	Alias       string         `toml:"alias" yaml:"alias"`
	Leader      *string        `toml:"leader,omitempty" yaml:"leader,omitempty" jsonschema:"description=Overrides the leader. Empty string for none."`
	Map         string         `toml:"map,omitempty" yaml:"map,omitempty" jsonschema:"description=Key this binding replays."`
	Action      string         `toml:"action,omitempty" yaml:"action,omitempty" jsonschema:"description=Built-in action name."`
	Args        map[string]any `toml:"args,omitempty" yaml:"args,omitempty"`
	Lua         string         `toml:"lua,omitempty" yaml:"lua,omitempty" jsonschema:"description=Lua chunk run with a page table."`
	Category    string         `toml:"category,omitempty" yaml:"category,omitempty"`
	Description string         `toml:"description,omitempty" yaml:"description,omitempty"`
	Path        string         `toml:"path,omitempty" yaml:"path,omitempty" jsonschema:"description=Regular expression for the URL path. Matches any path when empty."`
	Hide        bool           `toml:"hide,omitempty" yaml:"hide,omitempty" jsonschema:"description=Leave out of help listings."`
}

// DOI configures Open DOI bindings.
type DOI struct {
	Handler string            `toml:"handler,omitempty" yaml:"handler,omitempty" jsonschema:"description=URL template with a {doi} placeholder."`
	Domains map[string]string `toml:"domains,omitempty" yaml:"domains,omitempty" jsonschema:"description=Domain to provider: citation_doi or dc_identifier."`
}
