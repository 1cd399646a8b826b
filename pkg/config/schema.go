package config

import (
	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON schema of File, keyed by the YAML field names.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&File{})
	schema.Title = "sitekeys configuration"
	schema.Description = "Per-site keybindings, search engines and default removals."

	// Every top-level section is optional
	schema.Required = nil
	return schema
}
