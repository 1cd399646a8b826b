package search

import (
	"github.com/tidwall/gjson"
)

// Completion describes where suggestions for an engine come from and how to
// pull them out of the JSON response.
type Completion struct {
	URL  Template
	Path string // gjson path to the suggestion array; empty means the document root
}

// Request returns the completion URL for query.
func (c Completion) Request(query string) string {
	return c.URL.Expand(query)
}

// Parse extracts suggestions from body. Array items may be plain strings or
// objects carrying a "phrase" or "value" field.
func (c Completion) Parse(body []byte) []string {
	if !gjson.ValidBytes(body) {
		return nil
	}

	res := gjson.ParseBytes(body)
	if c.Path != "" {
		res = gjson.GetBytes(body, c.Path)
	}
	if !res.IsArray() {
		return nil
	}

	var out []string
	res.ForEach(func(_, item gjson.Result) bool {
		switch {
		case item.Type == gjson.String:
			out = append(out, item.String())
		case item.IsObject():
			for _, field := range []string{"phrase", "value"} {
				if v := item.Get(field); v.Exists() {
					out = append(out, v.String())
					break
				}
			}
		}
		return true
	})
	return out
}
