package keys

import "github.com/grovetools/sitekeys/pkg/category"

// DOIAlias is the key bound on publisher sites to open the page's DOI.
const DOIAlias = "O"

// RegisterDOI appends the hidden "Open DOI" binding to domain's list,
// creating the list when the domain has no bindings yet.
func RegisterDOI(maps DomainMap, domain string, open Callback) {
	maps[domain] = append(maps[domain], BindingSpec{
		Alias:       DOIAlias,
		Action:      Invoke{Callback: open},
		Category:    category.Misc,
		Description: "Open DOI",
		Hide:        true,
	})
}
