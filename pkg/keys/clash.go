package keys

import (
	"sort"
)

// Override records a key declared more than once in the same scope of one
// domain. The last declaration wins at the host; the earlier ones are shadowed.
type Override struct {
	Mode     Mode
	Domain   string
	Path     string
	Key      string
	Winner   BindingSpec
	Shadowed []BindingSpec
}

// DetectOverrides finds keys declared more than once within the same domain
// and path scope. Keys reused across domains are NOT reported because their
// predicates keep them apart.
func DetectOverrides(maps DomainMap, siteLeader string, mode Mode) []Override {
	var overrides []Override

	for domain, list := range maps {
		type scopeKey struct{ path, key string }
		usage := make(map[scopeKey][]BindingSpec)
		var order []scopeKey

		for _, s := range list {
			if s.Alias == "" {
				continue
			}
			k := scopeKey{path: s.Path, key: s.FinalKey(domain, siteLeader)}
			if _, seen := usage[k]; !seen {
				order = append(order, k)
			}
			usage[k] = append(usage[k], s)
		}

		for _, k := range order {
			specs := usage[k]
			if len(specs) < 2 {
				continue
			}
			overrides = append(overrides, Override{
				Mode:     mode,
				Domain:   domain,
				Path:     k.path,
				Key:      k.key,
				Winner:   specs[len(specs)-1],
				Shadowed: specs[:len(specs)-1],
			})
		}
	}

	// Sort by domain then key for consistent output
	sort.SliceStable(overrides, func(i, j int) bool {
		if overrides[i].Domain != overrides[j].Domain {
			return overrides[i].Domain < overrides[j].Domain
		}
		return overrides[i].Key < overrides[j].Key
	})

	return overrides
}

// GroupOverridesByDomain returns overrides organized by domain.
func GroupOverridesByDomain(overrides []Override) map[string][]Override {
	result := make(map[string][]Override)
	for _, o := range overrides {
		result[o.Domain] = append(result[o.Domain], o)
	}
	return result
}

// CountOverrides returns the number of overrides for a given domain.
func CountOverrides(overrides []Override, domain string) int {
	count := 0
	for _, o := range overrides {
		if o.Domain == domain {
			count++
		}
	}
	return count
}
