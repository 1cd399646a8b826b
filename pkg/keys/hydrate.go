package keys

import "sort"

// Hydrate expands alias groups into a new DomainMap.
// Each alias target gets its base domain's list (the same slice). Explicit
// entries in maps always win over alias-expanded ones, and when two groups
// claim the same target the lexically smaller base wins.
func Hydrate(maps DomainMap, aliases AliasGroup) DomainMap {
	out := make(DomainMap, len(maps))

	bases := make([]string, 0, len(aliases))
	for b := range aliases {
		bases = append(bases, b)
	}
	sort.Strings(bases)

	for _, base := range bases {
		list, ok := maps[base]
		if !ok {
			continue
		}
		for _, target := range aliases[base] {
			if _, taken := out[target]; taken {
				continue
			}
			out[target] = list
		}
	}

	for d, list := range maps {
		out[d] = list
	}
	return out
}

// AliasOf returns the base domain target was expanded from, if any.
// Explicit domains are never reported as aliases.
func AliasOf(maps DomainMap, aliases AliasGroup, target string) (string, bool) {
	if _, explicit := maps[target]; explicit {
		return "", false
	}
	bases := make([]string, 0, len(aliases))
	for b := range aliases {
		bases = append(bases, b)
	}
	sort.Strings(bases)
	for _, base := range bases {
		if _, ok := maps[base]; !ok {
			continue
		}
		for _, a := range aliases[base] {
			if a == target {
				return base, true
			}
		}
	}
	return "", false
}
