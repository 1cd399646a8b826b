package keys

import "sort"

// MatrixRow represents a single key and what it does on each domain.
type MatrixRow struct {
	Key      string            `json:"key"`
	Domains  map[string]string `json:"domains"`
	Shadowed bool              `json:"shadowed"` // a site binding takes over a global one
}

// MatrixReport contains the key x domain view of a DomainMap.
type MatrixReport struct {
	Rows    []MatrixRow `json:"rows"`
	Domains []string    `json:"domains"`
}

// BuildMatrix creates a matrix view showing what each final key does per domain.
// Later specs overwrite earlier ones, so each cell holds the effective binding.
func BuildMatrix(maps DomainMap, siteLeader string) MatrixReport {
	rowMap := make(map[string]*MatrixRow)

	report := MatrixReport{Domains: maps.Domains()}

	for _, domain := range report.Domains {
		for _, s := range maps[domain] {
			if s.Alias == "" {
				continue
			}
			k := s.FinalKey(domain, siteLeader)
			if rowMap[k] == nil {
				rowMap[k] = &MatrixRow{
					Key:     k,
					Domains: make(map[string]string),
				}
			}
			rowMap[k].Domains[domain] = cellLabel(s)
		}
	}

	for _, row := range rowMap {
		if _, ok := row.Domains[GlobalDomain]; ok && len(row.Domains) > 1 {
			row.Shadowed = true
		}
		report.Rows = append(report.Rows, *row)
	}

	// Sort alphabetically by key
	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].Key < report.Rows[j].Key
	})

	return report
}

func cellLabel(s BindingSpec) string {
	if r, ok := s.Action.(Remap); ok && s.Description == "" {
		return "-> " + r.Target
	}
	if s.Description == "" {
		return s.Category.Tag()
	}
	return s.Description
}
