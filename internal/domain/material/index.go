package material

// Index provides read-only conductivity lookups over a resolved table.
type Index struct {
	table Table
}

// NewIndex builds an index over a table.
func NewIndex(table Table) *Index {
	return &Index{table: table}
}

// Lookup resolves the conductivity for a material reference. When category
// is non-empty the match requires category and name equality; if that finds
// nothing the lookup retries on name alone. When multiple rows match, the
// first in table order wins.
func (ix *Index) Lookup(category, name string) (float64, error) {
	if name == "" {
		return 0, ErrMaterialNotFound
	}
	for _, rec := range ix.table.records {
		if category != "" && rec.Category != category {
			continue
		}
		if rec.Name == name {
			return rec.Lambda, nil
		}
	}
	if category != "" {
		for _, rec := range ix.table.records {
			if rec.Name == name {
				return rec.Lambda, nil
			}
		}
	}
	return 0, ErrMaterialNotFound
}
