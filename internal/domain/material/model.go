package material

import "sort"

// Record is one canonical material row. Identity is the (Category, Name)
// pair; Name alone is a secondary, non-unique key used as a lookup fallback.
type Record struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Lambda   float64 `json:"lambda"`
	Evidence string  `json:"evidence,omitempty"`
	Comment  string  `json:"comment,omitempty"`
}

// Table is an ordered, immutable collection of resolved material records.
// A table is rebuilt wholesale on every load; there is no incremental update.
type Table struct {
	records []Record
}

// NewTable builds a table from resolved records, preserving their order.
func NewTable(records []Record) Table {
	copied := make([]Record, len(records))
	copy(copied, records)
	return Table{records: copied}
}

// Len returns the number of records.
func (t Table) Len() int {
	return len(t.records)
}

// Records returns a copy of the records in table order.
func (t Table) Records() []Record {
	copied := make([]Record, len(t.records))
	copy(copied, t.records)
	return copied
}

// Categories returns the distinct non-empty categories, sorted.
func (t Table) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, rec := range t.records {
		if rec.Category == "" || seen[rec.Category] {
			continue
		}
		seen[rec.Category] = true
		cats = append(cats, rec.Category)
	}
	sort.Strings(cats)
	return cats
}

// Names returns the distinct material names for a category, sorted.
// An empty category returns names across the whole table.
func (t Table) Names(category string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, rec := range t.records {
		if category != "" && rec.Category != category {
			continue
		}
		if rec.Name == "" || seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true
		names = append(names, rec.Name)
	}
	sort.Strings(names)
	return names
}
