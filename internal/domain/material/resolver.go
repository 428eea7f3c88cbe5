package material

import (
	"math"
	"strconv"
	"strings"
)

// Canonical field names of the material schema.
const (
	fieldCategory = "category"
	fieldName     = "name"
	fieldLambda   = "lambda"
	fieldEvidence = "evidence"
	fieldComment  = "comment"
)

// fieldSynonyms maps each canonical field to the ordered list of accepted
// alternate column names. Alternates are probed only when the canonical name
// itself is absent; the first alternate present wins. Matching happens after
// trim + lowercase normalization, so entries here are already normalized.
// The "standerd_a" entry is a legacy misspelling still found in old sheets.
var fieldSynonyms = map[string][]string{
	fieldLambda:   {"λ", "valuea", "lambda(w/mk)", "lam", "thermal_conductivity"},
	fieldName:     {"material", "材料名", "材料", "名称"},
	fieldCategory: {"分類", "カテゴリ", "区分"},
	fieldEvidence: {"standarda", "standard_a", "standerd_a"},
	fieldComment:  {"comments", "note", "備考", "remarks"},
}

// ResolveRows maps an arbitrarily-named tabular header and its rows into the
// canonical material schema. It never fails: fields that cannot be resolved
// are treated as empty, and rows without a name or a numeric lambda are
// dropped. Source row order is preserved and identity keys are not
// deduplicated.
func ResolveRows(header []string, rows [][]string) Table {
	normalized := make([]string, len(header))
	for i, col := range header {
		normalized[i] = normalizeColumn(col)
	}

	categoryCols := columnsFor(normalized, fieldCategory)
	nameCols := columnsFor(normalized, fieldName)
	lambdaCols := columnsFor(normalized, fieldLambda)
	evidenceCols := columnsFor(normalized, fieldEvidence)
	commentCols := columnsFor(normalized, fieldComment)

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(cell(row, nameCols))
		lambda, ok := parseLambda(cell(row, lambdaCols))
		if name == "" || !ok {
			continue
		}
		records = append(records, Record{
			Category: strings.TrimSpace(cell(row, categoryCols)),
			Name:     name,
			Lambda:   lambda,
			Evidence: strings.TrimSpace(cell(row, evidenceCols)),
			Comment:  strings.TrimSpace(cell(row, commentCols)),
		})
	}
	return Table{records: records}
}

func normalizeColumn(col string) string {
	return strings.ToLower(strings.TrimSpace(col))
}

// columnsFor returns the indexes of every column resolving to the canonical
// field, in source order. Duplicates are kept: cell() lets later duplicates
// only fill gaps left by earlier ones.
func columnsFor(normalized []string, field string) []int {
	if cols := matchColumns(normalized, field); len(cols) > 0 {
		return cols
	}
	for _, alt := range fieldSynonyms[field] {
		if cols := matchColumns(normalized, alt); len(cols) > 0 {
			return cols
		}
	}
	return nil
}

func matchColumns(normalized []string, name string) []int {
	var cols []int
	for i, col := range normalized {
		if col == name {
			cols = append(cols, i)
		}
	}
	return cols
}

// cell returns the first non-empty value scanning the resolved columns left
// to right.
func cell(row []string, cols []int) string {
	for _, i := range cols {
		if i >= len(row) {
			continue
		}
		if strings.TrimSpace(row[i]) != "" {
			return row[i]
		}
	}
	return ""
}

// parseLambda coerces a lambda cell to a real number. Values that fail
// coercion are absent, not an error; the caller drops the row.
func parseLambda(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
