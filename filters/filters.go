// Package filters holds the query-building helpers shared by the GORM
// repositories: case-insensitive substring matching and dynamic multi-key
// ordering.
package filters

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Contains builds the LIKE argument for a case-insensitive substring match.
// Pair it with a `LOWER(col) LIKE ?` condition; that form behaves the same
// on postgres and sqlite.
func Contains(v string) string {
	return "%" + strings.ToLower(v) + "%"
}

// Prefix builds the LIKE argument for a prefix match.
func Prefix(v string) string {
	return v + "%"
}

// ApplyOrdering appends ORDER BY clauses for each key, left to right. A "-"
// prefix means descending. Keys not present in the columns whitelist are
// ignored; with no usable keys the store's natural order is preserved.
func ApplyOrdering(q *gorm.DB, keys []string, columns map[string]string) *gorm.DB {
	for _, key := range keys {
		name := strings.TrimSpace(key)
		desc := false
		if strings.HasPrefix(name, "-") {
			desc = true
			name = name[1:]
		}
		col, ok := columns[name]
		if !ok {
			continue
		}
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: desc})
	}
	return q
}
