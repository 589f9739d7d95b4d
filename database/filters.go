package database

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// DateRange bounds a date or timestamp column; either end may be open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// applySearch ORs a case-insensitive substring match over columns. LIKE
// wildcards in term match literally.
func applySearch(q *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return q
	}

	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	clauses := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		clauses = append(clauses, "LOWER("+col+`) LIKE ? ESCAPE '\'`)
		args = append(args, pattern)
	}
	return q.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

// applyRange restricts column to the inclusive range r.
func applyRange(q *gorm.DB, column string, r DateRange) *gorm.DB {
	if r.From != nil {
		q = q.Where(column+" >= ?", *r.From)
	}
	if r.To != nil {
		q = q.Where(column+" <= ?", *r.To)
	}
	return q
}

// applyEquals adds column = value when value is not blank.
func applyEquals(q *gorm.DB, column, value string) *gorm.DB {
	if strings.TrimSpace(value) == "" {
		return q
	}
	return q.Where(column+" = ?", value)
}

// deleteAll bypasses gorm's guard against unscoped deletes.
func deleteAll(db *gorm.DB, model any) (int64, error) {
	result := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model)
	return result.RowsAffected, result.Error
}
