package services

import (
	"strings"

	"gorm.io/gorm"
)

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// matchAny filters to rows where any of the columns contains term,
// ignoring case. Column names must be trusted identifiers.
func matchAny(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		t := strings.TrimSpace(term)
		if t == "" || len(columns) == 0 {
			return tx
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(t)) + "%"
		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			clauses[i] = "LOWER(" + col + `) LIKE ? ESCAPE '\'`
			args[i] = pattern
		}
		return tx.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

// onlyActive restricts a query to records whose soft status flag is set.
func onlyActive(tx *gorm.DB) *gorm.DB {
	return tx.Where("is_active = ?", true)
}
