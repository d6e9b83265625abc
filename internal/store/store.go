package store

import (
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// buildUpdateClause creates the SET clause for ON CONFLICT DO UPDATE
// e.g., "label = EXCLUDED.label, display_order = EXCLUDED.display_order"
func buildUpdateClause(fields map[string]any, exclude ...string) string {
	skip := make(map[string]bool, len(exclude))
	for _, f := range exclude {
		skip[f] = true
	}

	columns := make([]string, 0, len(fields))
	for field := range fields {
		if skip[field] {
			continue
		}
		columns = append(columns, field)
	}
	sort.Strings(columns)

	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = fmt.Sprintf("%s = EXCLUDED.%s", c, c)
	}
	return strings.Join(parts, ", ")
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
