package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobbridge/internal/database"
)

// EnsureTableColumns fails when any of columns is absent from the public
// table, so a seeder never writes against a schema it was not built for.
func EnsureTableColumns(ctx context.Context, q database.Querier, table string, columns ...string) error {
	if q == nil {
		return errors.New("nil db")
	}
	if table == "" {
		return errors.New("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return errors.New("empty column")
		}
	}

	rows, err := q.Query(ctx,
		`SELECT want.name
		FROM unnest($2::text[]) AS want(name)
		WHERE NOT EXISTS (
			SELECT 1 FROM information_schema.columns c
			WHERE c.table_schema = 'public' AND c.table_name = $1 AND c.column_name = want.name
		)
		ORDER BY want.name`,
		table, columns,
	)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	var missing []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		missing = append(missing, name)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: %s is missing %s", table, strings.Join(missing, ", "))
	}
	return nil
}
