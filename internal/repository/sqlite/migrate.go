package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// ensureColumn adds a column to an existing table when a database predates it.
func ensureColumn(ctx context.Context, db *sql.DB, table, column, statement string) error {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return fmt.Errorf("describe %s table: %w", table, err)
	}
	defer rows.Close()

	exists := false
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notnull   int
			dfltValue any
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			return fmt.Errorf("scan pragma table info: %w", err)
		}
		if name == column {
			exists = true
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate pragma table info: %w", err)
	}

	if exists {
		return nil
	}
	if _, err := db.ExecContext(ctx, statement); err != nil {
		return fmt.Errorf("add column %s: %w", column, err)
	}
	return nil
}
