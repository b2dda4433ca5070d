// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// renumber rewrites a table's order column in a single transaction: the
// submitted ids get positions 1..n in the given order, and any rows not
// in the request keep their relative order after them. The table and
// column names come from compile-time constants, never user input.
func renumber(ctx context.Context, db *sql.DB, table, column string, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reorder %s: begin: %w", table, err)
	}
	defer tx.Rollback()

	setPos := fmt.Sprintf(`UPDATE %s SET %s = $1, updated_at = NOW() WHERE id = $2`, table, column)
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, setPos, i+1, id); err != nil {
			return fmt.Errorf("reorder %s: position %d: %w", table, i+1, err)
		}
	}

	listed := make([]string, len(ids))
	for i, id := range ids {
		listed[i] = id.String()
	}
	shift := fmt.Sprintf(`
		UPDATE %s t SET %s = sub.pos + $1, updated_at = NOW()
		FROM (
			SELECT id, ROW_NUMBER() OVER (ORDER BY %s ASC, created_at ASC) AS pos
			FROM %s
			WHERE NOT (id = ANY($2::uuid[]))
		) sub
		WHERE t.id = sub.id
	`, table, column, column, table)
	if _, err := tx.ExecContext(ctx, shift, len(ids), listed); err != nil {
		return fmt.Errorf("reorder %s: shift remainder: %w", table, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reorder %s: commit: %w", table, err)
	}
	return nil
}
