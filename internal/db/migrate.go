package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillRevisions(db); err != nil {
		return fmt.Errorf("backfilling project revisions: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		short_id    TEXT NOT NULL UNIQUE,
		name        TEXT NOT NULL,
		snapshot    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`ALTER TABLE projects ADD COLUMN revision INTEGER NOT NULL DEFAULT 0`,

	`CREATE TABLE IF NOT EXISTS project_revisions (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		revision    INTEGER NOT NULL,
		snapshot    TEXT NOT NULL,
		note        TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		UNIQUE(project_id, revision)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_project_revisions_project ON project_revisions(project_id)`,
}

// migrateBackfillRevisions records the current snapshot as revision 1 for
// projects stored before revisions were tracked (revision = 0).
func migrateBackfillRevisions(db *sql.DB) error {
	ctx := context.Background()

	rows, err := db.QueryContext(ctx, `SELECT id, snapshot, updated_at FROM projects WHERE revision = 0`)
	if err != nil {
		return fmt.Errorf("listing unrevisioned projects: %w", err)
	}
	type pending struct{ id, snapshot, updatedAt string }
	var todo []pending
	for rows.Next() {
		var p pending
		if err := rows.Scan(&p.id, &p.snapshot, &p.updatedAt); err != nil {
			rows.Close()
			return fmt.Errorf("scanning project: %w", err)
		}
		todo = append(todo, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterating projects: %w", err)
	}
	rows.Close()
	if len(todo) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting backfill transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range todo {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO project_revisions (id, project_id, revision, snapshot, note, created_at)
			 VALUES (?, ?, 1, ?, 'initial', ?)`,
			uuid.New().String(), p.id, p.snapshot, p.updatedAt); err != nil {
			return fmt.Errorf("inserting revision for %s: %w", p.id, err)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE projects SET revision = 1 WHERE id = ?`, p.id); err != nil {
			return fmt.Errorf("updating revision for %s: %w", p.id, err)
		}
	}
	return tx.Commit()
}
