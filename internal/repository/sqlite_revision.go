package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/compactgantt/internal/db"
	"github.com/alexanderramin/compactgantt/internal/domain"
)

type SQLiteRevisionRepo struct {
	db db.DBTX
}

func NewSQLiteRevisionRepo(conn db.DBTX) *SQLiteRevisionRepo {
	return &SQLiteRevisionRepo{db: conn}
}

// Create stores p's snapshot as revision rev.Number of rev.ProjectID.
func (r *SQLiteRevisionRepo) Create(ctx context.Context, rev *domain.Revision, p *domain.Project) error {
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = nowUTC()
	}
	snapshot, err := encodeSnapshot(p)
	if err != nil {
		return err
	}
	query := `INSERT INTO project_revisions (id, project_id, revision, snapshot, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rev.ID,
		rev.ProjectID,
		rev.Number,
		snapshot,
		rev.Note,
		rev.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting revision: %w", err)
	}
	return nil
}

// ListByProject returns revisions oldest first.
func (r *SQLiteRevisionRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Revision, error) {
	query := `SELECT id, project_id, revision, note, created_at
		FROM project_revisions WHERE project_id = ? ORDER BY revision`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing revisions: %w", err)
	}
	defer rows.Close()

	var revs []*domain.Revision
	for rows.Next() {
		var rev domain.Revision
		var createdAt string
		if err := rows.Scan(&rev.ID, &rev.ProjectID, &rev.Number, &rev.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning revision: %w", err)
		}
		rev.CreatedAt = parseTime(createdAt)
		revs = append(revs, &rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revisions: %w", err)
	}
	return revs, nil
}

// GetSnapshot restores the project as it was stored in revision number.
// The returned project carries a fresh ID; callers that need the stored
// identity copy it from the project row.
func (r *SQLiteRevisionRepo) GetSnapshot(ctx context.Context, projectID string, number int) (*domain.Project, error) {
	var snapshot, createdAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT snapshot, created_at FROM project_revisions WHERE project_id = ? AND revision = ?`,
		projectID, number).Scan(&snapshot, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("revision %d: %w", number, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading revision: %w", err)
	}
	p, err := decodeSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("revision %d: %w", number, err)
	}
	p.Revision = number
	p.UpdatedAt = parseTime(createdAt)
	return p, nil
}
