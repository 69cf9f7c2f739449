package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/compactgantt/internal/db"
	"github.com/alexanderramin/compactgantt/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo. Each row holds the project's
// identity columns plus the whole snapshot as JSON.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

const projectColumns = `id, short_id, name, revision, snapshot, created_at, updated_at`

// Create inserts p. Zero timestamps are set to now.
func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = nowUTC()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	snapshot, err := encodeSnapshot(p)
	if err != nil {
		return err
	}
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.ShortID,
		p.Name,
		p.Revision,
		snapshot,
		p.CreatedAt.Format(timeLayout),
		p.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProjectRepo) GetByShortID(ctx context.Context, shortID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE UPPER(short_id) = UPPER(?)`
	return r.scanProject(r.db.QueryRowContext(ctx, query, shortID))
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at, short_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

// Update replaces the stored snapshot and revision counter of p.
func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	snapshot, err := encodeSnapshot(p)
	if err != nil {
		return err
	}
	query := `UPDATE projects SET short_id = ?, name = ?, revision = ?, snapshot = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.ShortID,
		p.Name,
		p.Revision,
		snapshot,
		p.UpdatedAt.Format(timeLayout),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return requireAffected(res, "project", p.ID)
}

// Delete removes the project; its revisions go with it.
func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return requireAffected(res, "project", id)
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteProjectRepo) scanProject(s scanner) (*domain.Project, error) {
	var (
		id, shortID, name, snapshot string
		createdAt, updatedAt        string
		revision                    int
	)
	if err := s.Scan(&id, &shortID, &name, &revision, &snapshot, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p, err := decodeSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", shortID, err)
	}
	p.ID = id
	p.ShortID = shortID
	p.Name = name
	p.Revision = revision
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}

func requireAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
