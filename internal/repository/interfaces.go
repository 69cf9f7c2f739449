package repository

import (
	"context"

	"github.com/alexanderramin/compactgantt/internal/domain"
)

// ProjectRepo stores the current snapshot of each project.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// RevisionRepo keeps the history of stored snapshots.
type RevisionRepo interface {
	Create(ctx context.Context, rev *domain.Revision, p *domain.Project) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.Revision, error)
	GetSnapshot(ctx context.Context, projectID string, number int) (*domain.Project, error)
}
