package service

import (
	"context"
	"io"

	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/export"
	"github.com/alexanderramin/compactgantt/internal/importer"
)

// ChartService covers the stored-project use cases. Project references
// accept either a short ID (case-insensitive) or a full project ID.
type ChartService interface {
	ImportFile(ctx context.Context, path, note string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema, note string) (*ImportResult, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Get(ctx context.Context, ref string) (*domain.Project, error)
	History(ctx context.Context, ref string) ([]*domain.Revision, error)
	Export(ctx context.Context, ref string, enc importer.Encoding) ([]byte, error)
	Render(ctx context.Context, ref string, format export.Format, w io.Writer) (*RenderResult, error)
	RenderFile(ctx context.Context, path string, format export.Format, w io.Writer) (*RenderResult, error)
	Delete(ctx context.Context, ref string) error
}

type ImportResult struct {
	Project *domain.Project
	// Created is false when an existing project with the same short ID
	// received a new revision.
	Created bool
}

type RenderResult struct {
	Project      *domain.Project
	Format       export.Format
	Instructions int
}
