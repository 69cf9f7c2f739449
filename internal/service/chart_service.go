package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/compactgantt/internal/chart"
	"github.com/alexanderramin/compactgantt/internal/db"
	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/export"
	"github.com/alexanderramin/compactgantt/internal/importer"
	"github.com/alexanderramin/compactgantt/internal/repository"
	"github.com/google/uuid"
)

type chartService struct {
	conn     db.DBTX
	uow      db.UnitOfWork
	engine   *chart.Engine
	observer UseCaseObserver
}

// NewChartService reads through conn and writes inside uow transactions.
func NewChartService(conn db.DBTX, uow db.UnitOfWork, engine *chart.Engine, observers ...UseCaseObserver) ChartService {
	return &chartService{
		conn:     conn,
		uow:      uow,
		engine:   engine,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *chartService) ImportFile(ctx context.Context, path, note string) (*ImportResult, error) {
	schema, err := importer.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSchema(ctx, schema, note)
}

// ImportSchema stores schema as a new project, or as the next revision of
// the project that already uses its short ID.
func (s *chartService) ImportSchema(ctx context.Context, schema *importer.ImportSchema, note string) (result *ImportResult, err error) {
	fields := map[string]any{"short_id": schema.Project.ShortID}
	done := observe(ctx, s.observer, "import-project", fields)
	defer func() { done(err) }()

	if errs := importer.Validate(schema, s.engine.Config().ProportionTolerance); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	p, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}
	fields["tasks"] = len(p.Tasks)
	fields["windows"] = len(p.Windows)

	result = &ImportResult{Project: p}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		projects := repository.NewSQLiteProjectRepo(tx)
		revisions := repository.NewSQLiteRevisionRepo(tx)

		existing, err := projects.GetByShortID(ctx, p.ShortID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			p.Revision = 1
			result.Created = true
			if err := projects.Create(ctx, p); err != nil {
				return fmt.Errorf("creating project: %w", err)
			}
		case err != nil:
			return err
		default:
			p.ID = existing.ID
			p.CreatedAt = existing.CreatedAt
			p.Revision = existing.Revision + 1
			if err := projects.Update(ctx, p); err != nil {
				return fmt.Errorf("updating project: %w", err)
			}
		}

		rev := &domain.Revision{
			ID:        uuid.New().String(),
			ProjectID: p.ID,
			Number:    p.Revision,
			Note:      note,
			CreatedAt: p.UpdatedAt,
		}
		if err := revisions.Create(ctx, rev, p); err != nil {
			return fmt.Errorf("recording revision: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["revision"] = p.Revision
	return result, nil
}

func (s *chartService) List(ctx context.Context) ([]*domain.Project, error) {
	return repository.NewSQLiteProjectRepo(s.conn).List(ctx)
}

func (s *chartService) Get(ctx context.Context, ref string) (*domain.Project, error) {
	return s.resolve(ctx, repository.NewSQLiteProjectRepo(s.conn), ref)
}

func (s *chartService) History(ctx context.Context, ref string) ([]*domain.Revision, error) {
	p, err := s.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	return repository.NewSQLiteRevisionRepo(s.conn).ListByProject(ctx, p.ID)
}

// Export returns the stored snapshot in its file representation.
func (s *chartService) Export(ctx context.Context, ref string, enc importer.Encoding) ([]byte, error) {
	p, err := s.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	return importer.Marshal(importer.FromProject(p), enc)
}

func (s *chartService) Render(ctx context.Context, ref string, format export.Format, w io.Writer) (result *RenderResult, err error) {
	fields := map[string]any{"project": ref, "format": string(format)}
	done := observe(ctx, s.observer, "render-project", fields)
	defer func() { done(err) }()

	p, err := s.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, p, format, w, fields)
}

// RenderFile renders a snapshot file without storing it.
func (s *chartService) RenderFile(ctx context.Context, path string, format export.Format, w io.Writer) (result *RenderResult, err error) {
	fields := map[string]any{"file": path, "format": string(format)}
	done := observe(ctx, s.observer, "render-file", fields)
	defer func() { done(err) }()

	schema, err := importer.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot file: %w", err)
	}
	if errs := importer.Validate(schema, s.engine.Config().ProportionTolerance); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	p, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting snapshot: %w", err)
	}
	return s.render(ctx, p, format, w, fields)
}

func (s *chartService) render(ctx context.Context, p *domain.Project, format export.Format, w io.Writer, fields map[string]any) (*RenderResult, error) {
	results := make(chan chart.Result, 1)
	s.engine.RenderAsync(p, func(r chart.Result) { results <- r })

	var res chart.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-results:
	}
	if res.Err != nil {
		return nil, fmt.Errorf("rendering %s: %w", p.DisplayID(), res.Err)
	}
	fields["instructions"] = len(res.Instructions)

	opts := export.Options{
		FontFamily: domain.Coalesce(p.Typography.FontFamily, s.engine.Config().Fonts.Family),
		Scale:      1,
	}
	if err := export.Write(w, format, p.Frame.Width, p.Frame.Height, res.Instructions, opts); err != nil {
		return nil, fmt.Errorf("writing %s: %w", format, err)
	}
	return &RenderResult{Project: p, Format: format, Instructions: len(res.Instructions)}, nil
}

func (s *chartService) Delete(ctx context.Context, ref string) (err error) {
	done := observe(ctx, s.observer, "delete-project", map[string]any{"project": ref})
	defer func() { done(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		projects := repository.NewSQLiteProjectRepo(tx)
		p, err := s.resolve(ctx, projects, ref)
		if err != nil {
			return err
		}
		return projects.Delete(ctx, p.ID)
	})
}

// resolve looks ref up as a short ID first, then as a full ID.
func (s *chartService) resolve(ctx context.Context, projects repository.ProjectRepo, ref string) (*domain.Project, error) {
	p, err := projects.GetByShortID(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	p, err = projects.GetByID(ctx, ref)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("project %q: %w", ref, domain.ErrNotFound)
	}
	return p, err
}

func formatValidationErrors(errs []error) error {
	return fmt.Errorf("snapshot validation failed (%d errors):\n%w", len(errs), errors.Join(errs...))
}
