package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject(name string, opts ...testutil.ProjectOption) *domain.Project {
	base := []testutil.ProjectOption{
		testutil.WithTasks(
			testutil.NewTestTask(1, "Design", "2025-01-06", "2025-01-17"),
			testutil.NewTestTask(2, "Launch", "2025-02-03", "2025-02-03", testutil.WithRow(2)),
		),
		testutil.WithConnectors(domain.Connector{FromID: 1, ToID: 2}),
		testutil.WithPipes(domain.Pipe{ID: 1, Date: testutil.Day("2025-02-14"), Name: "Freeze"}),
	}
	return testutil.NewTestProject(name, append(base, opts...)...)
}

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	proj := sampleProject("Roadmap")
	proj.CreatedAt = time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC)
	proj.UpdatedAt = proj.CreatedAt
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, proj.ShortID, fetched.ShortID)
	assert.Equal(t, "Roadmap", fetched.Name)
	assert.Equal(t, proj.CreatedAt, fetched.CreatedAt)
	assert.Equal(t, proj.Frame, fetched.Frame)
	assert.Equal(t, proj.Windows, fetched.Windows)
	assert.Equal(t, proj.Tasks, fetched.Tasks)
	assert.Equal(t, proj.Connectors, fetched.Connectors)
	assert.Equal(t, proj.Pipes, fetched.Pipes)
}

func TestProjectRepo_GetByShortID(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	proj := sampleProject("Biology", testutil.WithShortID("BIO01"))
	require.NoError(t, repo.Create(ctx, proj))

	// Case-insensitive lookup.
	fetched, err := repo.GetByShortID(ctx, "bio01")
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "BIO01", fetched.ShortID)
}

func TestProjectRepo_NotFound(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByShortID(ctx, "NOPE01")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "nonexistent"), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, sampleProject("Ghost")), domain.ErrNotFound)
}

func TestProjectRepo_DuplicateShortID(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleProject("One", testutil.WithShortID("DUP01"))))
	err := repo.Create(ctx, sampleProject("Two", testutil.WithShortID("DUP01")))
	assert.Error(t, err)
}

func TestProjectRepo_List(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	older := sampleProject("Older")
	older.CreatedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := sampleProject("Newer")
	newer.CreatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, older))

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Older", projects[0].Name)
	assert.Equal(t, "Newer", projects[1].Name)
}

func TestProjectRepo_Update(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	proj := sampleProject("Roadmap")
	require.NoError(t, repo.Create(ctx, proj))

	proj.Name = "Roadmap v2"
	proj.Revision = 2
	proj.Tasks = proj.Tasks[:1]
	proj.UpdatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Update(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap v2", fetched.Name)
	assert.Equal(t, 2, fetched.Revision)
	assert.Len(t, fetched.Tasks, 1)
	assert.Equal(t, proj.UpdatedAt, fetched.UpdatedAt)
}

func TestProjectRepo_DeleteCascadesRevisions(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(conn)
	revs := NewSQLiteRevisionRepo(conn)
	ctx := context.Background()

	proj := sampleProject("Roadmap")
	proj.Revision = 1
	require.NoError(t, repo.Create(ctx, proj))
	require.NoError(t, revs.Create(ctx, &domain.Revision{ID: "r1", ProjectID: proj.ID, Number: 1}, proj))

	require.NoError(t, repo.Delete(ctx, proj.ID))

	_, err := repo.GetByID(ctx, proj.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	list, err := revs.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
