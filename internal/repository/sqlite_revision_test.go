package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/compactgantt/internal/domain"
	"github.com/alexanderramin/compactgantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevisionRepo_CreateListAndRestore(t *testing.T) {
	conn := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(conn)
	revs := NewSQLiteRevisionRepo(conn)
	ctx := context.Background()

	proj := sampleProject("Roadmap")
	proj.Revision = 1
	require.NoError(t, projects.Create(ctx, proj))
	require.NoError(t, revs.Create(ctx, &domain.Revision{ID: "r1", ProjectID: proj.ID, Number: 1, Note: "imported"}, proj))

	proj.Tasks = append(proj.Tasks, testutil.NewTestTask(3, "Retro", "2025-03-10", "2025-03-14", testutil.WithRow(3)))
	proj.Revision = 2
	require.NoError(t, revs.Create(ctx, &domain.Revision{ID: "r2", ProjectID: proj.ID, Number: 2, Note: "reimported"}, proj))

	list, err := revs.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].Number)
	assert.Equal(t, "imported", list[0].Note)
	assert.Equal(t, 2, list[1].Number)
	assert.False(t, list[1].CreatedAt.IsZero())

	first, err := revs.GetSnapshot(ctx, proj.ID, 1)
	require.NoError(t, err)
	assert.Len(t, first.Tasks, 2)
	assert.Equal(t, 1, first.Revision)

	second, err := revs.GetSnapshot(ctx, proj.ID, 2)
	require.NoError(t, err)
	assert.Len(t, second.Tasks, 3)
}

func TestRevisionRepo_DuplicateNumber(t *testing.T) {
	conn := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(conn)
	revs := NewSQLiteRevisionRepo(conn)
	ctx := context.Background()

	proj := sampleProject("Roadmap")
	require.NoError(t, projects.Create(ctx, proj))
	require.NoError(t, revs.Create(ctx, &domain.Revision{ID: "r1", ProjectID: proj.ID, Number: 1}, proj))
	assert.Error(t, revs.Create(ctx, &domain.Revision{ID: "r2", ProjectID: proj.ID, Number: 1}, proj))
}

func TestRevisionRepo_SnapshotNotFound(t *testing.T) {
	revs := NewSQLiteRevisionRepo(testutil.NewTestDB(t))

	_, err := revs.GetSnapshot(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
