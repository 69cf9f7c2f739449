package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"projects", "project_revisions"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}

	var idx string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_project_revisions_project'`).Scan(&idx)
	require.NoError(t, err)
}

func TestMigrate_ForeignKeysCascade(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO projects (id, short_id, name, snapshot, created_at, updated_at, revision)
		VALUES ('p1', 'ROAD01', 'Road', '{}', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z', 1)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO project_revisions (id, project_id, revision, snapshot, created_at)
		VALUES ('r1', 'p1', 1, '{}', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO project_revisions (id, project_id, revision, snapshot, created_at)
		VALUES ('r2', 'missing', 1, '{}', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "revision of an unknown project")

	_, err = db.Exec(`DELETE FROM projects WHERE id = 'p1'`)
	require.NoError(t, err)
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM project_revisions`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestMigrate_UpgradeBackfillsRevisions(t *testing.T) {
	raw, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { raw.Close() })

	// Schema as it was before revisions were tracked.
	_, err = raw.Exec(`CREATE TABLE projects (
		id TEXT PRIMARY KEY, short_id TEXT NOT NULL UNIQUE, name TEXT NOT NULL,
		snapshot TEXT NOT NULL, created_at TEXT NOT NULL, updated_at TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = raw.Exec(`INSERT INTO projects VALUES ('p1', 'OLD01', 'Old', '{"project":{}}', '2024-05-01T00:00:00Z', '2024-06-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(raw))

	var revision int
	require.NoError(t, raw.QueryRow(`SELECT revision FROM projects WHERE id = 'p1'`).Scan(&revision))
	assert.Equal(t, 1, revision)

	var snapshot, note, createdAt string
	require.NoError(t, raw.QueryRow(`SELECT snapshot, note, created_at FROM project_revisions WHERE project_id = 'p1' AND revision = 1`).
		Scan(&snapshot, &note, &createdAt))
	assert.Equal(t, `{"project":{}}`, snapshot)
	assert.Equal(t, "initial", note)
	assert.Equal(t, "2024-06-01T00:00:00Z", createdAt)

	require.NoError(t, Migrate(raw), "backfill is a no-op the second time")
	var n int
	require.NoError(t, raw.QueryRow(`SELECT COUNT(*) FROM project_revisions`).Scan(&n))
	assert.Equal(t, 1, n)
}
