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

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='initiatives'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "initiatives", name)

	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_initiatives_created_at'`).Scan(&name)
	require.NoError(t, err)
}

func TestMigrate_EnforcesChecks(t *testing.T) {
	db := openTestDB(t)

	// Negative money and unknown enum values are rejected at the schema level.
	_, err := db.Exec(`INSERT INTO initiatives
		(id, name, initial_cost, annual_operating_cost, annual_benefit, implementation_months,
		 effort, impact, risk, strategic_value, created_at, updated_at)
		VALUES ('x', 'bad', -1, 0, 0, 1, 'Low', 'Low', 'Low', 50, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)

	_, err = db.Exec(`INSERT INTO initiatives
		(id, name, initial_cost, annual_operating_cost, annual_benefit, implementation_months,
		 effort, impact, risk, strategic_value, created_at, updated_at)
		VALUES ('y', 'bad enum', 0, 0, 0, 1, 'Huge', 'Low', 'Low', 50, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)
}
