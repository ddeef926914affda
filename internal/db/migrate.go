package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// migration set re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// List-valued fields (kpis, dependencies, skills, technology, soft benefits,
// risk factors) are stored as JSON text arrays.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS initiatives (
		id                    TEXT PRIMARY KEY,
		name                  TEXT NOT NULL UNIQUE,
		problem_statement     TEXT NOT NULL DEFAULT '',
		kpis                  TEXT NOT NULL DEFAULT '[]',
		initial_cost          REAL NOT NULL CHECK(initial_cost >= 0),
		annual_operating_cost REAL NOT NULL CHECK(annual_operating_cost >= 0),
		annual_benefit        REAL NOT NULL CHECK(annual_benefit >= 0),
		implementation_months INTEGER NOT NULL CHECK(implementation_months > 0),
		effort                TEXT NOT NULL CHECK(effort IN ('Low','Medium','High')),
		impact                TEXT NOT NULL CHECK(impact IN ('Low','Medium','High')),
		risk                  TEXT NOT NULL CHECK(risk IN ('Low','Medium','High')),
		strategic_value       REAL NOT NULL CHECK(strategic_value BETWEEN 0 AND 100),
		dependencies          TEXT NOT NULL DEFAULT '[]',
		skills_required       TEXT NOT NULL DEFAULT '[]',
		technology_required   TEXT NOT NULL DEFAULT '[]',
		soft_benefits         TEXT NOT NULL DEFAULT '[]',
		risk_factors          TEXT NOT NULL DEFAULT '[]',
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_initiatives_created_at ON initiatives(created_at)`,
}
