package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmaselli/roicanvas/internal/db"
	"github.com/dmaselli/roicanvas/internal/domain"
)

// SQLiteInitiativeRepo implements InitiativeRepo using a SQLite database.
// It accepts a db.DBTX, so the same implementation serves both plain
// connections and transactions.
type SQLiteInitiativeRepo struct {
	db db.DBTX
}

// NewSQLiteInitiativeRepo creates a new SQLiteInitiativeRepo.
func NewSQLiteInitiativeRepo(db db.DBTX) *SQLiteInitiativeRepo {
	return &SQLiteInitiativeRepo{db: db}
}

const initiativeColumns = `id, name, problem_statement, kpis,
	initial_cost, annual_operating_cost, annual_benefit, implementation_months,
	effort, impact, risk, strategic_value,
	dependencies, skills_required, technology_required, soft_benefits, risk_factors,
	created_at, updated_at`

func (r *SQLiteInitiativeRepo) Create(ctx context.Context, in *domain.Initiative) error {
	query := `INSERT INTO initiatives (` + initiativeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		in.ID,
		in.Name,
		in.ProblemStatement,
		marshalList(in.KPIs),
		in.InitialCost,
		in.AnnualOperatingCost,
		in.AnnualBenefit,
		in.ImplementationMonths,
		string(in.Effort),
		string(in.Impact),
		string(in.Risk),
		in.StrategicValue,
		marshalList(in.Dependencies),
		marshalList(in.SkillsRequired),
		marshalList(in.TechnologyRequired),
		marshalList(in.SoftBenefits),
		marshalList(in.RiskFactors),
		in.CreatedAt.Format(time.RFC3339),
		in.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting initiative: %w", err)
	}
	return nil
}

func (r *SQLiteInitiativeRepo) GetByID(ctx context.Context, id string) (*domain.Initiative, error) {
	query := `SELECT ` + initiativeColumns + ` FROM initiatives WHERE id = ?`
	return r.scanInitiative(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteInitiativeRepo) GetByName(ctx context.Context, name string) (*domain.Initiative, error) {
	query := `SELECT ` + initiativeColumns + ` FROM initiatives WHERE name = ?`
	return r.scanInitiative(r.db.QueryRowContext(ctx, query, name))
}

// List returns all captured initiatives in capture order. Capture order is
// the pipeline's input order, so it must be stable.
func (r *SQLiteInitiativeRepo) List(ctx context.Context) ([]*domain.Initiative, error) {
	query := `SELECT ` + initiativeColumns + ` FROM initiatives ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing initiatives: %w", err)
	}
	defer rows.Close()

	var initiatives []*domain.Initiative
	for rows.Next() {
		in, err := r.scanInitiativeFromRows(rows)
		if err != nil {
			return nil, err
		}
		initiatives = append(initiatives, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating initiatives: %w", err)
	}
	return initiatives, nil
}

func (r *SQLiteInitiativeRepo) Update(ctx context.Context, in *domain.Initiative) error {
	query := `UPDATE initiatives SET
		name = ?, problem_statement = ?, kpis = ?,
		initial_cost = ?, annual_operating_cost = ?, annual_benefit = ?, implementation_months = ?,
		effort = ?, impact = ?, risk = ?, strategic_value = ?,
		dependencies = ?, skills_required = ?, technology_required = ?, soft_benefits = ?, risk_factors = ?,
		updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		in.Name,
		in.ProblemStatement,
		marshalList(in.KPIs),
		in.InitialCost,
		in.AnnualOperatingCost,
		in.AnnualBenefit,
		in.ImplementationMonths,
		string(in.Effort),
		string(in.Impact),
		string(in.Risk),
		in.StrategicValue,
		marshalList(in.Dependencies),
		marshalList(in.SkillsRequired),
		marshalList(in.TechnologyRequired),
		marshalList(in.SoftBenefits),
		marshalList(in.RiskFactors),
		in.UpdatedAt.Format(time.RFC3339),
		in.ID,
	)
	if err != nil {
		return fmt.Errorf("updating initiative: %w", err)
	}
	return nil
}

func (r *SQLiteInitiativeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM initiatives WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting initiative: %w", err)
	}
	return nil
}

func (r *SQLiteInitiativeRepo) scanInitiative(row *sql.Row) (*domain.Initiative, error) {
	var in domain.Initiative
	var effort, impact, risk string
	var kpis, deps, skills, tech, soft, riskFactors string
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&in.ID, &in.Name, &in.ProblemStatement, &kpis,
		&in.InitialCost, &in.AnnualOperatingCost, &in.AnnualBenefit, &in.ImplementationMonths,
		&effort, &impact, &risk, &in.StrategicValue,
		&deps, &skills, &tech, &soft, &riskFactors,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("initiative not found")
		}
		return nil, fmt.Errorf("scanning initiative: %w", err)
	}

	return r.hydrate(&in, effort, impact, risk, kpis, deps, skills, tech, soft, riskFactors, createdAtStr, updatedAtStr)
}

func (r *SQLiteInitiativeRepo) scanInitiativeFromRows(rows *sql.Rows) (*domain.Initiative, error) {
	var in domain.Initiative
	var effort, impact, risk string
	var kpis, deps, skills, tech, soft, riskFactors string
	var createdAtStr, updatedAtStr string

	err := rows.Scan(
		&in.ID, &in.Name, &in.ProblemStatement, &kpis,
		&in.InitialCost, &in.AnnualOperatingCost, &in.AnnualBenefit, &in.ImplementationMonths,
		&effort, &impact, &risk, &in.StrategicValue,
		&deps, &skills, &tech, &soft, &riskFactors,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning initiative row: %w", err)
	}

	return r.hydrate(&in, effort, impact, risk, kpis, deps, skills, tech, soft, riskFactors, createdAtStr, updatedAtStr)
}

func (r *SQLiteInitiativeRepo) hydrate(in *domain.Initiative,
	effort, impact, risk, kpis, deps, skills, tech, soft, riskFactors, createdAtStr, updatedAtStr string,
) (*domain.Initiative, error) {
	in.Effort = domain.EffortLevel(effort)
	in.Impact = domain.ImpactLevel(impact)
	in.Risk = domain.RiskLevel(risk)

	in.KPIs = unmarshalList(kpis)
	in.Dependencies = unmarshalList(deps)
	in.SkillsRequired = unmarshalList(skills)
	in.TechnologyRequired = unmarshalList(tech)
	in.SoftBenefits = unmarshalList(soft)
	in.RiskFactors = unmarshalList(riskFactors)

	var parseErr error
	in.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	in.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return in, nil
}
