package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/dmaselli/roicanvas/internal/domain"
)

// captureAnswers holds the raw string answers from the capture form before
// conversion into a domain.Initiative.
type captureAnswers struct {
	Name          string
	Problem       string
	KPIs          string
	InitialCost   string
	AnnualCost    string
	AnnualBenefit string
	Months        string
	Effort        string
	Impact        string
	Risk          string
	Strategic     string
	Dependencies  string
	Skills        string
	Technology    string
	SoftBenefits  string
	RiskFactors   string
}

func newCaptureCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "capture",
		Short: "Capture an initiative through an interactive form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("capture requires an interactive terminal; use 'roicanvas initiative add' or 'roicanvas initiative import' instead")
			}

			answers := captureAnswers{
				Effort:    "Medium",
				Impact:    "Medium",
				Risk:      "Medium",
				Strategic: "50",
			}

			form := buildCaptureForm(&answers)
			if err := form.Run(); err != nil {
				return err
			}

			in, err := answers.toInitiative()
			if err != nil {
				return err
			}

			if err := app.Initiatives.Create(context.Background(), in); err != nil {
				return err
			}

			fmt.Printf("Captured initiative %s [%s]\n", in.Name, in.DisplayID())
			return nil
		},
	}
}

func buildCaptureForm(a *captureAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Initiative name").
				Placeholder("Customer Service Chatbot").
				Value(&a.Name).
				Validate(validateRequired),
			huh.NewText().
				Title("Problem statement").
				Placeholder("What business problem does this solve?").
				Value(&a.Problem),
			huh.NewInput().
				Title("KPIs (comma-separated)").
				Placeholder("Resolution time, CSAT").
				Value(&a.KPIs),
		),
		huh.NewGroup(
			moneyInput("Initial cost", "150000", &a.InitialCost),
			moneyInput("Annual operating cost", "50000", &a.AnnualCost),
			moneyInput("Annual benefit", "250000", &a.AnnualBenefit),
			huh.NewInput().
				Title("Implementation months").
				Placeholder("3").
				Value(&a.Months).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			levelSelect("Effort level", &a.Effort),
			levelSelect("Impact level", &a.Impact),
			levelSelect("Risk level", &a.Risk),
			huh.NewInput().
				Title("Strategic value (0-100, Enter for 50)").
				Value(&a.Strategic).
				Validate(validateScore),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Dependencies (comma-separated, optional)").
				Value(&a.Dependencies),
			huh.NewInput().
				Title("Skills required (comma-separated, optional)").
				Placeholder("ML engineering, Data analysis").
				Value(&a.Skills),
			huh.NewInput().
				Title("Technology required (comma-separated, optional)").
				Value(&a.Technology),
			huh.NewInput().
				Title("Soft benefits (comma-separated, optional)").
				Placeholder("Employee satisfaction").
				Value(&a.SoftBenefits),
			huh.NewInput().
				Title("Risk factors (comma-separated, optional)").
				Value(&a.RiskFactors),
		),
	).WithTheme(canvasHuhTheme()).WithShowHelp(false)
}

func (a *captureAnswers) toInitiative() (*domain.Initiative, error) {
	initialCost, err := strconv.ParseFloat(a.InitialCost, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid initial cost: %w", err)
	}
	annualCost, err := strconv.ParseFloat(a.AnnualCost, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid annual operating cost: %w", err)
	}
	annualBenefit, err := strconv.ParseFloat(a.AnnualBenefit, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid annual benefit: %w", err)
	}
	months, err := strconv.Atoi(a.Months)
	if err != nil {
		return nil, fmt.Errorf("invalid implementation months: %w", err)
	}

	strategic := 50.0
	if a.Strategic != "" {
		strategic, err = strconv.ParseFloat(a.Strategic, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid strategic value: %w", err)
		}
	}

	return &domain.Initiative{
		Name:                 strings.TrimSpace(a.Name),
		ProblemStatement:     strings.TrimSpace(a.Problem),
		KPIs:                 splitList(a.KPIs),
		InitialCost:          initialCost,
		AnnualOperatingCost:  annualCost,
		AnnualBenefit:        annualBenefit,
		ImplementationMonths: months,
		Effort:               domain.EffortLevel(a.Effort),
		Impact:               domain.ImpactLevel(a.Impact),
		Risk:                 domain.RiskLevel(a.Risk),
		StrategicValue:       strategic,
		Dependencies:         splitList(a.Dependencies),
		SkillsRequired:       splitList(a.Skills),
		TechnologyRequired:   splitList(a.Technology),
		SoftBenefits:         splitList(a.SoftBenefits),
		RiskFactors:          splitList(a.RiskFactors),
	}, nil
}

// splitList turns a comma-separated answer into a trimmed slice, dropping
// empty segments.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
