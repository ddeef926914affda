package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmaselli/roicanvas/internal/cli/formatter"
	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/dmaselli/roicanvas/internal/finance"
)

func newInitiativeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initiative",
		Short: "Manage captured initiatives",
	}

	cmd.AddCommand(
		newInitiativeAddCmd(app),
		newInitiativeListCmd(app),
		newInitiativeInspectCmd(app),
		newInitiativeUpdateCmd(app),
		newInitiativeRemoveCmd(app),
		newInitiativeImportCmd(app),
	)

	return cmd
}

// initiativeFlags binds the full set of initiative fields to a command so
// add and update share one definition.
type initiativeFlags struct {
	name          string
	problem       string
	kpis          []string
	initialCost   float64
	annualOpex    float64
	annualBenefit float64
	months        int
	effort        string
	impact        string
	risk          string
	strategic     float64
	dependencies  []string
	skills        []string
	technology    []string
	softBenefits  []string
	riskFactors   []string
}

func (f *initiativeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Initiative name")
	cmd.Flags().StringVar(&f.problem, "problem", "", "Problem statement")
	cmd.Flags().StringSliceVar(&f.kpis, "kpi", nil, "KPI to track (repeatable)")
	cmd.Flags().Float64Var(&f.initialCost, "initial-cost", 0, "One-time implementation cost")
	cmd.Flags().Float64Var(&f.annualOpex, "annual-cost", 0, "Annual operating cost")
	cmd.Flags().Float64Var(&f.annualBenefit, "annual-benefit", 0, "Annual hard benefit")
	cmd.Flags().IntVar(&f.months, "months", 0, "Implementation months")
	cmd.Flags().StringVar(&f.effort, "effort", "Medium", "Effort level (Low, Medium, High)")
	cmd.Flags().StringVar(&f.impact, "impact", "Medium", "Impact level (Low, Medium, High)")
	cmd.Flags().StringVar(&f.risk, "risk", "Medium", "Risk level (Low, Medium, High)")
	cmd.Flags().Float64Var(&f.strategic, "strategic", 50, "Strategic value (0-100)")
	cmd.Flags().StringSliceVar(&f.dependencies, "dependency", nil, "Dependency (repeatable)")
	cmd.Flags().StringSliceVar(&f.skills, "skill", nil, "Required skill (repeatable)")
	cmd.Flags().StringSliceVar(&f.technology, "technology", nil, "Required technology (repeatable)")
	cmd.Flags().StringSliceVar(&f.softBenefits, "soft-benefit", nil, "Soft benefit (repeatable)")
	cmd.Flags().StringSliceVar(&f.riskFactors, "risk-factor", nil, "Risk factor (repeatable)")
}

func (f *initiativeFlags) apply(in *domain.Initiative) {
	in.Name = f.name
	in.ProblemStatement = f.problem
	in.KPIs = f.kpis
	in.InitialCost = f.initialCost
	in.AnnualOperatingCost = f.annualOpex
	in.AnnualBenefit = f.annualBenefit
	in.ImplementationMonths = f.months
	in.Effort = domain.EffortLevel(f.effort)
	in.Impact = domain.ImpactLevel(f.impact)
	in.Risk = domain.RiskLevel(f.risk)
	in.StrategicValue = f.strategic
	in.Dependencies = f.dependencies
	in.SkillsRequired = f.skills
	in.TechnologyRequired = f.technology
	in.SoftBenefits = f.softBenefits
	in.RiskFactors = f.riskFactors
}

func newInitiativeAddCmd(app *App) *cobra.Command {
	var flags initiativeFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an initiative from flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in domain.Initiative
			flags.apply(&in)

			if err := app.Initiatives.Create(context.Background(), &in); err != nil {
				return err
			}

			fmt.Printf("Captured initiative %s [%s]\n", in.Name, in.DisplayID())
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("initial-cost")
	_ = cmd.MarkFlagRequired("annual-benefit")
	_ = cmd.MarkFlagRequired("months")

	return cmd
}

func newInitiativeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List captured initiatives",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Initiatives.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatInitiativeList(list))
			return nil
		},
	}
}

func newInitiativeInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id|name>",
		Short: "Show one initiative with its financial metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := app.Initiatives.Resolve(context.Background(), args[0])
			if err != nil {
				return err
			}

			m := finance.Compute(app.Config.FinancePolicy(), *in)
			fmt.Println(formatter.FormatInitiativeInspect(in, m))
			return nil
		},
	}
}

func newInitiativeUpdateCmd(app *App) *cobra.Command {
	var flags initiativeFlags

	cmd := &cobra.Command{
		Use:   "update <id|name>",
		Short: "Update fields of an initiative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			in, err := app.Initiatives.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			// Only flags the user set are applied.
			applyChanged(cmd, &flags, in)

			if err := app.Initiatives.Update(ctx, in); err != nil {
				return err
			}

			fmt.Printf("Updated initiative %s [%s]\n", in.Name, in.DisplayID())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func applyChanged(cmd *cobra.Command, f *initiativeFlags, in *domain.Initiative) {
	set := func(name string) bool { return cmd.Flags().Changed(name) }

	if set("name") {
		in.Name = f.name
	}
	if set("problem") {
		in.ProblemStatement = f.problem
	}
	if set("kpi") {
		in.KPIs = f.kpis
	}
	if set("initial-cost") {
		in.InitialCost = f.initialCost
	}
	if set("annual-cost") {
		in.AnnualOperatingCost = f.annualOpex
	}
	if set("annual-benefit") {
		in.AnnualBenefit = f.annualBenefit
	}
	if set("months") {
		in.ImplementationMonths = f.months
	}
	if set("effort") {
		in.Effort = domain.EffortLevel(f.effort)
	}
	if set("impact") {
		in.Impact = domain.ImpactLevel(f.impact)
	}
	if set("risk") {
		in.Risk = domain.RiskLevel(f.risk)
	}
	if set("strategic") {
		in.StrategicValue = f.strategic
	}
	if set("dependency") {
		in.Dependencies = f.dependencies
	}
	if set("skill") {
		in.SkillsRequired = f.skills
	}
	if set("technology") {
		in.TechnologyRequired = f.technology
	}
	if set("soft-benefit") {
		in.SoftBenefits = f.softBenefits
	}
	if set("risk-factor") {
		in.RiskFactors = f.riskFactors
	}
}

func newInitiativeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id|name>",
		Short: "Remove an initiative from the workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			in, err := app.Initiatives.Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Initiatives.Delete(ctx, in.ID); err != nil {
				return err
			}
			fmt.Printf("Removed initiative %s [%s]\n", in.Name, in.DisplayID())
			return nil
		},
	}
}

func newInitiativeImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import a JSON batch of initiatives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, validationErrs, err := app.Initiatives.ImportFile(context.Background(), args[0])
			if len(validationErrs) > 0 {
				var b strings.Builder
				for _, e := range validationErrs {
					fmt.Fprintf(&b, "  - %v\n", e)
				}
				return fmt.Errorf("%w\n%s", err, strings.TrimRight(b.String(), "\n"))
			}
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d initiative(s)\n", count)
			return nil
		},
	}
}
