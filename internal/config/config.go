// Package config handles the ~/.roicanvas configuration file. Every value
// has a default, so a missing file is never an error. Zero means default:
// a field left out of the file — or explicitly set to zero — is backfilled
// with its default value, since zero is never a runnable setting for these
// fields. The one exception is min_roi_threshold, where zero is a
// meaningful threshold and is kept as written.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dmaselli/roicanvas/internal/finance"
	"github.com/dmaselli/roicanvas/internal/portfolio"
	"github.com/dmaselli/roicanvas/internal/roadmap"
)

const configFileName = "config.yaml"

// FinanceConfig tunes the discounting model.
type FinanceConfig struct {
	AnnualDiscountRate float64 `yaml:"annual_discount_rate"`
	AnalysisYears      int     `yaml:"analysis_years"`
}

// SelectionConfig supplies the default portfolio constraints. CLI flags
// override these per invocation.
type SelectionConfig struct {
	MinROIThreshold float64 `yaml:"min_roi_threshold"`
	BudgetLimit     float64 `yaml:"budget_limit"`
	MaxProjects     int     `yaml:"max_projects"`
}

// WeightsConfig sets the priority score composition. Weights must sum to 1.
type WeightsConfig struct {
	ROI          float64 `yaml:"roi"`
	NPV          float64 `yaml:"npv"`
	RiskAdjusted float64 `yaml:"risk_adjusted"`
	Payback      float64 `yaml:"payback"`
	Strategic    float64 `yaml:"strategic"`
}

// RoadmapConfig exposes the horizon-assignment thresholds.
type RoadmapConfig struct {
	Q1ScoreCutoff       float64 `yaml:"q1_score_cutoff"`
	Q1MaxMonths         int     `yaml:"q1_max_months"`
	Year1ScoreCutoff    float64 `yaml:"year1_score_cutoff"`
	Year3MonthsBoundary int     `yaml:"year3_months_boundary"`
}

// OrganizationConfig fills the canvas header and objectives sections.
type OrganizationConfig struct {
	Name           string   `yaml:"name"`
	DesignedBy     string   `yaml:"designed_by"`
	DesignedFor    string   `yaml:"designed_for"`
	PrimaryGoal    string   `yaml:"primary_goal"`
	StrategicFocus []string `yaml:"strategic_focus,omitempty"`
}

// Config models the full configuration file.
type Config struct {
	Finance      FinanceConfig      `yaml:"finance"`
	Selection    SelectionConfig    `yaml:"selection"`
	Weights      WeightsConfig      `yaml:"weights"`
	Roadmap      RoadmapConfig      `yaml:"roadmap"`
	Organization OrganizationConfig `yaml:"organization"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	fp := finance.DefaultPolicy()
	w := portfolio.DefaultWeights()
	rp := roadmap.DefaultPolicy()
	return &Config{
		Finance: FinanceConfig{
			AnnualDiscountRate: fp.AnnualDiscountRate,
			AnalysisYears:      fp.AnalysisYears,
		},
		Selection: SelectionConfig{
			MinROIThreshold: 0,
			BudgetLimit:     1000000,
			MaxProjects:     5,
		},
		Weights: WeightsConfig{
			ROI:          w.ROI,
			NPV:          w.NPV,
			RiskAdjusted: w.RiskAdjusted,
			Payback:      w.Payback,
			Strategic:    w.Strategic,
		},
		Roadmap: RoadmapConfig{
			Q1ScoreCutoff:       rp.Q1ScoreCutoff,
			Q1MaxMonths:         rp.Q1MaxMonths,
			Year1ScoreCutoff:    rp.Year1ScoreCutoff,
			Year3MonthsBoundary: rp.Year3MonthsBoundary,
		},
		Organization: OrganizationConfig{
			Name:        "My Organization",
			PrimaryGoal: "Maximize return on AI investment",
		},
	}
}

// DefaultPath returns ~/.roicanvas/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolving home directory: %w", err)
	}
	return filepath.Join(home, ".roicanvas", configFileName), nil
}

// Load reads the configuration file at path. A missing file yields the
// defaults; a present but invalid file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: ensure config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write config: %w", err)
	}
	return nil
}

// applyDefaults backfills fields a partial file left at zero. YAML cannot
// distinguish an omitted field from an explicit zero, so both follow the
// zero-means-default convention; min_roi_threshold stays untouched because
// zero is a valid threshold there.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Finance.AnnualDiscountRate == 0 {
		c.Finance.AnnualDiscountRate = d.Finance.AnnualDiscountRate
	}
	if c.Finance.AnalysisYears == 0 {
		c.Finance.AnalysisYears = d.Finance.AnalysisYears
	}
	if c.Selection.BudgetLimit == 0 {
		c.Selection.BudgetLimit = d.Selection.BudgetLimit
	}
	if c.Selection.MaxProjects == 0 {
		c.Selection.MaxProjects = d.Selection.MaxProjects
	}
	if c.Weights == (WeightsConfig{}) {
		c.Weights = d.Weights
	}
	if c.Roadmap.Q1ScoreCutoff == 0 {
		c.Roadmap.Q1ScoreCutoff = d.Roadmap.Q1ScoreCutoff
	}
	if c.Roadmap.Q1MaxMonths == 0 {
		c.Roadmap.Q1MaxMonths = d.Roadmap.Q1MaxMonths
	}
	if c.Roadmap.Year1ScoreCutoff == 0 {
		c.Roadmap.Year1ScoreCutoff = d.Roadmap.Year1ScoreCutoff
	}
	if c.Roadmap.Year3MonthsBoundary == 0 {
		c.Roadmap.Year3MonthsBoundary = d.Roadmap.Year3MonthsBoundary
	}
	if c.Organization.Name == "" {
		c.Organization.Name = d.Organization.Name
	}
	if c.Organization.PrimaryGoal == "" {
		c.Organization.PrimaryGoal = d.Organization.PrimaryGoal
	}
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Finance.AnnualDiscountRate < 0 {
		return fmt.Errorf("finance.annual_discount_rate must be >= 0")
	}
	if c.Finance.AnalysisYears <= 0 {
		return fmt.Errorf("finance.analysis_years must be > 0")
	}

	w := c.Weights
	for name, v := range map[string]float64{
		"roi": w.ROI, "npv": w.NPV, "risk_adjusted": w.RiskAdjusted,
		"payback": w.Payback, "strategic": w.Strategic,
	} {
		if v < 0 {
			return fmt.Errorf("weights.%s must be >= 0", name)
		}
	}
	sum := w.ROI + w.NPV + w.RiskAdjusted + w.Payback + w.Strategic
	if math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("weights must sum to 1, got %.4f", sum)
	}

	if c.Roadmap.Q1MaxMonths <= 0 {
		return fmt.Errorf("roadmap.q1_max_months must be > 0")
	}
	if c.Roadmap.Year3MonthsBoundary <= 0 {
		return fmt.Errorf("roadmap.year3_months_boundary must be > 0")
	}
	return nil
}

// FinancePolicy converts the finance section into a calculator policy.
func (c *Config) FinancePolicy() finance.Policy {
	p := finance.DefaultPolicy()
	p.AnnualDiscountRate = c.Finance.AnnualDiscountRate
	p.AnalysisYears = c.Finance.AnalysisYears
	return p
}

// ScoreWeights converts the weights section into scorer weights.
func (c *Config) ScoreWeights() portfolio.Weights {
	return portfolio.Weights{
		ROI:          c.Weights.ROI,
		NPV:          c.Weights.NPV,
		RiskAdjusted: c.Weights.RiskAdjusted,
		Payback:      c.Weights.Payback,
		Strategic:    c.Weights.Strategic,
	}
}

// PortfolioConfig converts the selection section into optimizer constraints.
func (c *Config) PortfolioConfig() portfolio.Config {
	return portfolio.Config{
		MinROIThreshold: c.Selection.MinROIThreshold,
		BudgetLimit:     c.Selection.BudgetLimit,
		MaxProjects:     c.Selection.MaxProjects,
	}
}

// RoadmapPolicy converts the roadmap section into a generator policy,
// keeping the default stagger schedule.
func (c *Config) RoadmapPolicy() roadmap.Policy {
	p := roadmap.DefaultPolicy()
	p.Q1ScoreCutoff = c.Roadmap.Q1ScoreCutoff
	p.Q1MaxMonths = c.Roadmap.Q1MaxMonths
	p.Year1ScoreCutoff = c.Roadmap.Year1ScoreCutoff
	p.Year3MonthsBoundary = c.Roadmap.Year3MonthsBoundary
	return p
}
