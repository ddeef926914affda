// Package canvas assembles pipeline outputs into the roadmap canvas
// sections. Assembly is pure: no I/O and no serialization, callers decide
// how to render or export the result.
package canvas

import (
	"time"

	"github.com/dmaselli/roicanvas/internal/domain"
)

const (
	DefaultTitle = "AI ROI & Roadmap Canvas"
	Version      = "1.0"
	creditLine   = "Generated by roicanvas"
)

// Meta carries the organization context that cannot be derived from the
// initiative records themselves.
type Meta struct {
	Organization   string
	DesignedBy     string
	DesignedFor    string
	PrimaryGoal    string
	StrategicFocus []string
	Date           time.Time
}

type Header struct {
	Title        string    `json:"canvas_title"`
	Organization string    `json:"organization_name"`
	DesignedBy   string    `json:"designed_by"`
	DesignedFor  string    `json:"designed_for"`
	Date         time.Time `json:"date"`
	Version      string    `json:"version"`
}

type Objectives struct {
	PrimaryGoal    string   `json:"primary_goal"`
	StrategicFocus []string `json:"strategic_focus"`
}

type Inputs struct {
	Resources       []string `json:"resources"`
	Personnel       []string `json:"personnel"`
	ExternalSupport []string `json:"external_support"`
}

// Impacts aggregates the hard financial outcomes of the funded set plus the
// qualitative benefits collected across all initiatives.
type Impacts struct {
	TotalThreeYearBenefit float64  `json:"total_three_year_benefit"`
	TotalNPV              float64  `json:"total_npv"`
	AverageROIPercent     float64  `json:"average_roi_percent"`
	SoftBenefits          []string `json:"soft_benefits"`
}

type TimelineRow struct {
	Initiative string         `json:"initiative"`
	Horizon    domain.Horizon `json:"horizon"`
	StartDate  time.Time      `json:"start_date"`
	EndDate    time.Time      `json:"end_date"`
	Milestones []string       `json:"milestones"`
}

type Risks struct {
	Risks       []string `json:"risks"`
	Mitigations []string `json:"mitigations"`
}

type Capabilities struct {
	SkillsNeeded []string `json:"skills_needed"`
	Technology   []string `json:"technology"`
}

// Costs splits spend by horizon: near-term is the Q1 initial outlay,
// long-term is initial plus three years of operating cost for everything
// scheduled beyond Q1.
type Costs struct {
	NearTerm          float64 `json:"near_term"`
	LongTerm          float64 `json:"long_term"`
	AnnualMaintenance float64 `json:"annual_maintenance"`
}

type Benefits struct {
	NearTerm     float64  `json:"near_term"`
	LongTerm     float64  `json:"long_term"`
	SoftBenefits []string `json:"soft_benefits"`
}

type PortfolioROI struct {
	NearTermPercent   float64 `json:"near_term_roi_percent"`
	NearTermUndefined bool    `json:"near_term_roi_undefined"`
	LongTermPercent   float64 `json:"long_term_roi_percent"`
	LongTermUndefined bool    `json:"long_term_roi_undefined"`
	Note              string  `json:"portfolio_note"`
}

type Footer struct {
	CreditLine string `json:"credit_line"`
}

// Canvas is the complete assembled document.
type Canvas struct {
	Header       Header        `json:"header"`
	Objectives   Objectives    `json:"objectives"`
	Inputs       Inputs        `json:"inputs"`
	Impacts      Impacts       `json:"impacts"`
	Timeline     []TimelineRow `json:"timeline"`
	Risks        Risks         `json:"risks"`
	Capabilities Capabilities  `json:"capabilities"`
	Costs        Costs         `json:"costs"`
	Benefits     Benefits      `json:"benefits"`
	PortfolioROI PortfolioROI  `json:"portfolio_roi"`
	Footer       Footer        `json:"footer"`
}
