package formatter

import (
	"testing"
	"time"

	"github.com/dmaselli/roicanvas/internal/finance"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"millions", 1250000, "$1.25M"},
		{"thousands", 12300, "$12.3K"},
		{"small", 45, "$45.00"},
		{"zero", 0, "$0.00"},
		{"negative thousands", -50000, "$-50.0K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.input))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "42.5%", Percent(42.5))
	assert.Equal(t, "-10.0%", Percent(-10))
}

func TestROI(t *testing.T) {
	assert.Contains(t, ROI(finance.Metrics{ROIPercent: 150}), "150.0%")
	assert.Contains(t, ROI(finance.Metrics{ROIUndefined: true}), "n/a")
}

func TestPayback(t *testing.T) {
	assert.Contains(t, Payback(finance.Metrics{PaybackMonths: 22}), "22 mo")
	assert.Contains(t, Payback(finance.Metrics{PaybackNever: true}), "Never")
}

func TestDates(t *testing.T) {
	d := time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Apr 2026", Date(d))
	assert.Equal(t, "2026-04-15", FullDate(d))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "VALUE"},
		[][]string{{"alpha", "1"}, {"beta", "22"}},
	)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
	assert.Contains(t, out, "─")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
