package view

import (
	"strings"

	"github.com/user/wispmon/internal/model"
)

// Band is a coarse bandwidth-usage bucket used by the filter.
type Band string

const (
	BandAny    Band = ""
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// Criteria restricts the visible fleet. A zero value for any field means
// "no constraint on this field".
type Criteria struct {
	Status   model.Status
	Location string
	Band     Band
}

// IsZero reports whether no constraint is active.
func (c Criteria) IsZero() bool {
	return c.Status == "" && c.Location == "" && c.Band == BandAny
}

// Filter returns the records that pass all three predicates, preserving
// their relative order. The input slice is never modified.
func Filter(records []model.RouterRecord, c Criteria) []model.RouterRecord {
	if c.IsZero() {
		out := make([]model.RouterRecord, len(records))
		copy(out, records)
		return out
	}

	location := strings.ToLower(c.Location)
	out := make([]model.RouterRecord, 0, len(records))
	for _, r := range records {
		if c.Status != "" && r.Status != c.Status {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(r.Location), location) {
			continue
		}
		if c.Band != BandAny && !matchBand(r.Bandwidth.UsagePercent(), c.Band) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchBand applies the search-band thresholds. Exactly 50% matches no
// band; the boundary is inherited from the reference behavior and kept
// as-is. Display coloring uses different thresholds, see UsageSeverity.
func matchBand(percent float64, band Band) bool {
	switch band {
	case BandHigh:
		return percent > 80
	case BandMedium:
		return percent > 50 && percent <= 80
	case BandLow:
		return percent < 50
	}
	return true
}
