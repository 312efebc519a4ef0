package view

import (
	"testing"

	"github.com/user/wispmon/internal/model"
)

func router(id, name string, status model.Status, location string, used float64) model.RouterRecord {
	return model.RouterRecord{
		ID:        id,
		Name:      name,
		Status:    status,
		Location:  location,
		Bandwidth: model.Bandwidth{Used: used, Total: 100, Unit: "Mbps"},
	}
}

func ids(records []model.RouterRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sampleFleet() []model.RouterRecord {
	return []model.RouterRecord{
		router("r1", "Alpha", model.StatusOnline, "Downtown", 65),
		router("r2", "Beta", model.StatusOnline, "Suburbs", 32),
		router("r3", "Gamma", model.StatusWarning, "Industrial", 88),
		router("r4", "Delta", model.StatusOffline, "Rural", 0),
		router("r5", "Epsilon", model.StatusOnline, "Downtown", 45),
	}
}

func TestFilterStatus(t *testing.T) {
	got := Filter(sampleFleet(), Criteria{Status: model.StatusOnline})
	if !equalIDs(ids(got), []string{"r1", "r2", "r5"}) {
		t.Errorf("status filter returned %v", ids(got))
	}
}

func TestFilterLocationCaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		location string
		want     []string
	}{
		{"downtown", []string{"r1", "r5"}},
		{"DOWN", []string{"r1", "r5"}},
		{"urb", []string{"r2"}},
		{"nowhere", []string{}},
		{"", []string{"r1", "r2", "r3", "r4", "r5"}},
	}
	for _, tt := range tests {
		got := Filter(sampleFleet(), Criteria{Location: tt.location})
		if !equalIDs(ids(got), tt.want) {
			t.Errorf("location %q: got %v, want %v", tt.location, ids(got), tt.want)
		}
	}
}

func TestFilterBandThresholds(t *testing.T) {
	fleet := []model.RouterRecord{
		router("a", "A", model.StatusOnline, "X", 10),
		router("b", "B", model.StatusOnline, "X", 49.9),
		router("c", "C", model.StatusOnline, "X", 50.1),
		router("d", "D", model.StatusOnline, "X", 80),
		router("e", "E", model.StatusOnline, "X", 80.1),
		router("f", "F", model.StatusOnline, "X", 95),
	}
	tests := []struct {
		band Band
		want []string
	}{
		{BandLow, []string{"a", "b"}},
		{BandMedium, []string{"c", "d"}},
		{BandHigh, []string{"e", "f"}},
	}
	for _, tt := range tests {
		got := Filter(fleet, Criteria{Band: tt.band})
		if !equalIDs(ids(got), tt.want) {
			t.Errorf("band %q: got %v, want %v", tt.band, ids(got), tt.want)
		}
	}
}

// A record at exactly 50% usage matches no band at all. The boundary is
// inherited from the reference behavior and must stay that way.
func TestFilterBandFiftyPercentMatchesNothing(t *testing.T) {
	fleet := []model.RouterRecord{router("x", "X", model.StatusOnline, "Y", 50)}
	for _, band := range []Band{BandLow, BandMedium, BandHigh} {
		if got := Filter(fleet, Criteria{Band: band}); len(got) != 0 {
			t.Errorf("band %q matched a record at exactly 50%%", band)
		}
	}
}

func TestFilterPredicatesAreANDed(t *testing.T) {
	got := Filter(sampleFleet(), Criteria{
		Status:   model.StatusOnline,
		Location: "downtown",
		Band:     BandMedium,
	})
	// Only r1 (online, Downtown, 65%) passes all three.
	if !equalIDs(ids(got), []string{"r1"}) {
		t.Errorf("combined filter returned %v", ids(got))
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	fleet := []model.RouterRecord{
		router("z", "Zeta", model.StatusOnline, "A", 10),
		router("m", "Mu", model.StatusOffline, "A", 10),
		router("a", "Alpha", model.StatusOnline, "A", 10),
		router("k", "Kappa", model.StatusOnline, "A", 10),
	}
	got := Filter(fleet, Criteria{Status: model.StatusOnline})
	if !equalIDs(ids(got), []string{"z", "a", "k"}) {
		t.Errorf("filter reordered records: %v", ids(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	fleet := sampleFleet()
	Filter(fleet, Criteria{Status: model.StatusOffline})
	if !equalIDs(ids(fleet), []string{"r1", "r2", "r3", "r4", "r5"}) {
		t.Errorf("input slice was modified: %v", ids(fleet))
	}
}
