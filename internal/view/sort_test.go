package view

import (
	"testing"

	"github.com/user/wispmon/internal/model"
)

func TestUptimeSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2 days, 14:32:15", 2*86400 + 14*3600 + 32*60 + 15},
		{"0 days, 00:00:00", 0},
		{"14:32:15", 14*3600 + 32*60 + 15},
		{"1 day, 03:15:22", 86400 + 3*3600 + 15*60 + 22},
		{"3 hours 12 minutes", 3*3600 + 12*60},
		{"5 d", 0},            // unrecognized unit prefix contributes nothing
		{"2 hrs", 0},          // "hrs" does not prefix-match "hour"
		{"45 sec", 45},
		{"7 m", 0},            // "m" does not prefix-match "min"
		{"10 min", 600},
		{"garbage text", 0},
		{"", 0},
		{"up 2 days, 01:02:03", 2*86400 + 3600 + 2*60 + 3},
	}
	for _, tt := range tests {
		if got := UptimeSeconds(tt.in); got != tt.want {
			t.Errorf("UptimeSeconds(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestUptimeSecondsExactValue(t *testing.T) {
	if got := UptimeSeconds("2 days, 14:32:15"); got != 225135 {
		t.Fatalf("got %d, want 225135", got)
	}
}

func sortFleet() []model.RouterRecord {
	up := func(id, name string, status model.Status, location, uptime string, used float64) model.RouterRecord {
		r := router(id, name, status, location, used)
		r.Uptime = uptime
		return r
	}
	return []model.RouterRecord{
		up("r1", "charlie", model.StatusOffline, "Zone-B", "1 day, 00:00:00", 80),
		up("r2", "Alpha", model.StatusOnline, "zone-a", "3 days, 00:00:00", 20),
		up("r3", "bravo", model.StatusWarning, "Zone-C", "0 days, 02:00:00", 50),
	}
}

func TestSortByField(t *testing.T) {
	tests := []struct {
		field Field
		want  []string
	}{
		{FieldName, []string{"r2", "r3", "r1"}},      // alpha, bravo, charlie (case-folded)
		{FieldStatus, []string{"r2", "r3", "r1"}},    // online, warning, offline
		{FieldBandwidth, []string{"r2", "r3", "r1"}}, // 0.2, 0.5, 0.8
		{FieldUptime, []string{"r3", "r1", "r2"}},    // 2h, 1d, 3d
		{FieldLocation, []string{"r2", "r1", "r3"}},  // zone-a, Zone-B, Zone-C
	}
	for _, tt := range tests {
		got := SortRecords(sortFleet(), Sort{Field: tt.field})
		if !equalIDs(ids(got), tt.want) {
			t.Errorf("sort by %v: got %v, want %v", tt.field, ids(got), tt.want)
		}
	}
}

func TestSortDescendingIsReversePermutation(t *testing.T) {
	for _, field := range []Field{FieldName, FieldStatus, FieldBandwidth, FieldUptime, FieldLocation} {
		asc := SortRecords(sortFleet(), Sort{Field: field, Direction: Ascending})
		desc := SortRecords(sortFleet(), Sort{Field: field, Direction: Descending})
		for i := range asc {
			if asc[i].ID != desc[len(desc)-1-i].ID {
				t.Errorf("field %v: descending is not the reverse of ascending: %v vs %v",
					field, ids(asc), ids(desc))
				break
			}
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	s := Sort{Field: FieldBandwidth, Direction: Descending}
	once := SortRecords(sortFleet(), s)
	twice := SortRecords(once, s)
	if !equalIDs(ids(once), ids(twice)) {
		t.Errorf("re-sorting changed the order: %v vs %v", ids(once), ids(twice))
	}
}

func TestSortSelectToggleSemantics(t *testing.T) {
	s := Sort{Field: FieldName, Direction: Ascending}

	s = s.Select(FieldName)
	if s.Field != FieldName || s.Direction != Descending {
		t.Fatalf("re-selecting the same field should toggle to descending, got %+v", s)
	}

	s = s.Select(FieldName)
	if s.Direction != Ascending {
		t.Fatalf("toggling again should restore ascending, got %+v", s)
	}

	s = Sort{Field: FieldName, Direction: Descending}
	s = s.Select(FieldUptime)
	if s.Field != FieldUptime || s.Direction != Ascending {
		t.Fatalf("selecting a new field should reset to ascending, got %+v", s)
	}
}

func TestCompareTriState(t *testing.T) {
	a := router("a", "Alpha", model.StatusOnline, "X", 10)
	b := router("b", "Beta", model.StatusOnline, "X", 10)

	if c := Compare(a, b, Sort{Field: FieldName}); c >= 0 {
		t.Errorf("Alpha vs Beta ascending: got %d, want negative", c)
	}
	if c := Compare(a, b, Sort{Field: FieldName, Direction: Descending}); c <= 0 {
		t.Errorf("Alpha vs Beta descending: got %d, want positive", c)
	}
	if c := Compare(a, a, Sort{Field: FieldName}); c != 0 {
		t.Errorf("record vs itself: got %d, want 0", c)
	}
}
