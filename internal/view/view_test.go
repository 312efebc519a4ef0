package view

import (
	"testing"

	"github.com/user/wispmon/internal/model"
)

func TestSummarize(t *testing.T) {
	fleet := make([]model.RouterRecord, 0, 10)
	add := func(n int, status model.Status) {
		for i := 0; i < n; i++ {
			fleet = append(fleet, router("", "", status, "", 0))
		}
	}
	add(6, model.StatusOnline)
	add(2, model.StatusWarning)
	add(2, model.StatusOffline)

	got := Summarize(fleet)
	want := model.FleetSummary{Total: 10, Online: 6, Offline: 2}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}

func TestSummaryIgnoresFilter(t *testing.T) {
	v := New(10)
	v.Replace(sampleFleet())
	v.SetCriteria(Criteria{Status: model.StatusOffline})

	got := v.Summary()
	if got.Total != 5 || got.Online != 3 || got.Offline != 1 {
		t.Errorf("summary should cover the unfiltered fleet, got %+v", got)
	}
}

func TestReplaceKeepsCriteriaAndSortResetsPage(t *testing.T) {
	v := New(2)
	v.Replace(fleetOf(6))
	v.SetSort(FieldName)
	v.SetSort(FieldName) // toggle to descending
	v.SetCriteria(Criteria{Location: "downtown"})
	v.GoToPage(2)

	v.Replace(fleetOf(6))

	if v.Criteria().Location != "downtown" {
		t.Errorf("criteria lost across refresh: %+v", v.Criteria())
	}
	if s := v.Sort(); s.Field != FieldName || s.Direction != Descending {
		t.Errorf("sort state lost across refresh: %+v", s)
	}
	if v.Page().Current != 1 {
		t.Errorf("refresh should reset to page 1, got %d", v.Page().Current)
	}
}

func TestSetCriteriaResetsPage(t *testing.T) {
	v := New(10)
	v.Replace(fleetOf(25))
	v.GoToPage(3)

	v.SetCriteria(Criteria{Location: "downtown"})
	if v.Page().Current != 1 {
		t.Errorf("applying filters should reset to page 1, got %d", v.Page().Current)
	}
}

func TestSetSortKeepsPage(t *testing.T) {
	v := New(10)
	v.Replace(fleetOf(25))
	v.GoToPage(2)

	v.SetSort(FieldBandwidth)
	if v.Page().Current != 2 {
		t.Errorf("sorting should not move the page, got %d", v.Page().Current)
	}
}

func TestSetSortStateIsNotAToggle(t *testing.T) {
	fleet := []model.RouterRecord{
		router("b", "Beta", model.StatusOnline, "", 0),
		router("a", "Alpha", model.StatusOnline, "", 0),
	}

	// A fresh view already holds {FieldName, Ascending}; setting that
	// same state explicitly must not flip to descending.
	v := New(10)
	v.Replace(fleet)
	v.SetSortState(Sort{Field: FieldName, Direction: Ascending})

	if s := v.Sort(); s.Field != FieldName || s.Direction != Ascending {
		t.Fatalf("sort state = %+v, want {FieldName Ascending}", s)
	}
	if got := ids(v.Rows()); !equalIDs(got, []string{"a", "b"}) {
		t.Errorf("ascending rows = %v", got)
	}

	v.SetSortState(Sort{Field: FieldName, Direction: Descending})
	if got := ids(v.Rows()); !equalIDs(got, []string{"b", "a"}) {
		t.Errorf("descending rows = %v", got)
	}
}

func TestRowsFollowPipeline(t *testing.T) {
	v := New(2)
	v.Replace(sampleFleet())
	v.SetCriteria(Criteria{Status: model.StatusOnline})
	v.SetSort(FieldBandwidth) // ascending: r2 (32), r5 (45), r1 (65)

	if got := ids(v.Rows()); !equalIDs(got, []string{"r2", "r5"}) {
		t.Errorf("page 1 rows = %v", got)
	}
	v.GoToPage(2)
	if got := ids(v.Rows()); !equalIDs(got, []string{"r1"}) {
		t.Errorf("page 2 rows = %v", got)
	}

	meta := v.Pagination()
	if meta.TotalPages != 2 || !meta.HasPrev || meta.HasNext {
		t.Errorf("pagination metadata = %+v", meta)
	}
}

func TestRecordLookup(t *testing.T) {
	v := New(10)
	v.Replace(sampleFleet())

	if r, ok := v.Record("r3"); !ok || r.Name != "Gamma" {
		t.Errorf("Record(r3) = %+v, %v", r, ok)
	}
	if _, ok := v.Record("missing"); ok {
		t.Error("Record should miss on unknown id")
	}
}
