// Package view implements the filter → sort → paginate pipeline that
// turns a raw router telemetry snapshot into the windowed, ordered rows
// shown by a display layer. All stages are pure transforms over copies;
// the display layer only consumes Rows, Pagination and Summary.
package view

import "github.com/user/wispmon/internal/model"

// DefaultPageSize matches the dashboard's table height.
const DefaultPageSize = 10

// View holds the full record snapshot and the current filter, sort and
// page state, and keeps the derived filtered/sorted set up to date.
type View struct {
	records  []model.RouterRecord
	filtered []model.RouterRecord
	criteria Criteria
	sort     Sort
	page     Page
}

// New creates an empty view with the given page size. A non-positive
// size falls back to DefaultPageSize.
func New(pageSize int) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View{
		page: Page{Current: 1, Size: pageSize},
	}
}

// Replace swaps in a fresh snapshot wholesale, discarding the previous
// collection. Filter criteria and sort state survive the refresh; the
// current page resets to 1 because the filter is re-applied.
func (v *View) Replace(records []model.RouterRecord) {
	v.records = make([]model.RouterRecord, len(records))
	copy(v.records, records)
	v.apply()
}

// SetCriteria applies new filter criteria and resets to the first page.
func (v *View) SetCriteria(c Criteria) {
	v.criteria = c
	v.apply()
}

// Criteria returns the active filter criteria.
func (v *View) Criteria() Criteria {
	return v.criteria
}

// SetSort handles a sort request for f: re-selecting the current field
// toggles direction, a new field sorts ascending. The page is kept.
func (v *View) SetSort(f Field) {
	v.sort = v.sort.Select(f)
	v.filtered = SortRecords(v.filtered, v.sort)
}

// SetSortState sets field and direction directly, without the
// re-select toggle. Callers that map explicit flags or query params to
// a sort use this; interactive column clicks go through SetSort.
func (v *View) SetSortState(s Sort) {
	v.sort = s
	v.filtered = SortRecords(v.filtered, v.sort)
}

// Sort returns the active sort state.
func (v *View) Sort() Sort {
	return v.sort
}

// GoToPage moves to page p. Out-of-range requests are silently ignored.
func (v *View) GoToPage(p int) {
	if p < 1 || p > v.totalPages() {
		return
	}
	v.page.Current = p
}

// Page returns the current page state.
func (v *View) Page() Page {
	return v.page
}

// Rows returns the ordered records of the current page window.
func (v *View) Rows() []model.RouterRecord {
	return Window(v.filtered, v.page)
}

// FilteredLen returns the size of the filtered set.
func (v *View) FilteredLen() int {
	return len(v.filtered)
}

// Pagination returns the control metadata for the current page.
func (v *View) Pagination() Pagination {
	return Paginate(len(v.filtered), v.page)
}

// Summary aggregates over the full unfiltered snapshot.
func (v *View) Summary() model.FleetSummary {
	return Summarize(v.records)
}

// Record looks up a record in the full snapshot by id.
func (v *View) Record(id string) (model.RouterRecord, bool) {
	for _, r := range v.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.RouterRecord{}, false
}

func (v *View) apply() {
	v.filtered = SortRecords(Filter(v.records, v.criteria), v.sort)
	v.page.Current = 1
}

func (v *View) totalPages() int {
	return (len(v.filtered) + v.page.Size - 1) / v.page.Size
}
