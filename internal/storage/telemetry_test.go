package storage

import (
	"testing"

	"github.com/user/wispmon/internal/model"
)

func TestCollapseLatestKeepsLastReportPerRouter(t *testing.T) {
	feed := []model.RouterRecord{
		{ID: "router-001", Status: model.StatusOnline},
		{ID: "router-002", Status: model.StatusOnline},
		{ID: "router-001", Status: model.StatusWarning},
		{ID: "router-003", Status: model.StatusOffline},
		{ID: "router-001", Status: model.StatusOffline},
	}

	out := CollapseLatest(feed)

	if len(out) != 3 {
		t.Fatalf("collapsed to %d records, want 3", len(out))
	}

	// First-seen order is preserved.
	wantIDs := []string{"router-001", "router-002", "router-003"}
	for i, id := range wantIDs {
		if out[i].ID != id {
			t.Errorf("out[%d].ID = %q, want %q", i, out[i].ID, id)
		}
	}

	// The newest report wins.
	if out[0].Status != model.StatusOffline {
		t.Errorf("router-001 status = %q, want offline", out[0].Status)
	}
}

func TestCollapseLatestEmpty(t *testing.T) {
	if out := CollapseLatest(nil); len(out) != 0 {
		t.Errorf("CollapseLatest(nil) = %v, want empty", out)
	}
}
