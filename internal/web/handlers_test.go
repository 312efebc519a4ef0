package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/user/wispmon/internal/model"
	"github.com/user/wispmon/internal/storage"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	records []model.RouterRecord
	saveErr error
}

func (m *memStore) Save(record *model.RouterRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *memStore) GetAll() ([]model.RouterRecord, error) {
	return m.records, nil
}

func (m *memStore) GetByRouter(routerID string) ([]model.RouterRecord, error) {
	var out []model.RouterRecord
	for _, r := range m.records {
		if r.ID == routerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) Latest() ([]model.RouterRecord, error) {
	return storage.CollapseLatest(m.records), nil
}

const testToken = "test-api-key"

func testHandlers(store *memStore) *Handlers {
	return NewHandlers(store, nil, testToken, NewMetrics())
}

func doRequest(h *Handlers, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func telemetry(id string, status model.Status) model.RouterRecord {
	return model.RouterRecord{
		ID:        id,
		Name:      "Customer-" + id,
		Status:    status,
		Location:  "Downtown",
		Uptime:    "2 days, 14:32:15",
		Bandwidth: model.Bandwidth{Used: 65, Total: 100, Unit: "Mbps"},
	}
}

func TestIngestRequiresToken(t *testing.T) {
	h := testHandlers(&memStore{})

	rec := doRequest(h, http.MethodPost, "/api/router-data", "", telemetry("router-001", model.StatusOnline))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status %d, want 401", rec.Code)
	}

	rec = doRequest(h, http.MethodPost, "/api/router-data", "wrong-key", telemetry("router-001", model.StatusOnline))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status %d, want 401", rec.Code)
	}
}

func TestIngestStoresAndAcks(t *testing.T) {
	store := &memStore{}
	h := testHandlers(store)

	rec := doRequest(h, http.MethodPost, "/api/router-data", testToken, telemetry("router-001", model.StatusOnline))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}

	var ack model.IngestAck
	if err := json.NewDecoder(rec.Body).Decode(&ack); err != nil {
		t.Fatalf("decoding ack: %v", err)
	}
	if !ack.Success || ack.Receipt == "" || ack.ReceivedAt.IsZero() {
		t.Errorf("incomplete ack: %+v", ack)
	}

	if len(store.records) != 1 || store.records[0].ReceivedAt.IsZero() {
		t.Errorf("record not stored with receipt timestamp: %+v", store.records)
	}
}

func TestIngestRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name   string
		record model.RouterRecord
	}{
		{"missing id", model.RouterRecord{Name: "X", Status: model.StatusOnline, Bandwidth: model.Bandwidth{Total: 100}}},
		{"bad status", model.RouterRecord{ID: "r1", Name: "X", Status: "sideways", Bandwidth: model.Bandwidth{Total: 100}}},
		{"zero bandwidth total", model.RouterRecord{ID: "r1", Name: "X", Status: model.StatusOnline}},
	}
	for _, tt := range tests {
		h := testHandlers(&memStore{})
		rec := doRequest(h, http.MethodPost, "/api/router-data", testToken, tt.record)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", tt.name, rec.Code)
		}
	}
}

func TestIngestStoreFailure(t *testing.T) {
	h := testHandlers(&memStore{saveErr: errors.New("disk full")})

	rec := doRequest(h, http.MethodPost, "/api/router-data", testToken, telemetry("router-001", model.StatusOnline))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status %d, want 500", rec.Code)
	}
}

func TestGetAllAndByRouter(t *testing.T) {
	store := &memStore{records: []model.RouterRecord{
		telemetry("router-001", model.StatusOnline),
		telemetry("router-002", model.StatusOffline),
		telemetry("router-001", model.StatusWarning),
	}}
	h := testHandlers(store)

	rec := doRequest(h, http.MethodGet, "/api/router-data", testToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get all: status %d", rec.Code)
	}
	var all []model.RouterRecord
	json.NewDecoder(rec.Body).Decode(&all)
	if len(all) != 3 {
		t.Errorf("get all returned %d records", len(all))
	}

	rec = doRequest(h, http.MethodGet, "/api/router-data/router-001", testToken, nil)
	var filtered []model.RouterRecord
	json.NewDecoder(rec.Body).Decode(&filtered)
	if len(filtered) != 2 {
		t.Errorf("per-router query returned %d records, want 2", len(filtered))
	}

	rec = doRequest(h, http.MethodGet, "/api/router-data/unknown", testToken, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("unknown router: status %d, want 200 with empty list", rec.Code)
	}
	var empty []model.RouterRecord
	json.NewDecoder(rec.Body).Decode(&empty)
	if len(empty) != 0 {
		t.Errorf("unknown router returned %d records", len(empty))
	}
}

func TestSummaryCollapsesToLatest(t *testing.T) {
	store := &memStore{records: []model.RouterRecord{
		telemetry("router-001", model.StatusOnline),
		telemetry("router-002", model.StatusOnline),
		telemetry("router-001", model.StatusOffline), // supersedes the first report
	}}
	h := testHandlers(store)

	rec := doRequest(h, http.MethodGet, "/api/summary", testToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var summary model.FleetSummary
	json.NewDecoder(rec.Body).Decode(&summary)
	want := model.FleetSummary{Total: 2, Online: 1, Offline: 1}
	if summary != want {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
}

func TestActionEndpoints(t *testing.T) {
	store := &memStore{records: []model.RouterRecord{telemetry("router-001", model.StatusOnline)}}
	h := testHandlers(store)

	rec := doRequest(h, http.MethodPost, "/api/router-data/router-001/restart", testToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("restart: status %d", rec.Code)
	}
	var ack model.ActionAck
	json.NewDecoder(rec.Body).Decode(&ack)
	if !ack.Success || ack.Action != "restart" || ack.RouterID != "router-001" {
		t.Errorf("restart ack = %+v", ack)
	}

	rec = doRequest(h, http.MethodPost, "/api/router-data/ghost/disconnect", testToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown router action: status %d, want 404", rec.Code)
	}

	// A failed action must not alter the stored collection.
	if len(store.records) != 1 {
		t.Errorf("action changed stored records: %d", len(store.records))
	}
}

func TestHealthNeedsNoToken(t *testing.T) {
	h := testHandlers(&memStore{})

	rec := doRequest(h, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if body["status"] != "OK" || body["timestamp"] == "" {
		t.Errorf("health body = %v", body)
	}
}
