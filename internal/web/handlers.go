package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/user/wispmon/internal/model"
	"github.com/user/wispmon/internal/util"
	"github.com/user/wispmon/internal/view"
)

// Store is the slice of telemetry persistence the handlers need.
type Store interface {
	Save(record *model.RouterRecord) error
	GetAll() ([]model.RouterRecord, error)
	GetByRouter(routerID string) ([]model.RouterRecord, error)
	Latest() ([]model.RouterRecord, error)
}

// Backup receives a secondary copy of every accepted record.
type Backup interface {
	Append(record *model.RouterRecord) error
}

// Handlers contains the ingestion API handlers.
type Handlers struct {
	store    Store
	backup   Backup
	token    string
	metrics  *Metrics
	validate *validator.Validate
}

// NewHandlers creates new handlers. backup may be nil to disable the
// file side copy.
func NewHandlers(store Store, backup Backup, token string, metrics *Metrics) *Handlers {
	return &Handlers{
		store:    store,
		backup:   backup,
		token:    token,
		metrics:  metrics,
		validate: validator.New(),
	}
}

// Router builds the API route table.
func (h *Handlers) Router() *mux.Router {
	m := mux.NewRouter()
	m.HandleFunc("/api/router-data", h.requireToken(h.Ingest)).Methods("POST")
	m.HandleFunc("/api/router-data", h.requireToken(h.GetAll)).Methods("GET")
	m.HandleFunc("/api/router-data/{routerID}", h.requireToken(h.GetByRouter)).Methods("GET")
	m.HandleFunc("/api/router-data/{routerID}/restart", h.requireToken(h.Action("restart"))).Methods("POST")
	m.HandleFunc("/api/router-data/{routerID}/disconnect", h.requireToken(h.Action("disconnect"))).Methods("POST")
	m.HandleFunc("/api/summary", h.requireToken(h.Summary)).Methods("GET")
	m.HandleFunc("/health", h.Health).Methods("GET")
	return m
}

// Ingest accepts one telemetry record per call.
func (h *Handlers) Ingest(w http.ResponseWriter, r *http.Request) {
	var record model.RouterRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.metrics.RecordIngestError()
		writeError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(&record); err != nil {
		h.metrics.RecordIngestError()
		writeError(w, "invalid record: "+err.Error(), http.StatusBadRequest)
		return
	}

	record.ReceivedAt = time.Now().UTC()

	if err := h.store.Save(&record); err != nil {
		util.Error("failed to store telemetry for %s: %v", record.ID, err)
		writeError(w, "failed to store record", http.StatusInternalServerError)
		return
	}

	// Backup is best effort; a failed append never fails the ingest.
	if h.backup != nil {
		if err := h.backup.Append(&record); err != nil {
			util.Warn("backup append failed for %s: %v", record.ID, err)
		}
	}

	h.metrics.RecordIngest(record.Status)
	util.Info("received data from router: %s", record.ID)

	writeJSON(w, model.IngestAck{
		Success:    true,
		Message:    "Data received for router " + record.ID,
		Receipt:    uuid.NewString(),
		ReceivedAt: record.ReceivedAt,
	})
}

// GetAll returns the full accumulated collection.
func (h *Handlers) GetAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.GetAll()
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []model.RouterRecord{}
	}
	writeJSON(w, records)
}

// GetByRouter returns the records matching one router id.
func (h *Handlers) GetByRouter(w http.ResponseWriter, r *http.Request) {
	routerID := mux.Vars(r)["routerID"]

	records, err := h.store.GetByRouter(routerID)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []model.RouterRecord{}
	}
	writeJSON(w, records)
}

// Summary returns fleet counts over the latest-per-router snapshot.
func (h *Handlers) Summary(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.store.Latest()
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summary := view.Summarize(snapshot)
	h.metrics.SetFleet(summary)
	writeJSON(w, summary)
}

// Action acknowledges a restart/disconnect command for a router. The
// command dispatch to the device is handled out of band; a failure here
// never modifies stored telemetry.
func (h *Handlers) Action(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		routerID := mux.Vars(r)["routerID"]

		records, err := h.store.GetByRouter(routerID)
		if err != nil {
			writeError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if len(records) == 0 {
			writeError(w, "unknown router: "+routerID, http.StatusNotFound)
			return
		}

		util.Info("%s command queued for router: %s", action, routerID)
		writeJSON(w, model.ActionAck{
			Success:  true,
			Message:  action + " command sent to " + routerID,
			RouterID: routerID,
			Action:   action,
		})
	}
}

// Health is the liveness probe. No token required.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
