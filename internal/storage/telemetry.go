package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/user/wispmon/internal/model"
)

// TelemetryStorage handles persistence of ingested router records. The
// table is append-only; every POST becomes a new row and the full record
// is kept as a JSON payload alongside a few indexed columns.
type TelemetryStorage struct {
	db *DB
}

// NewTelemetryStorage creates a new telemetry storage handler.
func NewTelemetryStorage(db *DB) *TelemetryStorage {
	return &TelemetryStorage{db: db}
}

// Save stores one telemetry record. ReceivedAt must already be set.
func (s *TelemetryStorage) Save(record *model.RouterRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	query := `INSERT INTO telemetry (router_id, name, status, location, payload, received_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	_, err = s.db.Exec(query,
		record.ID, record.Name, string(record.Status),
		record.Location, string(payload), record.ReceivedAt)
	if err != nil {
		return fmt.Errorf("failed to insert telemetry record: %w", err)
	}

	return nil
}

// GetAll returns every ingested record in arrival order.
func (s *TelemetryStorage) GetAll() ([]model.RouterRecord, error) {
	return s.query(`SELECT payload FROM telemetry ORDER BY id ASC`)
}

// GetByRouter returns the records for a single router id in arrival order.
func (s *TelemetryStorage) GetByRouter(routerID string) ([]model.RouterRecord, error) {
	return s.query(`SELECT payload FROM telemetry WHERE router_id = ? ORDER BY id ASC`, routerID)
}

// Latest returns the most recent record per router id, in first-arrival
// order of the routers. This is the dashboard's fleet snapshot: record
// ids are unique within it.
func (s *TelemetryStorage) Latest() ([]model.RouterRecord, error) {
	all, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	return CollapseLatest(all), nil
}

// Count returns the total number of stored records.
func (s *TelemetryStorage) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM telemetry").Scan(&count)
	return count, err
}

// CountSince returns the number of records received since a given time.
func (s *TelemetryStorage) CountSince(since time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM telemetry WHERE received_at >= ?", since).Scan(&count)
	return count, err
}

func (s *TelemetryStorage) query(query string, args ...interface{}) ([]model.RouterRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query telemetry: %w", err)
	}
	defer rows.Close()

	var records []model.RouterRecord
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan telemetry row: %w", err)
		}
		var record model.RouterRecord
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal telemetry payload: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// CollapseLatest reduces an append-only telemetry feed to the latest
// record per router id while preserving each router's first-seen order.
func CollapseLatest(records []model.RouterRecord) []model.RouterRecord {
	index := make(map[string]int)
	var out []model.RouterRecord
	for _, r := range records {
		if i, ok := index[r.ID]; ok {
			out[i] = r
			continue
		}
		index[r.ID] = len(out)
		out = append(out, r)
	}
	return out
}
