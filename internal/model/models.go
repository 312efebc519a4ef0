// Package model defines core data structures for wispmon.
package model

import "time"

// Status is the reported health state of a router.
type Status string

const (
	StatusOnline  Status = "online"
	StatusWarning Status = "warning"
	StatusOffline Status = "offline"
)

// Bandwidth describes link usage as reported by a router.
type Bandwidth struct {
	Used  float64 `json:"used" validate:"gte=0"`
	Total float64 `json:"total" validate:"gt=0"`
	Unit  string  `json:"unit"`
}

// UsagePercent returns used/total as a percentage. Values above 100 are
// not clamped.
func (b Bandwidth) UsagePercent() float64 {
	if b.Total == 0 {
		return 0
	}
	return b.Used / b.Total * 100
}

// Wireless describes the wireless interface of a router. Signal is nil
// when the router did not report one (e.g. offline).
type Wireless struct {
	SSID    string `json:"ssid"`
	Signal  *int   `json:"signal"`
	Clients int    `json:"clients" validate:"gte=0"`
}

// SystemInfo is the diagnostic block shown in the detail view. It is
// passed through untouched; filtering and sorting never look at it.
type SystemInfo struct {
	Uptime     string  `json:"uptime"`
	Version    string  `json:"version"`
	BoardName  string  `json:"boardName"`
	CPULoad    float64 `json:"cpuLoad"`
	MemoryUsed float64 `json:"memoryUsed"`
}

// InterfaceStat is a single network interface counter snapshot.
type InterfaceStat struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	RX     string `json:"rx"`
	TX     string `json:"tx"`
	Status string `json:"status"`
}

// RouterRecord is one router's latest reported telemetry snapshot.
type RouterRecord struct {
	ID         string          `json:"id" validate:"required"`
	Name       string          `json:"name" validate:"required"`
	Status     Status          `json:"status" validate:"oneof=online warning offline"`
	Location   string          `json:"location"`
	Uptime     string          `json:"uptime"`
	Bandwidth  Bandwidth       `json:"bandwidth"`
	Wireless   Wireless        `json:"wireless"`
	LastSeen   time.Time       `json:"lastSeen"`
	System     SystemInfo      `json:"system"`
	Interfaces []InterfaceStat `json:"interfaces"`

	// ReceivedAt is assigned by the server when the record is ingested.
	ReceivedAt time.Time `json:"receivedAt,omitempty"`
}

// FleetSummary holds aggregate counts over the entire unfiltered fleet.
// Warning routers count toward Total only.
type FleetSummary struct {
	Total   int `json:"total"`
	Online  int `json:"online"`
	Offline int `json:"offline"`
}

// IngestAck acknowledges a stored telemetry record.
type IngestAck struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	Receipt    string    `json:"receipt"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// ActionAck acknowledges a router action command (restart/disconnect).
type ActionAck struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	RouterID string `json:"routerId"`
	Action   string `json:"action"`
}
