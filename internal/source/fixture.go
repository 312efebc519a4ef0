package source

import (
	"context"
	"time"

	"github.com/user/wispmon/internal/model"
)

// FixtureSource serves a built-in sample fleet, for demos and for
// running the dashboard without an ingestion server.
type FixtureSource struct {
	// Delay simulates network latency on Fetch.
	Delay time.Duration
}

// Fetch returns the sample fleet.
func (s *FixtureSource) Fetch(ctx context.Context) ([]model.RouterRecord, error) {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return SampleFleet(time.Now()), nil
}

// SendAction pretends the command was dispatched.
func (s *FixtureSource) SendAction(ctx context.Context, routerID, action string) error {
	return nil
}

func signal(v int) *int { return &v }

// SampleFleet returns ten sample routers with lastSeen offsets relative
// to now.
func SampleFleet(now time.Time) []model.RouterRecord {
	return []model.RouterRecord{
		{
			ID: "router-001", Name: "Customer-Alpha-001", Status: model.StatusOnline,
			Location: "Downtown", Uptime: "2 days, 14:32:15",
			Bandwidth: model.Bandwidth{Used: 65, Total: 100, Unit: "Mbps"},
			Wireless:  model.Wireless{SSID: "Alpha-WiFi", Signal: signal(-45), Clients: 12},
			LastSeen:  now.Add(-5 * time.Minute),
			System: model.SystemInfo{
				Uptime: "2 days, 14:32:15", Version: "7.12", BoardName: "hAP ac²",
				CPULoad: 25, MemoryUsed: 45,
			},
			Interfaces: []model.InterfaceStat{
				{Name: "ether1", Type: "ethernet", RX: "1.2GB", TX: "850MB", Status: "up"},
				{Name: "wlan1", Type: "wireless", RX: "800MB", TX: "600MB", Status: "up"},
			},
		},
		{
			ID: "router-002", Name: "Customer-Beta-002", Status: model.StatusOnline,
			Location: "Suburbs", Uptime: "5 days, 08:21:43",
			Bandwidth: model.Bandwidth{Used: 32, Total: 100, Unit: "Mbps"},
			Wireless:  model.Wireless{SSID: "Beta-WiFi", Signal: signal(-52), Clients: 8},
			LastSeen:  now.Add(-12 * time.Minute),
			System: model.SystemInfo{
				Uptime: "5 days, 08:21:43", Version: "7.11", BoardName: "hAP lite",
				CPULoad: 18, MemoryUsed: 32,
			},
			Interfaces: []model.InterfaceStat{
				{Name: "ether1", Type: "ethernet", RX: "800MB", TX: "450MB", Status: "up"},
				{Name: "wlan1", Type: "wireless", RX: "600MB", TX: "300MB", Status: "up"},
			},
		},
		{
			ID: "router-003", Name: "Customer-Gamma-003", Status: model.StatusWarning,
			Location: "Industrial", Uptime: "1 day, 03:15:22",
			Bandwidth: model.Bandwidth{Used: 88, Total: 100, Unit: "Mbps"},
			Wireless:  model.Wireless{SSID: "Gamma-WiFi", Signal: signal(-68), Clients: 24},
			LastSeen:  now.Add(-25 * time.Minute),
			System: model.SystemInfo{
				Uptime: "1 day, 03:15:22", Version: "7.10", BoardName: "hAP ax",
				CPULoad: 78, MemoryUsed: 82,
			},
			Interfaces: []model.InterfaceStat{
				{Name: "ether1", Type: "ethernet", RX: "2.1GB", TX: "1.8GB", Status: "up"},
				{Name: "wlan1", Type: "wireless", RX: "1.8GB", TX: "1.5GB", Status: "up"},
			},
		},
		{
			ID: "router-004", Name: "Customer-Delta-004", Status: model.StatusOffline,
			Location: "Rural", Uptime: "0 days, 00:00:00",
			Bandwidth: model.Bandwidth{Used: 0, Total: 100, Unit: "Mbps"},
			Wireless:  model.Wireless{SSID: "Delta-WiFi", Signal: nil, Clients: 0},
			LastSeen:  now.Add(-3 * time.Hour),
			System: model.SystemInfo{
				Uptime: "0 days, 00:00:00", Version: "7.12", BoardName: "hAP mini",
			},
			Interfaces: []model.InterfaceStat{},
		},
		{
			ID: "router-005", Name: "Customer-Epsilon-005", Status: model.StatusOnline,
			Location: "Downtown", Uptime: "7 days, 12:45:30",
			Bandwidth: model.Bandwidth{Used: 45, Total: 100, Unit: "Mbps"},
			Wireless:  model.Wireless{SSID: "Epsilon-WiFi", Signal: signal(-42), Clients: 15},
			LastSeen:  now.Add(-3 * time.Minute),
			System: model.SystemInfo{
				Uptime: "7 days, 12:45:30", Version: "7.12", BoardName: "hAP ac³",
				CPULoad: 32, MemoryUsed: 38,
			},
			Interfaces: []model.InterfaceStat{
				{Name: "ether1", Type: "ethernet", RX: "1.5GB", TX: "900MB", Status: "up"},
				{Name: "wlan1", Type: "wireless", RX: "1.0GB", TX: "700MB", Status: "up"},
			},
		},
		{
			ID: "router-006", Name: "Customer-Zeta-006", Status: model.StatusOnline,
			Location: "Suburbs", Uptime: "3 days, 09:18:07",
			Bandwidth: model.Bandwidth{Used: 72, Total: 100, Unit: "Mbps"},
			Wireless:  model.Wireless{SSID: "Zeta-WiFi", Signal: signal(-55), Clients: 18},
			LastSeen:  now.Add(-8 * time.Minute),
			System: model.SystemInfo{
				Uptime: "3 days, 09:18:07", Version: "7.11", BoardName: "hAP ac²",
				CPULoad: 65, MemoryUsed: 58,
			},
			Interfaces: []model.InterfaceStat{
				{Name: "ether1", Type: "ethernet", RX: "1.8GB", TX: "1.2GB", Status: "up"},
				{Name: "wlan1", Type: "wireless", RX: "1.5GB", TX: "950MB", Status: "up"},
			},
		},
		{
			ID: "router-007", Name: "Customer-Theta-007", Status: model.StatusWarning,
			Location: "Downtown", Uptime: "1 day, 15:30:45",
			Bandwidth: model.Bandwidth{Used: 92, Total: 100, Unit: "Mbps"},
			Wireless:  model.Wireless{SSID: "Theta-WiFi", Signal: signal(-70), Clients: 28},
			LastSeen:  now.Add(-18 * time.Minute),
			System: model.SystemInfo{
				Uptime: "1 day, 15:30:45", Version: "7.10", BoardName: "hAP ax",
				CPULoad: 85, MemoryUsed: 88,
			},
			Interfaces: []model.InterfaceStat{
				{Name: "ether1", Type: "ethernet", RX: "2.5GB", TX: "2.0GB", Status: "up"},
				{Name: "wlan1", Type: "wireless", RX: "2.2GB", TX: "1.8GB", Status: "up"},
			},
		},
		{
			ID: "router-008", Name: "Customer-Iota-008", Status: model.StatusOnline,
			Location: "Rural", Uptime: "4 days, 22:10:15",
			Bandwidth: model.Bandwidth{Used: 28, Total: 100, Unit: "Mbps"},
			Wireless:  model.Wireless{SSID: "Iota-WiFi", Signal: signal(-48), Clients: 6},
			LastSeen:  now.Add(-7 * time.Minute),
			System: model.SystemInfo{
				Uptime: "4 days, 22:10:15", Version: "7.12", BoardName: "hAP mini",
				CPULoad: 22, MemoryUsed: 28,
			},
			Interfaces: []model.InterfaceStat{
				{Name: "ether1", Type: "ethernet", RX: "750MB", TX: "400MB", Status: "up"},
				{Name: "wlan1", Type: "wireless", RX: "600MB", TX: "300MB", Status: "up"},
			},
		},
		{
			ID: "router-009", Name: "Customer-Kappa-009", Status: model.StatusOnline,
			Location: "Industrial", Uptime: "6 days, 01:45:20",
			Bandwidth: model.Bandwidth{Used: 55, Total: 100, Unit: "Mbps"},
			Wireless:  model.Wireless{SSID: "Kappa-WiFi", Signal: signal(-50), Clients: 20},
			LastSeen:  now.Add(-15 * time.Minute),
			System: model.SystemInfo{
				Uptime: "6 days, 01:45:20", Version: "7.11", BoardName: "hAP ac²",
				CPULoad: 42, MemoryUsed: 45,
			},
			Interfaces: []model.InterfaceStat{
				{Name: "ether1", Type: "ethernet", RX: "1.3GB", TX: "950MB", Status: "up"},
				{Name: "wlan1", Type: "wireless", RX: "1.0GB", TX: "800MB", Status: "up"},
			},
		},
		{
			ID: "router-010", Name: "Customer-Lambda-010", Status: model.StatusOffline,
			Location: "Suburbs", Uptime: "0 days, 00:00:00",
			Bandwidth: model.Bandwidth{Used: 0, Total: 100, Unit: "Mbps"},
			Wireless:  model.Wireless{SSID: "Lambda-WiFi", Signal: nil, Clients: 0},
			LastSeen:  now.Add(-4 * time.Hour),
			System: model.SystemInfo{
				Uptime: "0 days, 00:00:00", Version: "7.10", BoardName: "hAP lite",
			},
			Interfaces: []model.InterfaceStat{},
		},
	}
}
