package view

import (
	"fmt"
	"time"
)

// Severity is a display-coloring bucket. Its thresholds differ from the
// filter bands on purpose: the filter's medium band is inclusive at 80
// while the display's high bucket starts strictly above 80, and 50%
// colors low while matching no filter band. The two conventions are
// intentional and kept separate.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// UsageSeverity buckets a bandwidth usage percentage for display.
func UsageSeverity(percent float64) Severity {
	switch {
	case percent > 80:
		return SeverityHigh
	case percent > 50:
		return SeverityMedium
	}
	return SeverityLow
}

// SignalBars maps a signal strength in dBm to a 0-4 bar count. A nil
// signal (not reported) is 0 bars and renders as "N/A".
func SignalBars(signal *int) int {
	if signal == nil {
		return 0
	}
	switch {
	case *signal >= -50:
		return 4
	case *signal >= -60:
		return 3
	case *signal >= -70:
		return 2
	case *signal >= -80:
		return 1
	}
	return 0
}

// FormatSignal renders a signal value for display.
func FormatSignal(signal *int) string {
	if signal == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d dBm", *signal)
}

// TimeAgo formats how long ago t was relative to now.
func TimeAgo(t, now time.Time) string {
	minutes := int(now.Sub(t).Minutes())
	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case minutes < 1440:
		return fmt.Sprintf("%dh ago", minutes/60)
	}
	return fmt.Sprintf("%dd ago", minutes/1440)
}
