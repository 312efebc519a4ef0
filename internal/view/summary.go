package view

import "github.com/user/wispmon/internal/model"

// Summarize computes fleet-wide counts over the full, unfiltered
// collection. It is independent of filter, sort and page state.
func Summarize(records []model.RouterRecord) model.FleetSummary {
	s := model.FleetSummary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case model.StatusOnline:
			s.Online++
		case model.StatusOffline:
			s.Offline++
		}
	}
	return s
}
