package view

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/user/wispmon/internal/model"
)

// Field identifies a sortable column.
type Field int

const (
	FieldName Field = iota
	FieldStatus
	FieldBandwidth
	FieldUptime
	FieldLocation
)

// String returns the display label for the field.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldStatus:
		return "Status"
	case FieldBandwidth:
		return "Bandwidth"
	case FieldUptime:
		return "Uptime"
	case FieldLocation:
		return "Location"
	}
	return "Name"
}

// Direction is the sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Sort holds the current sort field and direction.
type Sort struct {
	Field     Field
	Direction Direction
}

// Select applies a sort request: re-selecting the current field toggles
// the direction, a new field starts ascending.
func (s Sort) Select(f Field) Sort {
	if s.Field == f {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return s
	}
	return Sort{Field: f, Direction: Ascending}
}

// statusRank orders statuses online < warning < offline for sorting.
func statusRank(s model.Status) int {
	switch s {
	case model.StatusOnline:
		return 0
	case model.StatusWarning:
		return 1
	case model.StatusOffline:
		return 2
	}
	return 3
}

// Compare orders two records under the given sort state. It returns a
// negative value when a sorts before b, positive when after, 0 on ties.
// Descending flips the sign uniformly.
func Compare(a, b model.RouterRecord, s Sort) int {
	var c int
	switch s.Field {
	case FieldStatus:
		c = compareInt(statusRank(a.Status), statusRank(b.Status))
	case FieldBandwidth:
		c = compareFloat(bandwidthRatio(a.Bandwidth), bandwidthRatio(b.Bandwidth))
	case FieldUptime:
		c = compareInt(UptimeSeconds(a.Uptime), UptimeSeconds(b.Uptime))
	case FieldLocation:
		c = compareFold(a.Location, b.Location)
	default:
		c = compareFold(a.Name, b.Name)
	}
	if s.Direction == Descending {
		c = -c
	}
	return c
}

// SortRecords returns a sorted copy of records. Tie order between equal
// records is whatever the underlying sort yields; it is not a contract.
func SortRecords(records []model.RouterRecord, s Sort) []model.RouterRecord {
	out := make([]model.RouterRecord, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool {
		return Compare(out[i], out[j], s) < 0
	})
	return out
}

func bandwidthRatio(b model.Bandwidth) float64 {
	if b.Total == 0 {
		return 0
	}
	return b.Used / b.Total
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

var clockPattern = regexp.MustCompile(`(\d{1,2}):(\d{2}):(\d{2})`)

// UptimeSeconds parses an uptime string like "2 days, 14:32:15" into total
// seconds. Tokens are scanned pairwise: an integer token followed by a
// unit token (day/hour/min/sec matched by prefix, case-insensitive) adds
// value*unit seconds; unrecognized units add nothing and non-integer
// tokens are skipped rather than treated as errors. An embedded HH:MM:SS
// clock adds its own seconds on top, so composite strings count both.
func UptimeSeconds(uptime string) int {
	total := 0

	tokens := strings.FieldsFunc(uptime, func(r rune) bool {
		return r == ',' || r == ' '
	})
	for i := 0; i < len(tokens); {
		n, err := strconv.Atoi(tokens[i])
		if err != nil {
			i++
			continue
		}
		if i+1 < len(tokens) {
			unit := strings.ToLower(tokens[i+1])
			switch {
			case strings.HasPrefix(unit, "day"):
				total += n * 86400
			case strings.HasPrefix(unit, "hour"):
				total += n * 3600
			case strings.HasPrefix(unit, "min"):
				total += n * 60
			case strings.HasPrefix(unit, "sec"):
				total += n
			}
		}
		i += 2
	}

	if m := clockPattern.FindStringSubmatch(uptime); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		total += hours*3600 + minutes*60 + seconds
	}

	return total
}
