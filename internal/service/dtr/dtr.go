// Package dtr builds Daily Time Record sheets from raw attendance events.
// One record per calendar day, AM/PM arrival and departure plus total worked
// hours. Pure computation: the repository fetches, the controller renders.
package dtr

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"hrmis/backend/foundation/web"

	"github.com/pkg/errors"
)

// Periods of a month, matching the period selector on the client.
const (
	PeriodFirstHalf  = 0 // days 1-15
	PeriodSecondHalf = 1 // day 16 to month end
	PeriodWholeMonth = 2
)

// Event is one raw check-in/check-out log row, already filtered to a single
// employee and month by the repository.
type Event struct {
	Day   int    // day of month
	Time  string // HH:MM:SS, 24-hour
	State string // free-form label, e.g. "check in" / "check out"
}

// DayRecord is one DTR row. Time fields are HH:MM or empty when no matching
// event occurred; TotalHours is a single-decimal string, empty when no
// complete in/out pair exists (a computed zero also renders empty).
type DayRecord struct {
	Day        int    `json:"day"`
	AMIn       string `json:"am_in"`
	AMOut      string `json:"am_out"`
	PMIn       string `json:"pm_in"`
	PMOut      string `json:"pm_out"`
	TotalHours string `json:"total_hours"`
}

// Aggregate turns a flat event list into one DayRecord per day in
// [startDay, endDay] inclusive, in ascending day order. Days without events
// yield a record with every field empty. Events whose day falls outside the
// range are ignored. The input slice is never mutated.
func Aggregate(events []Event, startDay, endDay int) []DayRecord {
	byDay := make(map[int][]Event)
	for _, e := range events {
		byDay[e.Day] = append(byDay[e.Day], e)
	}

	records := make([]DayRecord, 0, endDay-startDay+1)
	for day := startDay; day <= endDay; day++ {
		records = append(records, aggregateDay(day, byDay[day]))
	}

	return records
}

func aggregateDay(day int, events []Event) DayRecord {
	record := DayRecord{Day: day}

	// Fixed-width HH:MM:SS makes the lexicographic sort chronological.
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	var am, pm []Event
	for _, e := range sorted {
		if _, ok := eventHour(e.Time); !ok {
			// Unparseable time: the event cannot be bucketed, drop it.
			continue
		}
		if isMorning(e.Time) {
			am = append(am, e)
		} else {
			pm = append(pm, e)
		}
	}

	record.AMIn, record.AMOut = walkHalf(am)
	record.PMIn, record.PMOut = walkHalf(pm)

	total := pairHours(record.AMIn, record.AMOut) + pairHours(record.PMIn, record.PMOut)
	if total != 0 {
		record.TotalHours = fmt.Sprintf("%.1f", total)
	}

	return record
}

// walkHalf scans one half-day bucket in chronological order. The first "in"
// wins, later ones are dropped; every "out" overwrites, so the last wins.
// The match is a case-insensitive substring check on the state label, which
// is what the check-in devices emit ("check in", "Check Out", plain "IN").
func walkHalf(events []Event) (in, out string) {
	for _, e := range events {
		state := strings.ToLower(e.State)
		if strings.Contains(state, "in") && in == "" {
			in = clockMinutes(e.Time)
		} else if strings.Contains(state, "out") {
			out = clockMinutes(e.Time)
		}
	}
	return in, out
}

// pairHours is the worked-hours contribution of one half-day. Incomplete
// pairs contribute zero rather than failing.
func pairHours(in, out string) float64 {
	if in == "" || out == "" {
		return 0
	}

	inMin, okIn := minutesOfDay(in)
	outMin, okOut := minutesOfDay(out)
	if !okIn || !okOut {
		return 0
	}

	return float64(outMin-inMin) / 60.0
}

// isMorning splits the day at noon. A punch stamped exactly 12:00:00 closes
// the morning half (the lunch-break checkout), everything after belongs to PM.
func isMorning(t string) bool {
	hour, _ := eventHour(t)
	if hour < 12 {
		return true
	}
	return t <= "12:00:00"
}

func eventHour(t string) (int, bool) {
	if len(t) < 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(t[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// clockMinutes truncates HH:MM:SS to the HH:MM shown on the sheet.
func clockMinutes(t string) string {
	if len(t) < 5 {
		return t
	}
	return t[:5]
}

func minutesOfDay(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hour*60 + minute, true
}

// ResolvePeriod maps a period selector onto a concrete day range for the
// given month, accounting for the month's real length (leap February
// included).
func ResolvePeriod(year int, month time.Month, period int) (startDay, endDay int, err error) {
	lastDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()

	switch period {
	case PeriodFirstHalf:
		return 1, 15, nil
	case PeriodSecondHalf:
		return 16, lastDay, nil
	case PeriodWholeMonth:
		return 1, lastDay, nil
	default:
		return 0, 0, web.NewRequestError(errors.New("invalid period"), http.StatusBadRequest)
	}
}
