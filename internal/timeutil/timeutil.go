// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const minutesInAnHour = 60

// keyLayout has a fixed width so that keys sort in time order.
const keyLayout = "2006-01-02T15:04:05.000000000Z"

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatMinutes renders a minutes value as "1h 05m" or "12m".
func FormatMinutes(val int) string {
	hrs, mins := MinsToHoursAndMins(val)
	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %02dm", hrs, mins)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// PeriodBounds returns the start and end of a reporting period relative to
// now. The all-time period starts at the zero time.
func PeriodBounds(p Period, now time.Time) (time.Time, time.Time, error) {
	days, ok := Range[p]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period: %s", p)
	}

	end := RoundToEnd(now)

	if p == PeriodAllTime {
		return time.Time{}, end, nil
	}

	start := RoundToStart(now.AddDate(0, 0, days))

	if p == PeriodYesterday {
		end = RoundToEnd(start)
	}

	return start, end, nil
}

// FromStr parses a natural language or absolute date such as "20 mins ago"
// or "2026-10-01 09:00".
func FromStr(s string) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime: time.Now(),
	}

	dt, err := dps.Parse(cfg, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
