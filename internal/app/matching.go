// internal/app/matching.go
package app

import (
	"sort"
	"time"

	"birthday_reminder/internal/domain/record"
)

// Match is a record that is due, with the number of years elapsed since its stored date
// as of the occurrence being reminded about.
type Match struct {
	Key          string
	Date         time.Time
	ElapsedYears int
}

// DateOnly strips the clock and location, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Occurrence places a stored date's month and day in the given year.
// Feb 29 falls back to Feb 28 in common years.
func Occurrence(stored time.Time, year int) time.Time {
	month, day := stored.Month(), stored.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NextOccurrence is this year's occurrence, or next year's once this year's has passed.
func NextOccurrence(stored, today time.Time) time.Time {
	today = DateOnly(today)
	occ := Occurrence(stored, today.Year())
	if occ.Before(today) {
		occ = Occurrence(stored, today.Year()+1)
	}
	return occ
}

func daysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// MatchExactDate returns keys whose month and day equal today's, sorted.
func MatchExactDate(records record.Dates, today time.Time) []string {
	today = DateOnly(today)
	var keys []string
	for key, stored := range records {
		if Occurrence(stored, today.Year()).Equal(today) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// MatchCountdown returns records whose next occurrence is exactly n days after today.
func MatchCountdown(records record.Dates, today time.Time, n int) []Match {
	today = DateOnly(today)
	var matches []Match
	for key, stored := range records {
		occ := NextOccurrence(stored, today)
		if daysBetween(today, occ) != n {
			continue
		}
		matches = append(matches, Match{Key: key, Date: stored, ElapsedYears: occ.Year() - stored.Year()})
	}
	sortMatches(matches)
	return matches
}

func exactMatches(records record.Dates, today time.Time) []Match {
	keys := MatchExactDate(records, today)
	matches := make([]Match, 0, len(keys))
	for _, key := range keys {
		stored := records[key]
		matches = append(matches, Match{Key: key, Date: stored, ElapsedYears: today.Year() - stored.Year()})
	}
	return matches
}

func sortMatches(matches []Match) {
	sort.Slice(matches, func(i, j int) bool { return matches[i].Key < matches[j].Key })
}
