package domain

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for every date field.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date. A date-time such as
// "2025-06-15T08:00:00" is accepted and truncated to its date part.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) && (s[len(DateLayout)] == 'T' || s[len(DateLayout)] == ' ') {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ValidTripDates reports whether end falls on or after start.
func ValidTripDates(start, end string) bool {
	s, ok1 := ParseDate(start)
	e, ok2 := ParseDate(end)
	return ok1 && ok2 && !e.Before(s)
}

// ValidAccommodationDates reports whether a stay fits inside a trip:
// checkIn >= tripStart, checkOut <= tripEnd and checkOut > checkIn.
// Both trip bounds are inclusive. Unparseable input is invalid.
func ValidAccommodationDates(tripStart, tripEnd, checkIn, checkOut string) bool {
	start, ok1 := ParseDate(tripStart)
	end, ok2 := ParseDate(tripEnd)
	in, ok3 := ParseDate(checkIn)
	out, ok4 := ParseDate(checkOut)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return !in.Before(start) && !out.After(end) && out.After(in)
}

// ValidFlightDate reports whether a departure date lies within the trip
// widened by one day on each side, so that travel days either side of the
// trip are allowed.
func ValidFlightDate(tripStart, tripEnd, departure string) bool {
	start, ok1 := ParseDate(tripStart)
	end, ok2 := ParseDate(tripEnd)
	dep, ok3 := ParseDate(departure)
	if !ok1 || !ok2 || !ok3 {
		return false
	}
	return !dep.Before(start.AddDate(0, 0, -1)) && !dep.After(end.AddDate(0, 0, 1))
}

// ActivityConflicts reports whether an activity at clock on date would clash
// with any of existing, ignoring the activity whose id is excludeID.
//
// Two activities clash when they share the date and the hour and their
// minutes differ by less than 30. Times in different hours never clash, so
// 09:35 and 10:00 are not flagged although they are 25 minutes apart.
// Unparseable times never clash.
func ActivityConflicts(existing []Activity, date, clock, excludeID string) bool {
	hour, minute, ok := parseClock(clock)
	if !ok {
		return false
	}
	for _, a := range existing {
		if a.Date != date || (excludeID != "" && a.ID == excludeID) {
			continue
		}
		h, m, ok := parseClock(a.Time)
		if !ok {
			continue
		}
		if h == hour && abs(m-minute) < 30 {
			return true
		}
	}
	return false
}

// parseClock splits "15:04" into hour and minute.
func parseClock(s string) (int, int, bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, 0, false
	}
	if len(mm) > 2 {
		mm = mm[:2]
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
