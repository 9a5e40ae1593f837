package gtfs

import (
	"fmt"
	"strconv"
	"strings"
)

// StopTime is one timetable row of a trip. Arrival and Departure carry the
// feed text verbatim; ArrSec and DepSec are the same instants parsed to
// seconds since local midnight, above 86400 for rows past 24:00:00.
type StopTime struct {
	StopID    string
	Seq       int
	Arrival   string
	Departure string
	ArrSec    int
	DepSec    int
}

// ParseTime parses a GTFS HH:MM:SS clock string to seconds since local
// midnight. Hours may exceed 23 on overnight services; minutes and seconds
// must stay under 60.
func ParseTime(s string) (int, bool) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, false
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	sec, errS := strconv.Atoi(parts[2])
	if errH != nil || errM != nil || errS != nil {
		return 0, false
	}
	if h < 0 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, false
	}
	return h*3600 + m*60 + sec, true
}

// FormatTime renders seconds since midnight back to HH:MM:SS, zero padded,
// hours running past 24 when needed.
func FormatTime(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, sec%3600/60, sec%60)
}
