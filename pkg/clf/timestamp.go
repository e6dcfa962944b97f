package clf

import (
	"strconv"
	"time"
)

// logtimeLayout covers the calendar portion of a CLF timestamp,
// e.g. 04/Apr/2012:10:37:29. The numeric zone that follows is read
// from fixed character positions, not parsed as a location.
const logtimeLayout = "02/Jan/2006:15:04:05"

// Offset field positions within the full timestamp expression:
// the sign sits at index 21, followed by two hour digits and two
// minute digits.
const (
	offsetSignPos = 21
	offsetHourPos = 22
	offsetMinPos  = 24
	logtimeMinLen = 26
	calendarWidth = 20
)

// LogtimeToUnix converts a CLF timestamp of the form
// `DD/Mon/YYYY:HH:MM:SS ±ZZZZ` into a decimal Unix epoch-seconds
// string. The calendar fields are interpreted without any host
// timezone involvement and the literal zone offset is applied as
// ±(hours*3600 + minutes*60), so the result is reproducible on any
// machine. Unparsable input yields the `-` placeholder rather than an
// error; the placeholder is still subject to TIME-field validation
// downstream.
func LogtimeToUnix(logtime string) string {
	if len(logtime) < logtimeMinLen {
		return "-"
	}

	t, err := time.Parse(logtimeLayout, logtime[:calendarWidth])
	if err != nil {
		return "-"
	}

	hours, err := strconv.Atoi(logtime[offsetHourPos : offsetHourPos+2])
	if err != nil || hours < 0 {
		return "-"
	}
	mins, err := strconv.Atoi(logtime[offsetMinPos : offsetMinPos+2])
	if err != nil || mins < 0 {
		return "-"
	}

	off := int64(hours*3600 + mins*60)
	if logtime[offsetSignPos] == '-' {
		off = -off
	}

	return strconv.FormatInt(t.Unix()+off, 10)
}
