// Package timefmt renders client-supplied datetime strings for the booking
// alert. Bookings store the datetime verbatim; it is only parsed here, for
// display.
package timefmt

import "time"

// InvalidDate is returned as the date part when the input cannot be parsed.
const InvalidDate = "Invalid date"

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
}

// Format splits an arbitrary datetime string into a YYYY-MM-DD date and a
// zero-padded 12-hour clock with an AM/PM suffix, interpreted in the server's
// local time. Unparsable input degrades to (InvalidDate, "") instead of an
// error: the result feeds a human-readable message, not a validated field.
func Format(input string) (string, string) {
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, input, time.Local)
		if err != nil {
			continue
		}
		t = t.Local()
		return t.Format("2006-01-02"), t.Format("03:04 PM")
	}
	return InvalidDate, ""
}
