package extract

import (
	"slices"
	"time"
)

// DateTimeParser parses one complete candidate string as a date/time.
type DateTimeParser interface {
	ParseDateTime(s string) (time.Time, bool)
}

// FormatTable is an ordered list of time.Parse layouts. The first layout that
// parses the whole candidate wins, so ambiguous numeric dates resolve in
// table order: month-first layouts precede day-first ones in the default
// table. Layouts without a zone yield UTC times.
type FormatTable []string

// ParseDateTime implements DateTimeParser.
func (f FormatTable) ParseDateTime(s string) (time.Time, bool) {
	for _, layout := range f {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// defaultFormats is the built-in table. Fractional seconds after a seconds
// field are accepted by time.Parse without an explicit layout element, and
// the "15" and "3" hour elements accept one or two digits.
var defaultFormats = FormatTable{
	// ISO 8601 / RFC 3339
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02 3:04:05 PM",
	"2006-01-02 15:04",
	"2006-01-02 3:04 PM",
	"2006-01-02, 15:04:05",
	"2006-01-02 at 15:04:05",
	"2006-01-02 at 15:04",

	// RFC 2822 / RFC 1123 and friends
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05",
	"2 Jan 2006, 15:04:05",
	time.RFC850,
	time.UnixDate,
	time.RubyDate,
	time.ANSIC,
	"Jan _2 15:04:05 2006",
	time.RFC822Z,
	time.RFC822,

	// Year first with other separators
	"2006/01/02 15:04:05",
	"2006/01/02 3:04:05 PM",
	"2006/01/02 15:04",
	"2006.01.02 15:04:05",
	"2006_01_02 15:04:05",
	"2006 Jan 2 15:04:05",

	// US order
	"01/02/2006 15:04:05",
	"01/02/2006 3:04:05 PM",
	"01/02/2006 15:04",
	"01/02/2006 3:04 PM",
	"01/02/2006, 15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"01-02-2006 15:04:05",
	"01-02-2006 3:04:05 PM",

	// European order
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006, 15:04:05",
	"02-01-2006 15:04:05",
	"02.01.2006 15:04:05",
	"02.01.2006, 15:04:05",
	"02.01.2006 15.04.05",
	"02 01 2006 15:04:05",
	"02_01_2006 15:04:05",
	"2.1.2006 15:04:05",

	// Compact and database
	"20060102T150405Z0700",
	"20060102T150405",
	"20060102150405",
	"20060102 150405",
	"20060102_150405",
	"20060102-150405",

	// Named months
	"02/Jan/2006:15:04:05 -0700",
	"2-Jan-2006 15:04:05",
	"Jan 02 2006 15:04:05",
	"January 2, 2006 15:04:05",
	"January 2, 2006 3:04:05 PM",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006 3:04:05 PM",
	"Jan 2, 2006 3:04 PM",
	"2 January 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",

	// Date only
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"01-02-2006",
	"02-01-2006",
	"02.01.2006",
}

// DefaultFormats returns a copy of the built-in format table.
func DefaultFormats() FormatTable {
	return slices.Clone(defaultFormats)
}
