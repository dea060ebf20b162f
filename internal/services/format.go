package services

import (
	"strconv"
	"time"
)

// FormatCoordinate renders a coordinate with exactly four decimal places,
// rounding to nearest. Boundary cases follow the underlying binary double,
// same as strconv (and as JS toFixed for non-midpoint inputs).
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// localizedTimeLayout mirrors the en-IN rendering the dashboard expects,
// day and month unpadded, e.g. "26/5/2025, 10:30:00 am".
const localizedTimeLayout = "2/1/2006, 3:04:05 pm"

// FormatTimestamp renders ts in the display timezone.
func FormatTimestamp(ts time.Time, loc *time.Location) string {
	return ts.In(loc).Format(localizedTimeLayout)
}
