// Package format provides display formatting helpers for dashboard values.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// Date renders an instant as a short human-readable date, e.g. "Jan 15, 2024".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// TimeSaved renders an hours estimate with its unit, e.g. "12 hrs".
func TimeSaved(hours float64) string {
	return fmt.Sprintf("%s hrs", strconv.FormatFloat(hours, 'f', -1, 64))
}
