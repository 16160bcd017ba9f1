// Package period derives the calendar month a monthly-average rate is requested for.
package period

import (
	"fmt"
	"time"
)

// PreviousMonth returns the year and the zero-padded month preceding the month of today.
// January rolls over to December of the previous year
func PreviousMonth(today time.Time) (year, month string) {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	prev := first.AddDate(0, -1, 0)

	return fmt.Sprintf("%04d", prev.Year()), fmt.Sprintf("%02d", int(prev.Month()))
}
