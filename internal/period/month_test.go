package period

import (
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestPreviousMonth(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		today time.Time
		year  string
		month string
	}{
		{
			name:  "test_previous_month_january_rollover",
			today: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			year:  "2023",
			month: "12",
		},
		{
			name:  "test_previous_month_february",
			today: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			year:  "2024",
			month: "01",
		},
		{
			name:  "test_previous_month_june",
			today: time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC),
			year:  "2024",
			month: "05",
		},
		{
			name:  "test_previous_month_november_two_digits",
			today: time.Date(2024, time.November, 3, 0, 0, 0, 0, time.UTC),
			year:  "2024",
			month: "10",
		},
		{
			name:  "test_previous_month_march_after_leap_day",
			today: time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
			year:  "2024",
			month: "02",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			year, month := PreviousMonth(tc.today)
			if diff := cmp.Diff(tc.year, year); diff != "" {
				t.Errorf("year mismatch (-want, +got):\n%s", diff)
			}

			if diff := cmp.Diff(tc.month, month); diff != "" {
				t.Errorf("month mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestPreviousMonth_EveryDayOfYear(t *testing.T) {
	t.Parallel()

	day := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)
	for ; day.Year() < 2025; day = day.AddDate(0, 0, 1) {
		year, month := PreviousMonth(day)

		if len(month) != 2 || len(year) != 4 {
			t.Fatalf("%s: malformed result %q-%q", day.Format("2006-01-02"), year, month)
		}

		m, err := strconv.Atoi(month)
		if err != nil || m < 1 || m > 12 {
			t.Fatalf("%s: month out of range: %q", day.Format("2006-01-02"), month)
		}

		wantYear := day.Year()
		if day.Month() == time.January {
			wantYear--
		}

		if year != strconv.Itoa(wantYear) {
			t.Fatalf("%s: year mismatch: want %d, got %s", day.Format("2006-01-02"), wantYear, year)
		}
	}
}
