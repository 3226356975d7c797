package report

import (
	"fmt"
	"strconv"
	"time"
)

// Bucket is a labeled closed date interval over which a financial aggregate
// is computed. Start and End carry the configured timezone.
type Bucket struct {
	Start time.Time
	End   time.Time
	Label string
}

// endOfDay returns 23:59:59.999999 of the given calendar day, mirroring the
// microsecond precision of the underlying timestamp columns.
func endOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 23, 59, 59, 999999*int(time.Microsecond), loc)
}

func startOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// monthsAgo walks back from (year, month), rolling over year boundaries, so
// that two months before January lands on November of the previous year.
func monthsAgo(year int, month time.Month, back int) (int, time.Month) {
	m := int(month) - back
	for m <= 0 {
		m += 12
		year--
	}
	return year, time.Month(m)
}

// WeeklyBuckets returns one full-day bucket per day of the current week,
// Monday through Sunday, labeled with localized weekday abbreviations.
func WeeklyBuckets(now time.Time, locale Locale) []Bucket {
	loc := now.Location()
	// time.Weekday counts from Sunday; shift so Monday is day zero
	offset := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -offset)

	buckets := make([]Bucket, 0, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		buckets = append(buckets, Bucket{
			Start: startOfDay(day.Year(), day.Month(), day.Day(), loc),
			End:   endOfDay(day.Year(), day.Month(), day.Day(), loc),
			Label: locale.WeekdayAbbr(day.Weekday()),
		})
	}
	return buckets
}

// MonthlyBuckets returns one full-day bucket per calendar day of the
// current month, labeled "1" through the month's last day.
func MonthlyBuckets(now time.Time) []Bucket {
	loc := now.Location()
	year, month := now.Year(), now.Month()
	days := daysInMonth(year, month)

	buckets := make([]Bucket, 0, days)
	for day := 1; day <= days; day++ {
		buckets = append(buckets, Bucket{
			Start: startOfDay(year, month, day, loc),
			End:   endOfDay(year, month, day, loc),
			Label: strconv.Itoa(day),
		})
	}
	return buckets
}

// TrailingMonthBuckets returns n month buckets ending at the current month,
// oldest first. Every bucket spans its full calendar month except the most
// recent one, whose end is clamped to now so partial current-month activity
// shows without implying the month is complete.
func TrailingMonthBuckets(now time.Time, n int, locale Locale) []Bucket {
	loc := now.Location()

	buckets := make([]Bucket, n)
	for i := 0; i < n; i++ {
		year, month := monthsAgo(now.Year(), now.Month(), i)
		end := endOfDay(year, month, daysInMonth(year, month), loc)
		if i == 0 {
			end = now
		}
		// fill back to front so the result is oldest first
		buckets[n-1-i] = Bucket{
			Start: startOfDay(year, month, 1, loc),
			End:   end,
			Label: locale.MonthAbbr(month) + " " + strconv.Itoa(year),
		}
	}
	return buckets
}

// MonthKeyBuckets returns n full calendar month buckets ending at the
// current month, oldest first, labeled with sortable "YYYY-MM" keys. Unlike
// TrailingMonthBuckets the current month keeps its full end, matching the
// expense breakdown table's month columns.
func MonthKeyBuckets(now time.Time, n int) []Bucket {
	loc := now.Location()

	buckets := make([]Bucket, n)
	for i := 0; i < n; i++ {
		year, month := monthsAgo(now.Year(), now.Month(), i)
		buckets[n-1-i] = Bucket{
			Start: startOfDay(year, month, 1, loc),
			End:   endOfDay(year, month, daysInMonth(year, month), loc),
			Label: fmt.Sprintf("%04d-%02d", year, int(month)),
		}
	}
	return buckets
}

// YearlyBuckets returns one full calendar year bucket per year from the
// earliest ledger timestamp through the current year, labeled with the year
// number. A nil earliest collapses the window to the current year alone.
func YearlyBuckets(now time.Time, earliest *time.Time) []Bucket {
	loc := now.Location()

	firstYear := now.Year()
	if earliest != nil {
		if y := earliest.In(loc).Year(); y < firstYear {
			firstYear = y
		}
	}

	buckets := make([]Bucket, 0, now.Year()-firstYear+1)
	for year := firstYear; year <= now.Year(); year++ {
		buckets = append(buckets, Bucket{
			Start: startOfDay(year, time.January, 1, loc),
			End:   endOfDay(year, time.December, 31, loc),
			Label: strconv.Itoa(year),
		})
	}
	return buckets
}
