package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var istanbul = mustLoadLocation("Europe/Istanbul")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func TestWeeklyBuckets(t *testing.T) {
	locale := LocaleFor("tr")

	t.Run("seven buckets monday through sunday regardless of today", func(t *testing.T) {
		for day := 11; day <= 17; day++ { // Mon Aug 11 2025 .. Sun Aug 17 2025
			now := time.Date(2025, 8, day, 14, 30, 0, 0, istanbul)
			buckets := WeeklyBuckets(now, locale)

			require.Len(t, buckets, 7)
			assert.Equal(t, time.Monday, buckets[0].Start.Weekday())
			assert.Equal(t, time.Sunday, buckets[6].Start.Weekday())
			assert.Equal(t, 11, buckets[0].Start.Day())
			assert.Equal(t, 17, buckets[6].Start.Day())
		}
	})

	t.Run("buckets span full days in the configured zone", func(t *testing.T) {
		now := time.Date(2025, 8, 13, 9, 0, 0, 0, istanbul)
		buckets := WeeklyBuckets(now, locale)

		first := buckets[0]
		assert.Equal(t, 0, first.Start.Hour())
		assert.Equal(t, istanbul, first.Start.Location())
		assert.Equal(t, 23, first.End.Hour())
		assert.Equal(t, 59, first.End.Minute())
		assert.Equal(t, 999999000, first.End.Nanosecond())
	})

	t.Run("localized labels", func(t *testing.T) {
		now := time.Date(2025, 8, 13, 9, 0, 0, 0, istanbul)
		buckets := WeeklyBuckets(now, locale)

		labels := make([]string, 0, 7)
		for _, b := range buckets {
			labels = append(labels, b.Label)
		}
		assert.Equal(t, []string{"Pzt", "Sal", "Çar", "Per", "Cum", "Cmt", "Paz"}, labels)
	})

	t.Run("week spanning a month boundary", func(t *testing.T) {
		now := time.Date(2025, 9, 1, 8, 0, 0, 0, istanbul) // Monday
		buckets := WeeklyBuckets(now, locale)

		assert.Equal(t, time.September, buckets[0].Start.Month())
		assert.Equal(t, 7, buckets[6].Start.Day())
	})
}

func TestMonthlyBuckets(t *testing.T) {
	t.Run("one bucket per day of the month", func(t *testing.T) {
		now := time.Date(2025, 8, 13, 9, 0, 0, 0, istanbul)
		buckets := MonthlyBuckets(now)

		require.Len(t, buckets, 31)
		assert.Equal(t, "1", buckets[0].Label)
		assert.Equal(t, "31", buckets[30].Label)
	})

	t.Run("february in a leap year", func(t *testing.T) {
		now := time.Date(2024, 2, 10, 9, 0, 0, 0, istanbul)
		buckets := MonthlyBuckets(now)

		require.Len(t, buckets, 29)
	})
}

func TestTrailingMonthBuckets(t *testing.T) {
	locale := LocaleFor("tr")

	t.Run("most recent bucket ends now, older buckets span full months", func(t *testing.T) {
		now := time.Date(2025, 8, 13, 9, 30, 0, 0, istanbul)
		buckets := TrailingMonthBuckets(now, 3, locale)

		require.Len(t, buckets, 3)
		assert.Equal(t, []string{"Haz 2025", "Tem 2025", "Ağu 2025"},
			[]string{buckets[0].Label, buckets[1].Label, buckets[2].Label})

		assert.True(t, buckets[2].End.Equal(now))
		assert.Equal(t, 30, buckets[0].End.Day())
		assert.Equal(t, 31, buckets[1].End.Day())
	})

	t.Run("rolls over year boundaries", func(t *testing.T) {
		now := time.Date(2025, 2, 15, 12, 0, 0, 0, istanbul)
		buckets := TrailingMonthBuckets(now, 4, locale)

		assert.Equal(t, []string{"Kas 2024", "Ara 2024", "Oca 2025", "Şub 2025"},
			[]string{buckets[0].Label, buckets[1].Label, buckets[2].Label, buckets[3].Label})
		assert.Equal(t, 2024, buckets[0].Start.Year())
		assert.Equal(t, time.November, buckets[0].Start.Month())
	})

	t.Run("twelve months cover a full year", func(t *testing.T) {
		now := time.Date(2025, 8, 13, 9, 0, 0, 0, istanbul)
		buckets := TrailingMonthBuckets(now, 12, locale)

		require.Len(t, buckets, 12)
		assert.Equal(t, "Eyl 2024", buckets[0].Label)
		assert.Equal(t, "Ağu 2025", buckets[11].Label)
	})
}

func TestMonthKeyBuckets(t *testing.T) {
	t.Run("sortable keys oldest first with full month ends", func(t *testing.T) {
		now := time.Date(2025, 1, 20, 9, 0, 0, 0, istanbul)
		buckets := MonthKeyBuckets(now, 6)

		require.Len(t, buckets, 6)
		assert.Equal(t, "2024-08", buckets[0].Label)
		assert.Equal(t, "2025-01", buckets[5].Label)
		// current month is not clamped to now in the table view
		assert.Equal(t, 31, buckets[5].End.Day())
		assert.Equal(t, 23, buckets[5].End.Hour())
	})
}

func TestYearlyBuckets(t *testing.T) {
	now := time.Date(2025, 8, 13, 9, 0, 0, 0, istanbul)

	t.Run("spans earliest ledger year through current year", func(t *testing.T) {
		earliest := time.Date(2022, 11, 3, 10, 0, 0, 0, istanbul)
		buckets := YearlyBuckets(now, &earliest)

		require.Len(t, buckets, 4)
		assert.Equal(t, "2022", buckets[0].Label)
		assert.Equal(t, "2025", buckets[3].Label)
		assert.Equal(t, time.January, buckets[0].Start.Month())
		assert.Equal(t, time.December, buckets[0].End.Month())
	})

	t.Run("collapses to current year when ledger is empty", func(t *testing.T) {
		buckets := YearlyBuckets(now, nil)

		require.Len(t, buckets, 1)
		assert.Equal(t, "2025", buckets[0].Label)
	})
}

func TestLocaleFallback(t *testing.T) {
	unknown := LocaleFor("de")
	assert.Equal(t, "en", unknown.Tag)
	assert.Equal(t, "Mon", unknown.WeekdayAbbr(time.Monday))

	tr := LocaleFor("tr")
	assert.Equal(t, "Ağu", tr.MonthAbbr(time.August))
	assert.Equal(t, "Haftalık Net Kazanç", tr.Title(TitleWeeklyNetProfit))
}
