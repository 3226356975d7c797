package report

import "time"

// Locale maps calendar abbreviations and chart titles to a display
// language. It is a pure lookup table, kept apart from the bucket math so
// new languages only add a table here.
type Locale struct {
	Tag      string
	weekdays map[time.Weekday]string
	months   map[time.Month]string
	titles   map[string]string
}

// Title keys for the dashboard series.
const (
	TitleWeeklyNetProfit      = "weekly_net_profit"
	TitleMonthlyNetProfit     = "monthly_net_profit"
	TitleThreeMonthNetProfit  = "three_month_net_profit"
	TitleSixMonthNetProfit    = "six_month_net_profit"
	TitleTwelveMonthNetProfit = "twelve_month_net_profit"
	TitleAllTimeNetProfit     = "all_time_net_profit"
	TitleWeeklyExpenses       = "weekly_expenses"
	TitleMonthlyExpenses      = "monthly_expenses"
	TitleThreeMonthExpenses   = "three_month_expenses"
	TitleSixMonthExpenses     = "six_month_expenses"
	TitleTwelveMonthExpenses  = "twelve_month_expenses"
	TitleAllTimeExpenses      = "all_time_expenses"
)

var localeTR = Locale{
	Tag: "tr",
	weekdays: map[time.Weekday]string{
		time.Monday:    "Pzt",
		time.Tuesday:   "Sal",
		time.Wednesday: "Çar",
		time.Thursday:  "Per",
		time.Friday:    "Cum",
		time.Saturday:  "Cmt",
		time.Sunday:    "Paz",
	},
	months: map[time.Month]string{
		time.January:   "Oca",
		time.February:  "Şub",
		time.March:     "Mar",
		time.April:     "Nis",
		time.May:       "May",
		time.June:      "Haz",
		time.July:      "Tem",
		time.August:    "Ağu",
		time.September: "Eyl",
		time.October:   "Eki",
		time.November:  "Kas",
		time.December:  "Ara",
	},
	titles: map[string]string{
		TitleWeeklyNetProfit:      "Haftalık Net Kazanç",
		TitleMonthlyNetProfit:     "Aylık Net Kazanç",
		TitleThreeMonthNetProfit:  "Son 3 Ay Net Kazanç",
		TitleSixMonthNetProfit:    "Son 6 Ay Net Kazanç",
		TitleTwelveMonthNetProfit: "Son 12 Ay Net Kazanç",
		TitleAllTimeNetProfit:     "Tüm Zamanlar Net Kazanç",
		TitleWeeklyExpenses:       "Haftalık Giderler",
		TitleMonthlyExpenses:      "Aylık Giderler",
		TitleThreeMonthExpenses:   "Son 3 Ay Giderler",
		TitleSixMonthExpenses:     "Son 6 Ay Giderler",
		TitleTwelveMonthExpenses:  "Son 12 Ay Giderler",
		TitleAllTimeExpenses:      "Tüm Zamanlar Giderler",
	},
}

var localeEN = Locale{
	Tag: "en",
	weekdays: map[time.Weekday]string{
		time.Monday:    "Mon",
		time.Tuesday:   "Tue",
		time.Wednesday: "Wed",
		time.Thursday:  "Thu",
		time.Friday:    "Fri",
		time.Saturday:  "Sat",
		time.Sunday:    "Sun",
	},
	months: map[time.Month]string{
		time.January:   "Jan",
		time.February:  "Feb",
		time.March:     "Mar",
		time.April:     "Apr",
		time.May:       "May",
		time.June:      "Jun",
		time.July:      "Jul",
		time.August:    "Aug",
		time.September: "Sep",
		time.October:   "Oct",
		time.November:  "Nov",
		time.December:  "Dec",
	},
	titles: map[string]string{
		TitleWeeklyNetProfit:      "Weekly Net Profit",
		TitleMonthlyNetProfit:     "Monthly Net Profit",
		TitleThreeMonthNetProfit:  "Last 3 Months Net Profit",
		TitleSixMonthNetProfit:    "Last 6 Months Net Profit",
		TitleTwelveMonthNetProfit: "Last 12 Months Net Profit",
		TitleAllTimeNetProfit:     "All Time Net Profit",
		TitleWeeklyExpenses:       "Weekly Expenses",
		TitleMonthlyExpenses:      "Monthly Expenses",
		TitleThreeMonthExpenses:   "Last 3 Months Expenses",
		TitleSixMonthExpenses:     "Last 6 Months Expenses",
		TitleTwelveMonthExpenses:  "Last 12 Months Expenses",
		TitleAllTimeExpenses:      "All Time Expenses",
	},
}

var locales = map[string]Locale{
	"tr": localeTR,
	"en": localeEN,
}

// LocaleFor returns the locale registered under the tag, falling back to
// English for unknown tags.
func LocaleFor(tag string) Locale {
	if locale, ok := locales[tag]; ok {
		return locale
	}
	return localeEN
}

// WeekdayAbbr returns the localized weekday abbreviation.
func (l Locale) WeekdayAbbr(day time.Weekday) string {
	if abbr, ok := l.weekdays[day]; ok {
		return abbr
	}
	return localeEN.weekdays[day]
}

// MonthAbbr returns the localized month abbreviation.
func (l Locale) MonthAbbr(month time.Month) string {
	if abbr, ok := l.months[month]; ok {
		return abbr
	}
	return localeEN.months[month]
}

// Title returns the localized chart title for a known title key, falling
// back to English for keys the locale does not carry.
func (l Locale) Title(key string) string {
	if title, ok := l.titles[key]; ok {
		return title
	}
	return localeEN.titles[key]
}
