package tracker

import "time"

// DayCount is one day of the ledger prepared for the weekly chart
// and the schedule view.
type DayCount struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
	Done  bool      `json:"done"`
}

// LastNDays returns exactly n entries, oldest first, ending at today.
// Days absent from the ledger are filled in with count 0, so the
// weekly chart always gets a full window regardless of ledger
// sparsity.
func LastNDays(history map[time.Time]int, n int, today time.Time) []DayCount {
	if n <= 0 {
		return []DayCount{}
	}

	todayNormalized := NormalizeDay(today)
	days := make([]DayCount, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := todayNormalized.AddDate(0, 0, -i)
		count := history[day]
		days = append(days, DayCount{
			Day:   day,
			Count: count,
			Done:  count > 0,
		})
	}
	return days
}

// HistoryTotals are the derived statistics shown on the app's stats
// screen. CompletionRate is the share of active days since the first
// ledger entry, up to and including today.
type HistoryTotals struct {
	TotalCompletions int     `json:"totalCompletions"`
	ActiveDays       int     `json:"activeDays"`
	CompletionRate   float64 `json:"completionRate"`
	LongestStreak    int     `json:"longestStreak"`
}

// daysBetween counts calendar days from a to b.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	utcA := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	utcB := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(utcB.Sub(utcA).Hours() / 24)
}

func Totals(history map[time.Time]int, today time.Time) HistoryTotals {
	totals := HistoryTotals{
		LongestStreak: LongestStreak(history),
	}

	var firstDay time.Time
	for day, count := range history {
		if count < 1 {
			continue
		}
		totals.TotalCompletions += count
		totals.ActiveDays++
		if firstDay.IsZero() || day.Before(firstDay) {
			firstDay = day
		}
	}

	if totals.ActiveDays == 0 {
		return totals
	}

	spanDays := daysBetween(firstDay, today) + 1
	if spanDays < totals.ActiveDays {
		spanDays = totals.ActiveDays
	}

	rate := float64(totals.ActiveDays) / float64(spanDays) * 100
	// leave only 2 decimals
	totals.CompletionRate = float64(int(rate*100)) / 100

	return totals
}
