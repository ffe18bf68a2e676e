package tracker

import (
	"sort"
	"time"
)

// ComputeStreak counts the consecutive days with at least one
// completion, walking backward from today inclusive. The walk always
// starts at today: if today has no entry the streak is 0, no matter
// how long the run before it is. The per-day count is irrelevant,
// presence is what matters.
func ComputeStreak(history map[time.Time]int, today time.Time) int {
	streak := 0
	for cursor := NormalizeDay(today); ; cursor = cursor.AddDate(0, 0, -1) {
		if count, ok := history[cursor]; !ok || count < 1 {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive completion
// days anywhere in the ledger.
func LongestStreak(history map[time.Time]int) int {
	days := make([]time.Time, 0, len(history))
	for day, count := range history {
		if count < 1 {
			continue
		}
		days = append(days, NormalizeDay(day))
	}
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			current++
		} else if !days[i].Equal(days[i-1]) {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}
