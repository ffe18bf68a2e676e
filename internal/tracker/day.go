package tracker

import "time"

// dayKeyLayout is the ledger key format for a single calendar day.
const dayKeyLayout = "2006-01-02"

// NormalizeDay truncates a timestamp to local midnight. All ledger
// keys are normalized days, a day with no entry means no completion
// happened on it.
func NormalizeDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DayKey serializes a normalized day into its ledger key.
func DayKey(day time.Time) string {
	return day.Format(dayKeyLayout)
}

// ParseDayKey parses a ledger key back into a local-midnight day.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, key, time.Local)
}
