package scoreboard

import "time"

const (
	defaultPastDays   = 7
	defaultFutureDays = 7
)

// Window returns the calendar dates surrounding now, pastDays back
// through futureDays ahead, oldest first. The window is fixed per fetch
// cycle; defaults span a week each way.
func Window(now time.Time, pastDays, futureDays int) []time.Time {
	if pastDays < 0 {
		pastDays = defaultPastDays
	}
	if futureDays < 0 {
		futureDays = defaultFutureDays
	}

	dates := make([]time.Time, 0, pastDays+futureDays+1)
	for offset := -pastDays; offset <= futureDays; offset++ {
		dates = append(dates, now.AddDate(0, 0, offset))
	}
	return dates
}
