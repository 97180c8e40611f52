package weather

import (
	"math"
	"sort"
	"time"

	domainweather "courtside/internal/domain/weather"
	"courtside/internal/providers/openweather"
	"courtside/internal/timeutil"
)

const maxForecastDays = 7

type dayBucket struct {
	min        float64
	max        float64
	conditions map[string]int
	icons      map[string]string
}

// BucketForecast collapses the provider's 3-hour forecast entries into
// per-day summaries. Each day carries the rounded min/max across its
// entries and the condition that appeared most often that day.
func BucketForecast(entries []openweather.ForecastEntry) []domainweather.ForecastDay {
	buckets := make(map[string]*dayBucket)
	for _, entry := range entries {
		date := time.Unix(entry.Dt, 0).UTC().Format(timeutil.DateLayout)
		bucket, ok := buckets[date]
		if !ok {
			bucket = &dayBucket{
				min:        math.Inf(1),
				max:        math.Inf(-1),
				conditions: make(map[string]int),
				icons:      make(map[string]string),
			}
			buckets[date] = bucket
		}
		bucket.min = math.Min(bucket.min, entry.Main.TempMin)
		bucket.max = math.Max(bucket.max, entry.Main.TempMax)
		if len(entry.Weather) > 0 {
			cond := entry.Weather[0]
			bucket.conditions[cond.Main]++
			bucket.icons[cond.Main] = cond.Icon
		}
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > maxForecastDays {
		dates = dates[:maxForecastDays]
	}

	days := make([]domainweather.ForecastDay, 0, len(dates))
	for _, date := range dates {
		bucket := buckets[date]
		cond := dominantCondition(bucket.conditions)
		days = append(days, domainweather.ForecastDay{
			Date:      date,
			Temp:      domainweather.TempRange{Min: roundInt(bucket.min), Max: roundInt(bucket.max)},
			Condition: cond,
			Icon:      bucket.icons[cond],
		})
	}
	return days
}

func dominantCondition(counts map[string]int) string {
	best := ""
	bestCount := 0
	for cond, count := range counts {
		if count > bestCount || (count == bestCount && cond < best) {
			best = cond
			bestCount = count
		}
	}
	return best
}
