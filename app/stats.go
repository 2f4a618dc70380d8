package app

import (
	"math"
	"sort"
	"time"

	"github.com/AEMWks/fotodiario/models"
)

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// BuildStats aggregates a record list into the dashboard statistics.
// The list is whatever the caller already filtered; the function itself
// is a pure fold over it.
func BuildStats(records []models.MediaRecord) models.Stats {
	stats := models.Stats{
		MonthlyActivity:  map[string]int{},
		DatesWithContent: []string{},
		ActivityByDate:   []models.DateActivity{},
	}

	dateActivity := map[string]int{}

	for _, rec := range records {
		stats.TotalFiles++
		if rec.Type == models.TypeVideo {
			stats.TotalVideos++
		} else {
			stats.TotalPhotos++
		}
		stats.TotalSize += rec.Size

		dateActivity[rec.Date]++

		// Syntactically valid but clock-invalid hours fold into range
		// so the bucket sum always matches the total.
		stats.ActivityByHour[rec.Hour()%24]++

		if t, err := time.Parse("2006-01-02", rec.Date); err == nil {
			stats.ActivityByDayOfWeek[int(t.Weekday())]++
		} else {
			// Syntactic dates outside the calendar still count somewhere.
			stats.ActivityByDayOfWeek[0]++
		}

		stats.MonthlyActivity[rec.Date[:7]]++
	}

	if stats.TotalFiles == 0 {
		return stats
	}

	dates := make([]string, 0, len(dateActivity))
	for d := range dateActivity {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	stats.DatesWithContent = dates
	stats.EarliestDate = dates[0]
	stats.LatestDate = dates[len(dates)-1]

	for _, d := range dates {
		stats.ActivityByDate = append(stats.ActivityByDate, models.DateActivity{
			Date:  d,
			Count: dateActivity[d],
		})
	}

	stats.AvgPhotosPerDay = round1(float64(stats.TotalFiles) / float64(len(dates)))
	stats.MostActiveHour = argmax(stats.ActivityByHour[:])
	stats.MostActiveDay = argmax(stats.ActivityByDayOfWeek[:])
	stats.TotalSizeMB = MBytes(stats.TotalSize)

	return stats
}

// WithCharts attaches the chart-ready projections of the stats.
func WithCharts(stats models.Stats) models.Stats {
	charts := &models.ChartData{
		HourlyDistribution: make([]models.HourCount, 24),
		WeeklyDistribution: make([]models.WeekdayCount, 7),
	}

	timeline := stats.ActivityByDate
	if len(timeline) > 30 {
		timeline = timeline[len(timeline)-30:]
	}
	charts.ActivityTimeline = timeline

	for h := 0; h < 24; h++ {
		charts.HourlyDistribution[h] = models.HourCount{Hour: h, Count: stats.ActivityByHour[h]}
	}
	for d := 0; d < 7; d++ {
		charts.WeeklyDistribution[d] = models.WeekdayCount{Day: weekdayLabels[d], Count: stats.ActivityByDayOfWeek[d]}
	}

	stats.Charts = charts
	return stats
}

// argmax returns the index of the maximum; ties go to the lowest index.
func argmax(buckets []int) int {
	best := 0
	for i, v := range buckets {
		if v > buckets[best] {
			best = i
		}
	}
	return best
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
