package app

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AEMWks/fotodiario/models"
)

func TestBuildStatsEmpty(t *testing.T) {
	stats := BuildStats(nil)

	assert.Equal(t, 0, stats.TotalFiles)
	assert.Empty(t, stats.DatesWithContent)
	assert.Empty(t, stats.ActivityByDate)
	assert.NotNil(t, stats.MonthlyActivity)
	assert.Equal(t, 0.0, stats.AvgPhotosPerDay)
}

func TestBuildStats(t *testing.T) {
	records := []models.MediaRecord{
		{Date: "2024-01-15", Time: "08:00:00", Type: models.TypePhoto, Size: 1024 * 1024},
		{Date: "2024-01-15", Time: "08:30:00", Type: models.TypePhoto, Size: 1024 * 1024},
		{Date: "2024-01-15", Time: "20:00:00", Type: models.TypeVideo, Size: 2 * 1024 * 1024},
		{Date: "2024-02-01", Time: "08:15:00", Type: models.TypePhoto, Size: 1024 * 1024},
	}

	stats := BuildStats(records)

	assert.Equal(t, 4, stats.TotalFiles)
	assert.Equal(t, 3, stats.TotalPhotos)
	assert.Equal(t, 1, stats.TotalVideos)
	assert.Equal(t, int64(5*1024*1024), stats.TotalSize)
	assert.Equal(t, 5.0, stats.TotalSizeMB)

	assert.Equal(t, []string{"2024-01-15", "2024-02-01"}, stats.DatesWithContent)
	assert.Equal(t, "2024-01-15", stats.EarliestDate)
	assert.Equal(t, "2024-02-01", stats.LatestDate)
	assert.Equal(t, 2.0, stats.AvgPhotosPerDay)

	assert.Equal(t, 3, stats.ActivityByHour[8])
	assert.Equal(t, 1, stats.ActivityByHour[20])
	assert.Equal(t, 8, stats.MostActiveHour)

	// 2024-01-15 is a Monday, 2024-02-01 a Thursday.
	assert.Equal(t, 3, stats.ActivityByDayOfWeek[1])
	assert.Equal(t, 1, stats.ActivityByDayOfWeek[4])
	assert.Equal(t, 1, stats.MostActiveDay)

	assert.Equal(t, map[string]int{"2024-01": 3, "2024-02": 1}, stats.MonthlyActivity)

	require.Len(t, stats.ActivityByDate, 2)
	assert.Equal(t, models.DateActivity{Date: "2024-01-15", Count: 3}, stats.ActivityByDate[0])
}

func TestBuildStatsHourBucketSum(t *testing.T) {
	records := []models.MediaRecord{
		{Date: "2024-01-15", Time: "10:00:00", Type: models.TypePhoto},
		{Date: "2024-01-15", Time: "99:99:99", Type: models.TypePhoto},
		{Date: "2024-01-15", Time: "25:00:00", Type: models.TypePhoto},
	}

	stats := BuildStats(records)

	sum := 0
	for _, c := range stats.ActivityByHour {
		sum += c
	}
	// Out-of-range hours fold into range; buckets always sum to the total.
	assert.Equal(t, stats.TotalFiles, sum)
	assert.Equal(t, 1, stats.ActivityByHour[10])
	assert.Equal(t, 1, stats.ActivityByHour[99%24])
	assert.Equal(t, 1, stats.ActivityByHour[25%24])
}

func TestArgmaxTieBreak(t *testing.T) {
	assert.Equal(t, 0, argmax([]int{3, 3, 1}))
	assert.Equal(t, 2, argmax([]int{1, 2, 5, 5}))
	assert.Equal(t, 0, argmax([]int{0, 0, 0}))
}

func TestWithCharts(t *testing.T) {
	var records []models.MediaRecord
	// 40 distinct dates so the timeline truncates to the last 30.
	for day := 1; day <= 28; day++ {
		records = append(records, models.MediaRecord{
			Date: "2024-01-" + twoDigits(day), Time: "10:00:00", Type: models.TypePhoto,
		})
	}
	for day := 1; day <= 12; day++ {
		records = append(records, models.MediaRecord{
			Date: "2024-02-" + twoDigits(day), Time: "15:00:00", Type: models.TypePhoto,
		})
	}

	stats := WithCharts(BuildStats(records))
	require.NotNil(t, stats.Charts)

	assert.Len(t, stats.Charts.ActivityTimeline, 30)
	assert.Equal(t, "2024-01-11", stats.Charts.ActivityTimeline[0].Date)
	assert.Equal(t, "2024-02-12", stats.Charts.ActivityTimeline[29].Date)

	require.Len(t, stats.Charts.HourlyDistribution, 24)
	assert.Equal(t, 28, stats.Charts.HourlyDistribution[10].Count)
	assert.Equal(t, 12, stats.Charts.HourlyDistribution[15].Count)

	require.Len(t, stats.Charts.WeeklyDistribution, 7)
	assert.Equal(t, "Sun", stats.Charts.WeeklyDistribution[0].Day)
}

func twoDigits(n int) string {
	return fmt.Sprintf("%02d", n)
}
