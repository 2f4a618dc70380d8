package app

import (
	"fmt"
	"sort"
	"time"

	"github.com/AEMWks/fotodiario/models"
)

// Calendar builds the month view: one entry per calendar day plus the
// month statistics and prev/next navigation. Invalid months are the only
// caller-visible error of the aggregation layer.
func (l *Library) Calendar(year, month int) (models.Calendar, error) {
	if month < 1 || month > 12 {
		return models.Calendar{}, fmt.Errorf("invalid month %d", month)
	}
	if year < 1000 || year > 9999 {
		return models.Calendar{}, fmt.Errorf("invalid year %d", year)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cal := models.Calendar{
		MonthInfo: models.MonthInfo{
			Year:           year,
			Month:          month,
			MonthName:      first.Month().String(),
			DaysInMonth:    daysInMonth,
			FirstDayOfWeek: int(first.Weekday()),
		},
		Navigation: monthNavigation(first),
		Days:       make([]models.CalendarDay, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		cal.Days = append(cal.Days, l.calendarDay(date, day))
	}

	cal.Statistics = monthStats(cal.Days)
	return cal, nil
}

func (l *Library) calendarDay(date string, day int) models.CalendarDay {
	entry := models.CalendarDay{
		Date:  date,
		Day:   day,
		Files: []models.CalendarFile{},
	}

	records := l.ScanDate(date)
	if len(records) == 0 {
		return entry
	}

	entry.HasContent = true
	entry.FileCount = len(records)

	firstMinute, lastMinute := -1, -1
	for _, rec := range records {
		if rec.Type == models.TypeVideo {
			entry.Videos++
		} else {
			entry.Photos++
		}
		entry.Files = append(entry.Files, models.CalendarFile{
			Filename: rec.Filename,
			Type:     rec.Type,
			Time:     rec.Time,
			Path:     rec.Path,
		})

		m := rec.MinuteOfDay()
		if firstMinute < 0 || m < firstMinute {
			firstMinute = m
		}
		if m > lastMinute {
			lastMinute = m
		}
	}

	entry.FirstPhotoTime = fmt.Sprintf("%02d:%02d", firstMinute/60, firstMinute%60)
	entry.LastPhotoTime = fmt.Sprintf("%02d:%02d", lastMinute/60, lastMinute%60)
	entry.TimeSpanHours = round1(float64(lastMinute-firstMinute) / 60)

	return entry
}

func monthStats(days []models.CalendarDay) models.MonthStats {
	stats := models.MonthStats{
		TotalDays:           len(days),
		MostProductiveHours: []models.ProductiveHour{},
	}

	var hourCounts [24]int

	for _, day := range days {
		if !day.HasContent {
			continue
		}
		stats.ActiveDays++
		stats.TotalFiles += day.FileCount
		stats.TotalPhotos += day.Photos
		stats.TotalVideos += day.Videos

		if stats.MostActiveDay == nil || day.FileCount > stats.MostActiveDay.Count {
			stats.MostActiveDay = &models.DayCount{Date: day.Date, Count: day.FileCount}
		}
		if stats.LeastActiveDay == nil || day.FileCount < stats.LeastActiveDay.Count {
			stats.LeastActiveDay = &models.DayCount{Date: day.Date, Count: day.FileCount}
		}

		if t, err := time.Parse("2006-01-02", day.Date); err == nil {
			stats.ActivityByDayOfWeek[int(t.Weekday())] += day.FileCount
		}

		for _, f := range day.Files {
			if len(f.Time) >= 2 {
				h := (int(f.Time[0]-'0')*10 + int(f.Time[1]-'0')) % 24
				hourCounts[h]++
			}
		}
	}

	if stats.ActiveDays > 0 {
		stats.AvgFilesPerActiveDay = round1(float64(stats.TotalFiles) / float64(stats.ActiveDays))
	}

	stats.MostProductiveHours = topHours(hourCounts, 5)
	return stats
}

// topHours returns the n busiest hours, most active first; ties keep
// hour order. Empty hours never appear.
func topHours(counts [24]int, n int) []models.ProductiveHour {
	type hc struct{ hour, count int }
	var all []hc
	for h, c := range counts {
		if c > 0 {
			all = append(all, hc{h, c})
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].count > all[j].count })

	if len(all) > n {
		all = all[:n]
	}
	out := make([]models.ProductiveHour, 0, len(all))
	for _, e := range all {
		out = append(out, models.ProductiveHour{
			Hour:  fmt.Sprintf("%02d:00", e.hour),
			Count: e.count,
		})
	}
	return out
}

func monthNavigation(first time.Time) models.MonthNavigation {
	ref := func(t time.Time) models.MonthRef {
		return models.MonthRef{
			Year:  t.Year(),
			Month: int(t.Month()),
			Label: t.Format("January 2006"),
		}
	}
	return models.MonthNavigation{
		Previous: ref(first.AddDate(0, -1, 0)),
		Current:  ref(first),
		Next:     ref(first.AddDate(0, 1, 0)),
	}
}
