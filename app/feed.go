package app

import (
	"sort"
	"time"

	"github.com/AEMWks/fotodiario/models"
)

// FeedPage paginates over distinct active dates: one date is one feed
// item regardless of how many files it holds. Default order is newest
// first.
func (l *Library) FeedPage(page, limit int, order models.SortOrder) ([]models.FeedEntry, models.Pagination) {
	dates := l.ActiveDates()

	if order == models.SortDesc || order == "" {
		sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	}

	pageDates, pagination := PaginateDates(dates, page, limit)

	entries := make([]models.FeedEntry, 0, len(pageDates))
	for _, date := range pageDates {
		if entry, ok := l.FeedEntry(date); ok {
			entries = append(entries, entry)
		}
	}
	return entries, pagination
}

// FeedEntry builds the date-level feed item: the day's files plus its
// summary. Returns false for dates without content.
func (l *Library) FeedEntry(date string) (models.FeedEntry, bool) {
	records := l.ScanDate(date)
	if len(records) == 0 {
		return models.FeedEntry{}, false
	}

	entry := models.FeedEntry{
		Date:  date,
		Files: records,
	}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		entry.DayOfWeek = t.Weekday().String()
	}
	entry.Summary = daySummary(records)

	return entry, true
}

func daySummary(records []models.MediaRecord) models.DaySummary {
	summary := models.DaySummary{TotalFiles: len(records)}

	first, last := records[0], records[0]
	for _, rec := range records {
		if rec.Type == models.TypeVideo {
			summary.Videos++
		} else {
			summary.Photos++
		}
		summary.TotalSize += rec.Size

		if rec.Time < first.Time {
			first = rec
		}
		if rec.Time > last.Time {
			last = rec
		}
	}

	summary.TotalSizeMB = MBytes(summary.TotalSize)
	summary.FirstCapture = first.Time
	summary.LastCapture = last.Time

	if first.Time != last.Time {
		span := last.MinuteOfDay() - first.MinuteOfDay()
		summary.TimeSpan = &models.TimeSpan{
			Hours:        span / 60,
			Minutes:      span % 60,
			TotalMinutes: span,
		}
	}

	return summary
}

// RecentActivity reports per-day counts for the last n days including
// today, oldest first. Days without content still appear with count 0.
func (l *Library) RecentActivity(days int) []models.ActivityDay {
	today := l.now()

	activity := make([]models.ActivityDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		records := l.ScanDate(date)
		activity = append(activity, models.ActivityDay{
			Date:       date,
			Count:      len(records),
			HasContent: len(records) > 0,
		})
	}
	return activity
}
