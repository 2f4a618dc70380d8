package app

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/AEMWks/fotodiario/models"
)

// Matches applies every set criterion with AND semantics.
func (l *Library) Matches(rec models.MediaRecord, c models.SearchCriteria) bool {
	if c.Type != "" && c.Type != models.TypeAll && rec.Type != c.Type {
		return false
	}
	if c.Date != "" && rec.Date != c.Date {
		return false
	}
	if c.StartDate != "" && c.EndDate != "" {
		// Zero-padded dates compare correctly as strings.
		if rec.Date < c.StartDate || rec.Date > c.EndDate {
			return false
		}
	}
	if c.Year != nil && rec.Year != *c.Year {
		return false
	}
	if c.Month != nil && rec.Month != *c.Month {
		return false
	}
	if c.Day != nil && rec.Day != *c.Day {
		return false
	}
	if c.Hour != nil && rec.Hour() != *c.Hour {
		return false
	}
	if c.MinSize != nil && rec.Size < *c.MinSize {
		return false
	}
	if c.MaxSize != nil && rec.Size > *c.MaxSize {
		return false
	}
	if c.ExcludeRecentDays > 0 {
		cutoff := l.now().AddDate(0, 0, -c.ExcludeRecentDays).Format("2006-01-02")
		if rec.Date >= cutoff {
			return false
		}
	}
	if c.Query != "" {
		haystack := strings.ToLower(rec.Date + " " + rec.Filename)
		if !strings.Contains(haystack, strings.ToLower(c.Query)) {
			return false
		}
	}
	return true
}

// Filter returns the records matching the criteria, preserving order.
func (l *Library) Filter(records []models.MediaRecord, c models.SearchCriteria) []models.MediaRecord {
	if c.Empty() {
		return records
	}
	out := make([]models.MediaRecord, 0, len(records))
	for _, rec := range records {
		if l.Matches(rec, c) {
			out = append(out, rec)
		}
	}
	return out
}

// Search runs a full-tree scan filtered by the criteria.
func (l *Library) Search(c models.SearchCriteria) []models.MediaRecord {
	return l.Filter(l.Scan(), c)
}

// SortRecords orders records by the given key. The sort is stable: ties
// keep their scan order. Unknown keys fall back to date.
func SortRecords(records []models.MediaRecord, key models.SortKey, order models.SortOrder) {
	desc := order == models.SortDesc

	less := func(a, b models.MediaRecord) int {
		switch key {
		case models.SortBySize:
			switch {
			case a.Size < b.Size:
				return -1
			case a.Size > b.Size:
				return 1
			}
			return 0
		case models.SortByFilename:
			return strings.Compare(a.Filename, b.Filename)
		case models.SortByTime:
			return strings.Compare(a.Time, b.Time)
		default:
			return strings.Compare(a.Date, b.Date)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		cmp := less(records[i], records[j])
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// Paginate slices one 1-based page out of items. Out-of-range pages
// yield an empty page with correct bookkeeping rather than an error.
func Paginate(items []models.MediaRecord, page, limit int) ([]models.MediaRecord, models.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(items)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	p := models.Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNext:      page < totalPages,
		HasPrev:      page > 1 && total > 0,
	}

	start := (page - 1) * limit
	if start >= total {
		return []models.MediaRecord{}, p
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], p
}

// PaginateDates is Paginate for date-level feed entries.
func PaginateDates(dates []string, page, limit int) ([]string, models.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(dates)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	p := models.Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNext:      page < totalPages,
		HasPrev:      page > 1 && total > 0,
	}

	start := (page - 1) * limit
	if start >= total {
		return []string{}, p
	}
	end := start + limit
	if end > total {
		end = total
	}
	return dates[start:end], p
}

// Sample draws n records uniformly without replacement via a partial
// Fisher-Yates shuffle. When n covers the whole list the list is
// returned unchanged, original order intact.
func Sample(records []models.MediaRecord, n int, rng *rand.Rand) []models.MediaRecord {
	if n <= 0 {
		return []models.MediaRecord{}
	}
	if n >= len(records) {
		return records
	}

	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := make([]models.MediaRecord, n)
	for i := 0; i < n; i++ {
		out[i] = records[idx[i]]
	}
	return out
}
