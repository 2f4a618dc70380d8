package webapp

import (
	"fmt"
	"net/http"

	"github.com/AEMWks/fotodiario/app"
	"github.com/AEMWks/fotodiario/models"
)

// criteriaFromQuery assembles the explicit filter struct out of the
// request's query parameters. Date parameters are the only ones strict
// enough to reject the request; everything else silently defaults.
func criteriaFromQuery(r *http.Request) (models.SearchCriteria, error) {
	q := r.URL.Query()

	criteria := models.SearchCriteria{
		Query: q.Get("query"),
		Type:  mediaTypeParam(r),
	}

	if date := q.Get("date"); date != "" {
		if !app.ValidDate(date) {
			return criteria, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
		}
		criteria.Date = date
	}

	start, end := q.Get("start_date"), q.Get("end_date")
	if start != "" || end != "" {
		if start == "" || end == "" {
			return criteria, fmt.Errorf("start_date and end_date must be given together")
		}
		if !app.ValidDate(start) || !app.ValidDate(end) {
			return criteria, fmt.Errorf("invalid date range, expected YYYY-MM-DD")
		}
		if start > end {
			return criteria, fmt.Errorf("start_date must not be after end_date")
		}
		criteria.StartDate = start
		criteria.EndDate = end
	}

	criteria.Year = getIntPtr(r, "year")
	criteria.Month = getIntPtr(r, "month")
	criteria.Day = getIntPtr(r, "day")
	criteria.Hour = getIntPtr(r, "hour")
	criteria.MinSize = getInt64Ptr(r, "min_size")
	criteria.MaxSize = getInt64Ptr(r, "max_size")

	return criteria, nil
}

// criteriaEcho reflects the applied filters back to the client, set
// fields only.
func criteriaEcho(c models.SearchCriteria) map[string]any {
	echo := map[string]any{}

	if c.Query != "" {
		echo["query"] = c.Query
	}
	if c.Type != "" && c.Type != models.TypeAll {
		echo["type"] = c.Type
	}
	if c.Date != "" {
		echo["date"] = c.Date
	}
	if c.StartDate != "" {
		echo["start_date"] = c.StartDate
		echo["end_date"] = c.EndDate
	}
	if c.Year != nil {
		echo["year"] = *c.Year
	}
	if c.Month != nil {
		echo["month"] = *c.Month
	}
	if c.Day != nil {
		echo["day"] = *c.Day
	}
	if c.Hour != nil {
		echo["hour"] = *c.Hour
	}
	if c.MinSize != nil {
		echo["min_size"] = *c.MinSize
	}
	if c.MaxSize != nil {
		echo["max_size"] = *c.MaxSize
	}

	return echo
}
