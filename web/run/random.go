package webapp

import (
	"math/rand"
	"net/http"

	"github.com/AEMWks/fotodiario/app"
	"github.com/AEMWks/fotodiario/models"
)

type randomStatistics struct {
	RequestedCount int   `json:"requested_count"`
	ReturnedCount  int   `json:"returned_count"`
	PoolSize       int   `json:"pool_size"`
	Photos         int   `json:"photos"`
	Videos         int   `json:"videos"`
	TotalSize      int64 `json:"total_size"`
}

type simpleRandomFile struct {
	Filename string           `json:"filename"`
	Date     string           `json:"date"`
	Type     models.MediaType `json:"type"`
	Path     string           `json:"path"`
}

// random draws a uniform sample from the filtered library.
func (webapp *WebApp) random() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		count := clamp(getIntParam(r, "count", 1), 1, webapp.Config.API.MaxRandomCount)

		criteria := models.SearchCriteria{Type: mediaTypeParam(r)}

		start, end := q.Get("start_date"), q.Get("end_date")
		if start != "" || end != "" {
			if !app.ValidDate(start) || !app.ValidDate(end) || start > end {
				webapp.respondError(w, r, http.StatusBadRequest, codeValidation, "invalid date range, expected start_date<=end_date in YYYY-MM-DD", nil)
				return
			}
			criteria.StartDate = start
			criteria.EndDate = end
		}

		if days := getIntParam(r, "exclude_recent", 0); days > 0 {
			criteria.ExcludeRecentDays = days
		}

		pool := webapp.Library.Search(criteria)
		if len(pool) == 0 {
			webapp.respondError(w, r, http.StatusNotFound, codeNotFound, "No files match the given filters", nil)
			return
		}

		picked := app.Sample(pool, count, rand.New(rand.NewSource(rand.Int63())))

		if q.Get("format") == "simple" {
			simple := make([]simpleRandomFile, len(picked))
			for i, rec := range picked {
				simple[i] = simpleRandomFile{
					Filename: rec.Filename,
					Date:     rec.Date,
					Type:     rec.Type,
					Path:     rec.Path,
				}
			}
			webapp.respondSuccess(w, r, http.StatusOK, map[string]any{"files": simple}, nil)
			return
		}

		stats := randomStatistics{
			RequestedCount: count,
			ReturnedCount:  len(picked),
			PoolSize:       len(pool),
		}
		for _, rec := range picked {
			if rec.Type == models.TypeVideo {
				stats.Videos++
			} else {
				stats.Photos++
			}
			stats.TotalSize += rec.Size
		}

		webapp.respondSuccess(w, r, http.StatusOK, map[string]any{
			"files":      picked,
			"statistics": stats,
		}, nil)
	}
}
