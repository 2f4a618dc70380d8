package webapp

import (
	"net/http"

	"github.com/AEMWks/fotodiario/app"
	"github.com/AEMWks/fotodiario/models"
)

// stats aggregates the whole library, optionally narrowed by a date
// range and media type.
func (webapp *WebApp) stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		criteria := models.SearchCriteria{Type: mediaTypeParam(r)}

		start, end := q.Get("start_date"), q.Get("end_date")
		if start != "" || end != "" {
			if !app.ValidDate(start) || !app.ValidDate(end) {
				webapp.respondError(w, r, http.StatusBadRequest, codeValidation, "start_date and end_date must both be YYYY-MM-DD", nil)
				return
			}
			if start > end {
				webapp.respondError(w, r, http.StatusBadRequest, codeValidation, "start_date must not be after end_date", nil)
				return
			}
			criteria.StartDate = start
			criteria.EndDate = end
		}

		records := webapp.Library.Search(criteria)

		stats := app.WithCharts(app.BuildStats(records))
		stats.Filtered = !criteria.Empty()
		stats.TypeFilter = criteria.Type
		if criteria.StartDate != "" {
			stats.DateRange = &models.DateRange{Start: criteria.StartDate, End: criteria.EndDate}
		}

		webapp.respondSuccess(w, r, http.StatusOK, stats, nil)
	}
}
