package webapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// photosByDay answers the oldest contract of the API: a bare JSON array
// of the day's filenames, ascending. No envelope, for compatibility with
// the original clients.
func (webapp *WebApp) photosByDay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year := chi.URLParam(r, "year")
		month := chi.URLParam(r, "month")
		day := chi.URLParam(r, "day")

		if !isDigits(year, 4) || !isDigits(month, 2) || !isDigits(day, 2) {
			webapp.respondError(w, r, http.StatusBadRequest, codeValidation, "Invalid date format, expected YYYY/MM/DD", nil)
			return
		}

		records := webapp.Library.ScanDate(year + "-" + month + "-" + day)

		filenames := make([]string, 0, len(records))
		for _, rec := range records {
			filenames = append(filenames, rec.Filename)
		}

		webapp.writeJSON(w, http.StatusOK, filenames)
	}
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
