package webapp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// calendar serves the month view. Year and month come from URL params,
// then query params, then default to the current month.
func (webapp *WebApp) calendar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().In(webapp.loc)

		year, err := calendarParam(r, "year", now.Year())
		if err != nil {
			webapp.respondError(w, r, http.StatusBadRequest, codeValidation, "year must be numeric", nil)
			return
		}
		month, err := calendarParam(r, "month", int(now.Month()))
		if err != nil {
			webapp.respondError(w, r, http.StatusBadRequest, codeValidation, "month must be numeric", nil)
			return
		}

		cal, err := webapp.Library.Calendar(year, month)
		if err != nil {
			webapp.respondError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
			return
		}

		webapp.respondSuccess(w, r, http.StatusOK, cal, nil)
	}
}

func calendarParam(r *http.Request, name string, def int) (int, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		raw = r.URL.Query().Get(name)
	}
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
