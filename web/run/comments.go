package webapp

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/AEMWks/fotodiario/app"
)

func (webapp *WebApp) getComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")

		comment, err := webapp.Comments.Get(date)
		if err != nil {
			webapp.commentError(w, r, date, err)
			return
		}
		if comment == nil {
			webapp.respondError(w, r, http.StatusNotFound, codeNotFound, "No comment for "+date, nil)
			return
		}

		webapp.respondSuccess(w, r, http.StatusOK, comment, nil)
	}
}

// saveComment creates or updates the day's comment. 201 on create, 200
// on update.
func (webapp *WebApp) saveComment() http.HandlerFunc {
	type saveRequest struct {
		Comment string `json:"comment"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")

		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			webapp.respondError(w, r, http.StatusBadRequest, codeValidation, "unreadable request body", nil)
			return
		}

		var req saveRequest
		if err := json.Unmarshal(body, &req); err != nil {
			webapp.respondError(w, r, http.StatusBadRequest, codeValidation, "body must be JSON with a \"comment\" field", nil)
			return
		}

		comment, created, err := webapp.Comments.Save(date, req.Comment)
		if err != nil {
			webapp.commentError(w, r, date, err)
			return
		}

		webapp.Library.InvalidateDate(date)

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		webapp.respondSuccess(w, r, status, comment, apiMeta{"created": created})
	}
}

func (webapp *WebApp) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := chi.URLParam(r, "date")

		deleted, err := webapp.Comments.Delete(date)
		if err != nil {
			webapp.commentError(w, r, date, err)
			return
		}
		if !deleted {
			webapp.respondError(w, r, http.StatusNotFound, codeNotFound, "No comment for "+date, nil)
			return
		}

		webapp.Library.InvalidateDate(date)
		webapp.respondSuccess(w, r, http.StatusOK, map[string]string{"date": date, "status": "deleted"}, nil)
	}
}

func (webapp *WebApp) commentRange() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := chi.URLParam(r, "start")
		end := chi.URLParam(r, "end")

		comments, err := webapp.Comments.Range(start, end)
		if err != nil {
			webapp.respondError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
			return
		}

		webapp.respondSuccess(w, r, http.StatusOK, map[string]any{
			"comments": comments,
			"count":    len(comments),
			"range":    map[string]string{"start": start, "end": end},
		}, nil)
	}
}

func (webapp *WebApp) commentStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := webapp.Comments.Stats()
		if err != nil {
			webapp.respondError(w, r, http.StatusInternalServerError, codeInternal, "Could not read comment store", err.Error())
			return
		}

		webapp.respondSuccess(w, r, http.StatusOK, stats, nil)
	}
}

// commentError maps store errors onto the API taxonomy.
func (webapp *WebApp) commentError(w http.ResponseWriter, r *http.Request, date string, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidDate):
		webapp.respondError(w, r, http.StatusBadRequest, codeValidation, "Invalid date format, expected YYYY-MM-DD", nil)
	case errors.Is(err, app.ErrEmptyComment):
		webapp.respondError(w, r, http.StatusBadRequest, codeValidation, "Comment must not be empty", nil)
	default:
		webapp.respondError(w, r, http.StatusInternalServerError, codeInternal, "Comment operation failed for "+date, err.Error())
	}
}
