package webapp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/AEMWks/fotodiario/app"
)

// export streams a slice of the library either as a ZIP archive or as
// the JSON metadata document. The ZIP bypasses the envelope; it is the
// one endpoint whose body is not JSON.
func (webapp *WebApp) export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		req := app.ExportRequest{
			Type:      app.ExportType(q.Get("type")),
			Date:      q.Get("date"),
			Month:     q.Get("month"),
			StartDate: q.Get("start_date"),
			EndDate:   q.Get("end_date"),
			MaxFiles:  webapp.Config.API.MaxExportFiles,
		}
		if req.Type == "" {
			req.Type = app.ExportDay
		}
		if (req.Type == app.ExportDay || req.Type == app.ExportWeek) && req.Date == "" {
			req.Date = webapp.Library.Today()
		}

		sel, err := webapp.Library.ResolveExport(req)
		if err != nil {
			webapp.respondError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
			return
		}
		if len(sel.Files) == 0 {
			webapp.respondError(w, r, http.StatusNotFound, codeNotFound, "No files found for the requested export", nil)
			return
		}

		switch q.Get("format") {
		case "", "zip":
			w.Header().Set("Content-Type", "application/zip")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sel.Name+".zip"))
			if err := sel.WriteZip(w); err != nil {
				// Headers are gone; all we can do is log.
				webapp.Log.Error().Err(err).Str("export", sel.Name).Msg("zip stream failed")
			}

		case "json":
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sel.Name+".json"))
			webapp.respondSuccess(w, r, http.StatusOK, sel.Metadata(time.Now().In(webapp.loc)), apiMeta{
				"export_name": sel.Name,
				"file_count":  len(sel.Files),
			})

		default:
			webapp.respondError(w, r, http.StatusBadRequest, codeValidation, "format must be zip or json", nil)
		}
	}
}
