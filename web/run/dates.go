package webapp

import (
	"net/http"
	"sort"

	"github.com/AEMWks/fotodiario/app"
	"github.com/AEMWks/fotodiario/models"
)

type datesSummary struct {
	TotalDates  int    `json:"total_dates"`
	TotalFiles  int    `json:"total_files"`
	TotalPhotos int    `json:"total_photos"`
	TotalVideos int    `json:"total_videos"`
	OldestDate  string `json:"oldest_date,omitempty"`
	NewestDate  string `json:"newest_date,omitempty"`
}

// dates lists the days with content, newest first. The simple format
// returns date strings only; detailed includes per-day counts.
func (webapp *WebApp) dates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		limit := clamp(getIntParam(r, "limit", 100), 1, 1000)
		detailed := q.Get("format") != "simple"

		start, end := q.Get("start_date"), q.Get("end_date")
		if (start != "" && !app.ValidDate(start)) || (end != "" && !app.ValidDate(end)) {
			webapp.respondError(w, r, http.StatusBadRequest, codeValidation, "start_date and end_date must be YYYY-MM-DD", nil)
			return
		}

		infos := webapp.Library.Dates()
		if start != "" || end != "" {
			kept := make([]models.DateInfo, 0, len(infos))
			for _, info := range infos {
				if start != "" && info.Date < start {
					continue
				}
				if end != "" && info.Date > end {
					continue
				}
				kept = append(kept, info)
			}
			infos = kept
		}
		sort.SliceStable(infos, func(i, j int) bool { return infos[i].Date > infos[j].Date })

		summary := datesSummary{TotalDates: len(infos)}
		for _, info := range infos {
			summary.TotalFiles += info.FileCount
			summary.TotalPhotos += info.Photos
			summary.TotalVideos += info.Videos
		}
		if len(infos) > 0 {
			summary.NewestDate = infos[0].Date
			summary.OldestDate = infos[len(infos)-1].Date
		}

		if len(infos) > limit {
			infos = infos[:limit]
		}

		var payload any
		if detailed {
			payload = infos
		} else {
			simple := make([]string, len(infos))
			for i, info := range infos {
				simple[i] = info.Date
			}
			payload = simple
		}

		webapp.respondSuccess(w, r, http.StatusOK, map[string]any{
			"dates":   payload,
			"summary": summary,
		}, apiMeta{"limit": limit})
	}
}
