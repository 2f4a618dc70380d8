package webapp

import (
	"net/http"

	"github.com/AEMWks/fotodiario/app"
	"github.com/AEMWks/fotodiario/models"
)

type searchSummary struct {
	TotalFound int               `json:"total_found"`
	Photos     int               `json:"photos"`
	Videos     int               `json:"videos"`
	TotalSize  int64             `json:"total_size"`
	DateRange  *models.DateRange `json:"date_range,omitempty"`
}

type searchResponse struct {
	Results    []models.MediaRecord `json:"results"`
	Pagination models.Pagination    `json:"pagination"`
	Criteria   map[string]any       `json:"search_criteria"`
	Sort       map[string]string    `json:"sort"`
	Summary    searchSummary        `json:"summary"`
}

func (webapp *WebApp) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := criteriaFromQuery(r)
		if err != nil {
			webapp.respondError(w, r, http.StatusBadRequest, codeValidation, err.Error(), nil)
			return
		}

		sortBy := sortKeyParam(r, models.SortByDate)
		sortOrder := sortOrderParam(r, "sort_order", models.SortDesc)
		page := getIntParam(r, "page", 1)
		limit := clamp(getIntParam(r, "limit", webapp.Config.API.DefaultPageSize), 1, webapp.Config.API.MaxPageSize)

		results := webapp.Library.Search(criteria)
		app.SortRecords(results, sortBy, sortOrder)

		items, pagination := app.Paginate(results, page, limit)

		summary := searchSummary{TotalFound: len(results)}
		for _, rec := range results {
			if rec.Type == models.TypeVideo {
				summary.Videos++
			} else {
				summary.Photos++
			}
			summary.TotalSize += rec.Size
		}
		if len(results) > 0 {
			earliest, latest := results[0].Date, results[0].Date
			for _, rec := range results {
				if rec.Date < earliest {
					earliest = rec.Date
				}
				if rec.Date > latest {
					latest = rec.Date
				}
			}
			summary.DateRange = &models.DateRange{Start: earliest, End: latest}
		}

		webapp.respondSuccess(w, r, http.StatusOK, searchResponse{
			Results:    items,
			Pagination: pagination,
			Criteria:   criteriaEcho(criteria),
			Sort:       map[string]string{"by": string(sortBy), "order": string(sortOrder)},
			Summary:    summary,
		}, nil)
	}
}
