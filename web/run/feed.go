package webapp

import (
	"fmt"
	"net/http"

	"github.com/AEMWks/fotodiario/models"
)

type feedResponse struct {
	Entries        []models.FeedEntry   `json:"feed"`
	Pagination     models.Pagination    `json:"pagination"`
	RecentActivity []models.ActivityDay `json:"recent_activity,omitempty"`
	Links          map[string]string    `json:"links"`
}

// feed pages through the diary date by date, newest first by default.
func (webapp *WebApp) feed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := getIntParam(r, "page", 1)
		if page < 1 {
			page = 1
		}
		limit := clamp(getIntParam(r, "limit", webapp.Config.API.DefaultPageSize), 1, webapp.Config.API.MaxFeedLimit)
		order := sortOrderParam(r, "sort", models.SortDesc)

		entries, pagination := webapp.Library.FeedPage(page, limit, order)

		resp := feedResponse{
			Entries:    entries,
			Pagination: pagination,
			Links:      feedLinks(pagination, limit, order),
		}

		if r.URL.Query().Get("include_activity") == "true" {
			days := clamp(getIntParam(r, "activity_days", 7), 1, 30)
			resp.RecentActivity = webapp.Library.RecentActivity(days)
		}

		webapp.respondSuccess(w, r, http.StatusOK, resp, nil)
	}
}

func feedLinks(p models.Pagination, limit int, order models.SortOrder) map[string]string {
	link := func(page int) string {
		return fmt.Sprintf("/api/feed?page=%d&limit=%d&sort=%s", page, limit, order)
	}

	links := map[string]string{
		"self":  link(p.CurrentPage),
		"first": link(1),
	}
	if p.TotalPages > 0 {
		links["last"] = link(p.TotalPages)
	}
	if p.HasNext {
		links["next"] = link(p.CurrentPage + 1)
	}
	if p.HasPrev {
		links["prev"] = link(p.CurrentPage - 1)
	}
	return links
}
