package webapp

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/AEMWks/fotodiario/version"
)

// info describes the API itself: version, endpoints, limits.
func (webapp *WebApp) info() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		webapp.respondSuccess(w, r, http.StatusOK, map[string]any{
			"name":        "fotodiario",
			"api_version": webapp.Config.API.Version,
			"build": map[string]string{
				"version": version.Version,
				"commit":  version.Commit,
				"date":    version.BuildDate,
			},
			"timezone": webapp.Config.API.Timezone,
			"endpoints": []string{
				"/api/photos/{year}/{month}/{day}",
				"/api/search",
				"/api/stats",
				"/api/dates",
				"/api/feed",
				"/api/random",
				"/api/export",
				"/api/calendar/{year}/{month}",
				"/api/comments/{date}",
				"/api/comments/range/{start}/{end}",
				"/api/comments/stats",
				"/api/health",
			},
			"limits": map[string]int{
				"max_page_size":    webapp.Config.API.MaxPageSize,
				"max_feed_limit":   webapp.Config.API.MaxFeedLimit,
				"max_random_count": webapp.Config.API.MaxRandomCount,
				"max_export_files": webapp.Config.API.MaxExportFiles,
				"max_comment_len":  webapp.Config.API.MaxCommentLen,
			},
		}, nil)
	}
}

// health probes the two filesystem dependencies: the media tree must be
// readable and the comments directory writable. Degraded means the API
// can still answer read queries.
func (webapp *WebApp) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := webapp.Library.BasePath()
		checks := map[string]string{}
		status := "healthy"

		if info, err := os.Stat(base); err != nil || !info.IsDir() {
			checks["library"] = "base path missing or not a directory"
			status = "unhealthy"
		} else if _, err := os.ReadDir(base); err != nil {
			checks["library"] = "base path not readable"
			status = "unhealthy"
		} else {
			checks["library"] = "ok"
		}

		commentsDir := filepath.Join(base, "comments")
		if probe, err := os.CreateTemp(commentsDir, ".health-*"); err != nil {
			checks["comments"] = "comments directory not writable"
			if status == "healthy" {
				status = "degraded"
			}
		} else {
			probe.Close()
			os.Remove(probe.Name())
			checks["comments"] = "ok"
		}

		code := http.StatusOK
		if status == "unhealthy" {
			code = http.StatusServiceUnavailable
		}

		webapp.respondSuccess(w, r, code, map[string]any{
			"status": status,
			"checks": checks,
		}, nil)
	}
}
