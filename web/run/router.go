package webapp

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func router(webapp *WebApp) http.Handler {
	r := chi.NewRouter()

	r.Use(webapp.requestLogger)
	r.Use(webapp.cors)
	r.Use(webapp.rateLimit)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", webapp.info())
		r.Get("/health", webapp.health())

		r.Get("/photos/{year}/{month}/{day}", webapp.photosByDay())
		r.Get("/search", webapp.search())
		r.Get("/stats", webapp.stats())
		r.Get("/dates", webapp.dates())
		r.Get("/feed", webapp.feed())
		r.Get("/random", webapp.random())
		r.Get("/export", webapp.export())

		r.Get("/calendar", webapp.calendar())
		r.Get("/calendar/{year}/{month}", webapp.calendar())

		r.Route("/comments", func(r chi.Router) {
			r.Get("/stats", webapp.commentStats())
			r.Get("/range/{start}/{end}", webapp.commentRange())
			r.Get("/{date}", webapp.getComment())
			r.Post("/{date}", webapp.saveComment())
			r.Delete("/{date}", webapp.deleteComment())
		})
	})

	// The public media namespace the record paths point into. The
	// comment documents live under the same root but are not media.
	mediaServer := http.StripPrefix("/photos/", http.FileServer(http.Dir(webapp.Library.BasePath())))
	r.Get("/photos/*", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(chi.URLParam(r, "*"), "comments") {
			http.NotFound(w, r)
			return
		}
		mediaServer.ServeHTTP(w, r)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		webapp.respondError(w, r, http.StatusNotFound, codeNotFound, "Endpoint not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		webapp.respondError(w, r, http.StatusMethodNotAllowed, codeMethodNotAllowed, "Method not allowed", nil)
	})

	return r
}
