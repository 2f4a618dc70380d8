package webapp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/AEMWks/fotodiario/app"
	"github.com/AEMWks/fotodiario/models"
)

// WebApp wires the media library and the comment store to the HTTP
// surface. Everything it serves is computed per request; the only
// mutable state behind it is the comment store.
type WebApp struct {
	Config   *models.AppConfig
	Library  *app.Library
	Comments *app.CommentStore
	Log      zerolog.Logger

	loc *time.Location
}

func New(cfg *models.AppConfig, logger zerolog.Logger) (*WebApp, error) {
	library := app.NewLibrary(cfg.Library, logger)

	comments, err := app.NewCommentStore(cfg.Library.BasePath, cfg.API.MaxCommentLen)
	if err != nil {
		return nil, fmt.Errorf("initializing comment store: %w", err)
	}

	loc, err := time.LoadLocation(cfg.API.Timezone)
	if err != nil {
		logger.Warn().Str("timezone", cfg.API.Timezone).Msg("unknown timezone, using UTC")
		loc = time.UTC
	}

	return &WebApp{
		Config:   cfg,
		Library:  library,
		Comments: comments,
		Log:      logger,
		loc:      loc,
	}, nil
}

// GetListenAddr resolves the listen address from the config.
func (webapp *WebApp) GetListenAddr() string {
	port := 8080
	if webapp.Config != nil && webapp.Config.Server.Port > 0 {
		port = webapp.Config.Server.Port
	}
	return fmt.Sprintf(":%d", port)
}

// GetRouter builds the chi handler tree.
func (webapp *WebApp) GetRouter() http.Handler {
	return router(webapp)
}
