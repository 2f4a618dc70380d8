package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/AEMWks/fotodiario/app"
	webapp "github.com/AEMWks/fotodiario/web/run"
)

func main() {
	configPath := flag.String("config", "fotodiario.yaml", "Path to configuration file")
	listenAddr := flag.String("listen", "", "Address to listen on (overrides config)")
	pretty := flag.Bool("pretty", false, "Human-readable log output")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if *pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("config", *configPath).Msg("loading configuration failed")
	}
	if cfg.Server.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	web, err := webapp.New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("initializing application failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := web.Library.Watch(ctx, logger); err != nil {
		logger.Warn().Err(err).Msg("cache watcher unavailable, falling back to TTL expiry")
	}

	addr := web.GetListenAddr()
	if *listenAddr != "" {
		addr = *listenAddr
	}

	logger.Info().Str("addr", addr).Str("library", cfg.Library.BasePath).Msg("starting server")
	if err := http.ListenAndServe(addr, web.GetRouter()); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
