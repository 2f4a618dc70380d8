package app

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/AEMWks/fotodiario/models"
)

// LoadConfig reads the YAML config file at path and applies environment
// overrides. Every value has a default so a missing file is not fatal.
func LoadConfig(path string) (*models.AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	setDefaults(v)

	v.BindEnv("library.base_path", "PHOTOS_PATH")
	v.BindEnv("server.port", "PORT")
	v.BindEnv("api.timezone", "TZ")
	v.BindEnv("server.debug", "DEBUG_MODE")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file falls back to defaults and env vars.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	var cfg models.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 0.0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("server.cors_enabled", true)
	v.SetDefault("server.debug", false)

	v.SetDefault("library.base_path", "/data/fotos")
	v.SetDefault("library.photo_extensions", []string{"jpg", "jpeg", "png"})
	v.SetDefault("library.video_extensions", []string{"mp4"})
	v.SetDefault("library.cache_enabled", true)
	v.SetDefault("library.cache_ttl", 300)

	v.SetDefault("api.version", "1.0")
	v.SetDefault("api.timezone", "Europe/Madrid")
	v.SetDefault("api.default_page_size", 10)
	v.SetDefault("api.max_page_size", 100)
	v.SetDefault("api.max_feed_limit", 50)
	v.SetDefault("api.max_random_count", 50)
	v.SetDefault("api.max_export_files", 10000)
	v.SetDefault("api.max_comment_length", 5000)
}
