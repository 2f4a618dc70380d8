package models

type LibraryConfig struct {
	BasePath        string   `mapstructure:"base_path"`
	PhotoExtensions []string `mapstructure:"photo_extensions"`
	VideoExtensions []string `mapstructure:"video_extensions"`
	CacheEnabled    bool     `mapstructure:"cache_enabled"`
	CacheTTL        int      `mapstructure:"cache_ttl"` // seconds
}

type ServerConfig struct {
	Port        int     `mapstructure:"port"`
	RateLimit   float64 `mapstructure:"rate_limit"` // requests per second per client, 0 = off
	RateBurst   int     `mapstructure:"rate_burst"`
	CORSEnabled bool    `mapstructure:"cors_enabled"`
	Debug       bool    `mapstructure:"debug"`
}

type APIConfig struct {
	Version         string `mapstructure:"version"`
	Timezone        string `mapstructure:"timezone"`
	DefaultPageSize int    `mapstructure:"default_page_size"`
	MaxPageSize     int    `mapstructure:"max_page_size"`
	MaxFeedLimit    int    `mapstructure:"max_feed_limit"`
	MaxRandomCount  int    `mapstructure:"max_random_count"`
	MaxExportFiles  int    `mapstructure:"max_export_files"`
	MaxCommentLen   int    `mapstructure:"max_comment_length"`
}

type AppConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Library LibraryConfig `mapstructure:"library"`
	API     APIConfig     `mapstructure:"api"`
}
