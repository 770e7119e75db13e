package config

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultUserAgent is the User-Agent string sent to the metadata provider.
const DefaultUserAgent = "WhereCanIWatch/1.0 (+https://github.com/wherecaniwatch/finder)"

type Config struct {
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "10s"
	UserAgent             string `mapstructure:"user_agent"`
	CountriesFile         string `mapstructure:"countries_file"` // empty uses the bundled table
	TMDB                  struct {
		APIKey       string `mapstructure:"api_key"`
		BaseURL      string `mapstructure:"base_url"`
		ImageBaseURL string `mapstructure:"image_base_url"`
		ProviderID   int    `mapstructure:"provider_id"`
	} `mapstructure:"tmdb"`
	Server struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	GRPC struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"grpc"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
	LogLevel      string `mapstructure:"log_level"`
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	Cache         struct {
		Type  string `mapstructure:"type"` // "", "memory" or "redis"
		Size  int    `mapstructure:"size"`
		TTL   string `mapstructure:"ttl"`
		Redis struct {
			Address  string `mapstructure:"address"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
		} `mapstructure:"redis"`
	} `mapstructure:"cache"`
}

// APIKeyConfigured reports whether a provider API key is set.
func (c *Config) APIKeyConfigured() bool {
	return strings.TrimSpace(c.TMDB.APIKey) != ""
}

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stdout,
		NoColor: false,
	}).With().Timestamp().Logger()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.image_base_url", "https://image.tmdb.org/t/p/w342")
	v.SetDefault("tmdb.provider_id", 8)
	v.SetDefault("client_timeout", "10s")
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("countries_file", "")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("grpc.enabled", false)
	v.SetDefault("grpc.port", 5001)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 50)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("cache.type", "")
	v.SetDefault("cache.size", 500)
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.redis.address", "")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unprefixed variables kept for compatibility with existing deployments
	_ = v.BindEnv("tmdb.api_key", "APP_TMDB_API_KEY", "TMDB_API_KEY")
	_ = v.BindEnv("server.port", "APP_SERVER_PORT", "PORT")
	_ = v.BindEnv("log_level", "APP_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("sentry.dsn", "APP_SENTRY_DSN", "SENTRY_DSN")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyDotEnv(&config, ".env")

	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	return &config, nil
}

// applyDotEnv fills the API key and port from a dotenv file when the
// environment and config file left them unset.
func applyDotEnv(config *Config, path string) {
	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return
	}

	if config.TMDB.APIKey == "" {
		config.TMDB.APIKey = env.GetString("TMDB_API_KEY")
	}
	if _, ok := os.LookupEnv("PORT"); !ok && env.IsSet("PORT") {
		if port := env.GetInt("PORT"); port > 0 {
			config.Server.Port = port
		}
	}
	logger.Debug().Str("path", path).Msg("Loaded dotenv file")
}

// ConfigureLogger applies the configured level and optional rotating file sink
// to the package logger.
func ConfigureLogger(config *Config) {
	level := zerolog.InfoLevel // default
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stdout}
	if config.LogFile != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    config.LogMaxSizeMB,
			MaxBackups: config.LogMaxBackups,
			Compress:   true,
		})
	}

	logger = zerolog.New(out).With().Timestamp().Logger().Level(level)
	logger.Info().Str("level", level.String()).Str("log_file", config.LogFile).Msg("Logging configured")
}

func GetLogger() zerolog.Logger {
	return logger
}
