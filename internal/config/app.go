package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultConfigFile = "config.yaml"

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type GoldAPI struct {
	BaseURL     string `mapstructure:"base_url"`
	AccessToken string `mapstructure:"access_token"`
}

type ForexAPI struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type Conversion struct {
	AZNRate             float64 `mapstructure:"azn_rate"`
	DefaultCurrency     string  `mapstructure:"default_currency"`
	FetchTimeoutSeconds int     `mapstructure:"fetch_timeout_seconds"`
}

type Sessions struct {
	MaxItems          int64 `mapstructure:"max_items"`
	TTLSeconds        int   `mapstructure:"ttl_seconds"`
	ReportIntervalSec int   `mapstructure:"report_interval_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	GoldAPI    GoldAPI    `mapstructure:"gold_api"`
	ForexAPI   ForexAPI   `mapstructure:"forex_api"`
	Conversion Conversion `mapstructure:"conversion"`
	Sessions   Sessions   `mapstructure:"sessions"`
	Logging    Logging    `mapstructure:"logging"`
}

func (c *AppConfig) HTTPClientTimeout() time.Duration {
	return time.Duration(c.HTTPClient.TimeoutSeconds) * time.Second
}

func (c *AppConfig) FetchTimeout() time.Duration {
	return time.Duration(c.Conversion.FetchTimeoutSeconds) * time.Second
}

func (c *AppConfig) SessionTTL() time.Duration {
	return time.Duration(c.Sessions.TTLSeconds) * time.Second
}

func (c *AppConfig) SessionReportInterval() time.Duration {
	return time.Duration(c.Sessions.ReportIntervalSec) * time.Second
}

// Init loads configuration from path (config.yaml when empty), an optional .env file
// and the environment. Environment variables win over the file.
func Init(path string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		// the file is optional unless asked for by name
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	bindEnv(v)

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("gold_api.base_url", "https://www.goldapi.io/api")
	v.SetDefault("forex_api.base_url", "https://api.fastforex.io")
	v.SetDefault("conversion.azn_rate", 1.7)
	v.SetDefault("conversion.default_currency", "AZN")
	v.SetDefault("conversion.fetch_timeout_seconds", 10)
	v.SetDefault("sessions.max_items", 10000)
	v.SetDefault("sessions.ttl_seconds", 1800)
	v.SetDefault("sessions.report_interval_seconds", 60)
	v.SetDefault("logging.level", "info")
}

func bindEnv(v *viper.Viper) {
	// http
	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// upstream apis
	_ = v.BindEnv("gold_api.base_url", "GOLD_API_BASE_URL")
	_ = v.BindEnv("gold_api.access_token", "GOLD_API_ACCESS_TOKEN")
	_ = v.BindEnv("forex_api.base_url", "FOREX_API_BASE_URL")
	_ = v.BindEnv("forex_api.api_key", "FOREX_API_KEY")

	// conversion
	_ = v.BindEnv("conversion.azn_rate", "AZN_RATE")
	_ = v.BindEnv("conversion.fetch_timeout_seconds", "FETCH_TIMEOUT_SECONDS")

	// sessions
	_ = v.BindEnv("sessions.max_items", "SESSION_MAX_ITEMS")
	_ = v.BindEnv("sessions.ttl_seconds", "SESSION_TTL_SECONDS")
	_ = v.BindEnv("sessions.report_interval_seconds", "SESSION_REPORT_SECONDS")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
}
