package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config содержит конфигурацию сервера
type Config struct {
	Port               int
	MaxBasePrice       int64
	MaxExcessArea      float64
	MaxPricePerUnit    int64
	ReconcileTolerance int64
	ProgressBasis      string
	StrictQuotes       bool
	DatabaseURL        string
	RedisAddr          string
	RedisPassword      string
	CatalogCacheTTL    time.Duration
	CorsAllowedOrigins []string
	RateLimitPerMinute int
	OTELEndpoint       string
	OTELServiceName    string
	TraceSampleRatio   float64
	LogLevel           string
}

// LoadConfig загружает конфигурацию из переменных окружения
// и необязательного configs/config.yaml
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", 8000)
	v.SetDefault("MAX_BASE_PRICE", int64(100_000_000_000))
	v.SetDefault("MAX_EXCESS_AREA", 10_000.0)
	v.SetDefault("MAX_PRICE_PER_UNIT", int64(1_000_000_000))
	v.SetDefault("RECONCILE_TOLERANCE", int64(1))
	v.SetDefault("PROGRESS_MILESTONE_BASIS", "harga")
	v.SetDefault("STRICT_QUOTES", false)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("CATALOG_CACHE_TTL", 5*time.Minute)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.SetDefault("OTEL_ENDPOINT", "")
	v.SetDefault("OTEL_SERVICE_NAME", "penjualan-pricing")
	v.SetDefault("TRACE_SAMPLE_RATIO", 1.0)
	v.SetDefault("LOG_LEVEL", "INFO")

	// Файл конфигурации необязателен
	_ = v.ReadInConfig()

	cfg := &Config{
		Port:               v.GetInt("PORT"),
		MaxBasePrice:       v.GetInt64("MAX_BASE_PRICE"),
		MaxExcessArea:      v.GetFloat64("MAX_EXCESS_AREA"),
		MaxPricePerUnit:    v.GetInt64("MAX_PRICE_PER_UNIT"),
		ReconcileTolerance: v.GetInt64("RECONCILE_TOLERANCE"),
		ProgressBasis:      strings.ToLower(v.GetString("PROGRESS_MILESTONE_BASIS")),
		StrictQuotes:       v.GetBool("STRICT_QUOTES"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		CatalogCacheTTL:    v.GetDuration("CATALOG_CACHE_TTL"),
		CorsAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		OTELEndpoint:       v.GetString("OTEL_ENDPOINT"),
		OTELServiceName:    v.GetString("OTEL_SERVICE_NAME"),
		TraceSampleRatio:   v.GetFloat64("TRACE_SAMPLE_RATIO"),
		LogLevel:           strings.ToUpper(v.GetString("LOG_LEVEL")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.ProgressBasis {
	case "harga", "total":
	default:
		return fmt.Errorf("PROGRESS_MILESTONE_BASIS: ожидается harga или total, получено %q", c.ProgressBasis)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT: некорректный порт %d", c.Port)
	}
	if c.TraceSampleRatio < 0 || c.TraceSampleRatio > 1 {
		return fmt.Errorf("TRACE_SAMPLE_RATIO: ожидается значение от 0 до 1, получено %v", c.TraceSampleRatio)
	}
	if c.ReconcileTolerance < 0 {
		return fmt.Errorf("RECONCILE_TOLERANCE: значение не может быть отрицательным")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Addr возвращает адрес для http.Server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
