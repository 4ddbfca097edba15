package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"pagewatch/internal/helper"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	PageURL   string
	FeedPath  string
	CachePath string

	HTTPTimeout    time.Duration
	UserAgent      string
	ConditionalGET bool

	MinSubstanceChars int
	MaxDisplayChars   int

	ChannelTitle       string
	ChannelLink        string
	ChannelDescription string
	ChannelLanguage    string

	Store string

	PGHost     string
	PGPort     int
	PGUser     string
	PGPassword string
	PGDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Debug bool
}

func Load() Config {
	_ = godotenv.Load()

	pageURL := getenv("PAGEWATCH_URL", "https://www.modular.org/news/")
	return Config{
		PageURL:   pageURL,
		FeedPath:  getenv("PAGEWATCH_FEED_PATH", "modular_construction_feed.xml"),
		CachePath: getenv("PAGEWATCH_CACHE_PATH", "content_cache.json"),

		HTTPTimeout:    parseDurationEnv("PAGEWATCH_HTTP_TIMEOUT", 20*time.Second),
		UserAgent:      getenv("PAGEWATCH_USER_AGENT", "Mozilla/5.0 (compatible; pagewatch/1.0)"),
		ConditionalGET: parseBoolEnv("PAGEWATCH_CONDITIONAL_GET", true),

		MinSubstanceChars: parseIntEnv("PAGEWATCH_MIN_CHARS", 100),
		MaxDisplayChars:   parseIntEnv("PAGEWATCH_MAX_CHARS", 500),

		ChannelTitle:       getenv("PAGEWATCH_CHANNEL_TITLE", "Modular Construction News"),
		ChannelLink:        getenv("PAGEWATCH_CHANNEL_LINK", pageURL),
		ChannelDescription: getenv("PAGEWATCH_CHANNEL_DESC", "New content detected on the watched page"),
		ChannelLanguage:    getenv("PAGEWATCH_CHANNEL_LANG", "en-us"),

		Store: getenv("PAGEWATCH_STORE", StoreFile),

		PGHost:     getenv("POSTGRES_HOST", "localhost"),
		PGPort:     parseIntEnv("POSTGRES_PORT", 5432),
		PGUser:     getenv("POSTGRES_USER", "postgres"),
		PGPassword: getenv("POSTGRES_PASSWORD", "changeme"),
		PGDatabase: getenv("POSTGRES_DBNAME", "pagewatch"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       parseIntEnv("REDIS_DB", 0),

		Debug: parseBoolEnv("PAGEWATCH_DEBUG", false),
	}
}

func (c Config) Validate() error {
	if err := helper.IsValidURL(c.PageURL); err != nil {
		return err
	}
	switch c.Store {
	case StoreFile, StorePostgres, StoreRedis:
	default:
		return fmt.Errorf("unknown store: %s", c.Store)
	}
	if c.MinSubstanceChars <= 0 || c.MaxDisplayChars <= 0 {
		return fmt.Errorf("character limits must be > 0")
	}
	return nil
}

// PostgresDSN builds the connection string for the postgres store.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseBoolEnv(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
