package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	EnvDevelopment = "DEV"
	EnvProduction  = "PROD"
)

type AppConfig struct {
	PostgresURL         string
	ProxyURL            string
	RedditBaseURL       string
	UserAgent           string
	Subreddits          []string
	PollIntervalSeconds int
	PageLimit           int
	MaxPages            int
	EnableRedditPolling bool
	HTTPAddr            string
	AppEnv              string // EnvDevelopment or EnvProduction
	LogLevel            slog.Level
}

var Config AppConfig

func LoadConfig() {
	cfg := AppConfig{}

	cfg.AppEnv = os.Getenv("APP_ENV")
	cfg.PostgresURL = loadRequired("POSTGRES_URL")
	cfg.ProxyURL = os.Getenv("PROXY_URL")
	cfg.RedditBaseURL = strings.TrimRight(loadOptional("REDDIT_BASE_URL", "https://www.reddit.com"), "/")
	cfg.UserAgent = loadOptional("REDDIT_USER_AGENT", "redditthings/1.0")
	cfg.Subreddits = parseList(loadOptional("SUBREDDITS", "all"))
	cfg.PollIntervalSeconds = loadInt("POLL_INTERVAL_SECONDS", 30)
	cfg.PageLimit = loadInt("PAGE_LIMIT", 100)
	cfg.MaxPages = loadInt("MAX_PAGES", 1)
	cfg.EnableRedditPolling = loadOptional("ENABLE_REDDIT_POLLING", "true") == "true"
	cfg.HTTPAddr = loadOptional("HTTP_ADDR", ":8080")

	lvlString := loadOptional("LOG_LEVEL", "INFO")
	var err error
	cfg.LogLevel, err = parseLogLevel(lvlString)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", "error", err)
		cfg.LogLevel = slog.LevelInfo
	}

	Config = cfg
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	var err = level.UnmarshalText([]byte(s))
	return level, err
}

func parseList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			list = append(list, p)
		}
	}
	return list
}

func loadRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Required env var not set", "key", key)
		os.Exit(1)
	}
	return value
}

func loadOptional(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func loadInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		slog.Error("Invalid integer env var, using default", "key", key, "value", value, "default", defaultValue)
		return defaultValue
	}
	return n
}

func (c AppConfig) IsProduction() bool {
	return c.AppEnv == EnvProduction
}
