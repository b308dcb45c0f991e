package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/things")
	t.Setenv("SUBREDDITS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PAGE_LIMIT", "")

	LoadConfig()

	assert.Equal(t, "postgres://localhost/things", Config.PostgresURL)
	assert.Equal(t, []string{"all"}, Config.Subreddits)
	assert.Equal(t, "https://www.reddit.com", Config.RedditBaseURL)
	assert.Equal(t, 100, Config.PageLimit)
	assert.Equal(t, slog.LevelInfo, Config.LogLevel)
	assert.True(t, Config.EnableRedditPolling)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/things")
	t.Setenv("SUBREDDITS", " golang, rust ,,")
	t.Setenv("REDDIT_BASE_URL", "http://127.0.0.1:9999/")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MAX_PAGES", "3")
	t.Setenv("POLL_INTERVAL_SECONDS", "nope")
	t.Setenv("APP_ENV", EnvProduction)

	LoadConfig()

	assert.Equal(t, []string{"golang", "rust"}, Config.Subreddits)
	assert.Equal(t, "http://127.0.0.1:9999", Config.RedditBaseURL)
	assert.Equal(t, slog.LevelDebug, Config.LogLevel)
	assert.Equal(t, 3, Config.MaxPages)
	assert.Equal(t, 30, Config.PollIntervalSeconds)
	assert.True(t, Config.IsProduction())
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := parseLogLevel("warn")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = parseLogLevel("loud")
	assert.Error(t, err)
}
