package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
	"golang.org/x/net/proxy"

	"github.com/kova98/redditthings/config"
	"github.com/kova98/redditthings/data"
	"github.com/kova98/redditthings/data/repos"
	"github.com/kova98/redditthings/handlers"
	"github.com/kova98/redditthings/matchers"
	"github.com/kova98/redditthings/metrics"
	"github.com/kova98/redditthings/sources"
)

func main() {
	config.LoadConfig()

	opts := slog.HandlerOptions{Level: config.Config.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(logger)

	db, err := sqlx.Connect("postgres", config.Config.PostgresURL)
	if err != nil {
		slog.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	if err := data.RunMigrations(db.DB); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	keywordRepo := repos.NewKeywordRepo(db)
	matchRepo := repos.NewMatchRepo(db)
	m := metrics.New()

	client, err := httpClient(config.Config.ProxyURL)
	if err != nil {
		slog.Error("failed to create http client", "error", err)
		os.Exit(1)
	}
	reddit := sources.NewClient(client, m, config.Config.RedditBaseURL, config.Config.UserAgent)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if config.Config.EnableRedditPolling {
		poller := sources.NewRedditPoller(logger, reddit, keywordRepo, matchRepo, matchers.NewLanguageDetector(), sources.PollerConfig{
			Subreddits:   config.Config.Subreddits,
			PageLimit:    config.Config.PageLimit,
			MaxPages:     config.Config.MaxPages,
			PollInterval: time.Duration(config.Config.PollIntervalSeconds) * time.Second,
		})
		go poller.StartPolling(ctx)
	}

	keywords := handlers.NewKeywordHandler(keywordRepo)
	matches := handlers.NewMatchHandler(matchRepo)
	decoder := handlers.NewDecodeHandler(reddit, m)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /keywords", public(keywords.CreateKeyword))
	mux.HandleFunc("GET /keywords", public(keywords.GetKeywords))
	mux.HandleFunc("GET /keywords/{id}", public(keywords.GetKeyword))
	mux.HandleFunc("DELETE /keywords/{id}", public(keywords.DeleteKeyword))

	mux.HandleFunc("GET /matches", public(matches.GetMatches))

	mux.HandleFunc("POST /decode/{schema}", public(decoder.Decode))
	mux.HandleFunc("GET /threads/{id}", public(decoder.GetThread))
	mux.HandleFunc("GET /subreddits/{name}/about", public(decoder.GetSubredditAbout))

	mux.Handle("GET /metrics", m.Handler())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		cancel()
		if err := db.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
		os.Exit(0)
	}()

	slog.Info("Starting server", "addr", config.Config.HTTPAddr, "env", config.Config.AppEnv)
	err = http.ListenAndServe(config.Config.HTTPAddr, withCORS(mux))
	if err != nil {
		slog.Error("failed to start server", "error", err)
	}
}

func httpClient(proxyURL string) (*http.Client, error) {
	client := &http.Client{Timeout: 10 * time.Second}

	if proxyURL == "" {
		return client, nil
	}

	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		return nil, err
	}
	if parsedURL.Scheme != "socks5" {
		client.Transport = &http.Transport{Proxy: http.ProxyURL(parsedURL)}
		slog.Info("using HTTP proxy", "proxy", parsedURL.Host)
		return client, nil
	}

	var auth *proxy.Auth
	if parsedURL.User != nil {
		password, _ := parsedURL.User.Password()
		auth = &proxy.Auth{
			User:     parsedURL.User.Username(),
			Password: password,
		}
	}

	dialer, err := proxy.SOCKS5("tcp", parsedURL.Host, auth, proxy.Direct)
	if err != nil {
		return nil, err
	}

	client.Transport = &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		},
	}
	slog.Info("using SOCKS5 proxy", "proxy", parsedURL.Host)

	return client, nil
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func public(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts := time.Now()
		res := handler(w, r)
		elapsedMs := time.Since(ts).Milliseconds()
		slog.Debug("req", "method", r.Method, "path", r.URL.Path, "code", res.Code, "elapsed", elapsedMs)
		writeResult(w, res)
	}
}

func writeResult(w http.ResponseWriter, res handlers.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Code)
	if res.Body != nil {
		if err := json.NewEncoder(w).Encode(res.Body); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
	switch {
	case res.Code >= http.StatusInternalServerError:
		slog.Error("internal error", "error", res.Error)
	case res.Code == http.StatusUnprocessableEntity:
		slog.Debug("decode failed", "error", res.Error)
	}
}
