package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// fallbackToken keeps the service answering when INMET_TOKEN is unset, matching
// the upstream deployment default.
const fallbackToken = "bEhBU0szRjV4TGhic2E3ZHpndEVTVENrSkN4NjJxZm0=lHASK3F5xLhbsa7dzgtESTCkJCx62qfm"

const defaultBaseURL = "https://apitempo.inmet.gov.br"

type Config struct {
	AppEnv   string
	LogLevel slog.Level
	HTTPAddr string

	// INMETBaseURL is the upstream API root, without a trailing slash.
	INMETBaseURL string
	INMETToken   string

	// FetchTimeout bounds each upstream request; there are no retries.
	FetchTimeout time.Duration
	// MaxEstacoes caps how many station records of one hourly response are
	// considered, regardless of upstream payload size.
	MaxEstacoes int
}

func LoadFromEnv() (Config, error) {
	// A missing .env is fine; system environment variables still apply.
	_ = godotenv.Load()

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	portStr := strings.TrimSpace(os.Getenv("PORT"))
	if portStr == "" {
		portStr = "5000"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q (expected 1-65535)", portStr)
	}

	baseURL := strings.TrimSpace(os.Getenv("INMET_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	token := strings.TrimSpace(os.Getenv("INMET_TOKEN"))
	if token == "" {
		token = fallbackToken
	}

	return Config{
		AppEnv:       appEnv,
		LogLevel:     level,
		HTTPAddr:     fmt.Sprintf(":%d", port),
		INMETBaseURL: baseURL,
		INMETToken:   token,
		FetchTimeout: 4 * time.Second,
		MaxEstacoes:  600,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
