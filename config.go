// config.go
//
// Process configuration for the checker CLI.
// Values come from the environment, optionally seeded from a .env file in development.
// Command line flags override them.
//
// Environment variables:
//   LOG_LEVEL           zerolog level name (default "info")
//   WORDS_ANSWERS_FILE  answer list used by --random/--daily (read by the words package)
//   DAILY_SALT          salt for --daily word selection (default "local_dev_salt")
//   WORDLE_COLOR        auto | on | off (default "auto")

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	LogLevel  string
	DailySalt string
	Color     string
}

// loadConfig reads .env (if present) and then the environment.
func loadConfig() config {
	_ = godotenv.Load()
	return config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		DailySalt: getEnv("DAILY_SALT", "local_dev_salt"),
		Color:     getEnv("WORDLE_COLOR", "auto"),
	}
}

// setupLogging applies the level and picks console output for terminals, JSON otherwise.
func setupLogging(level string, w *os.File) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if isatty.IsTerminal(w.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
		return
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
