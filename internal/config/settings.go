// internal/config/settings.go
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings - параметры запуска: флаги поверх переменных окружения.
type Settings struct {
	Seed       int64
	TuningPath string
	Muted      bool
	Dev        bool
	LogLevel   string
}

// LoadEnv reads .env style files into the process environment. Missing files
// are fine; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ParseSettings reads GAME_SEED, GAME_TUNING, GAME_MUTE and LOG_LEVEL from
// getenv, then lets args override them.
func ParseSettings(args []string, getenv func(string) string) (Settings, error) {
	var s Settings
	seed, err := envInt(getenv, "GAME_SEED")
	if err != nil {
		return s, err
	}
	muted, err := envBool(getenv, "GAME_MUTE")
	if err != nil {
		return s, err
	}

	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Int64Var(&s.Seed, "seed", seed, "PRNG seed, 0 picks one from the clock")
	fs.StringVar(&s.TuningPath, "tuning", getenv("GAME_TUNING"), "path to a YAML tuning file")
	fs.BoolVar(&s.Muted, "mute", muted, "disable audio")
	fs.BoolVar(&s.Dev, "dev", false, "skip the menu")
	fs.StringVar(&s.LogLevel, "log-level", getenv("LOG_LEVEL"), "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return s, fmt.Errorf("parse flags: %w", err)
	}
	return s, nil
}

func envInt(getenv func(string) string, key string) (int64, error) {
	v := getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, err)
	}
	return n, nil
}

func envBool(getenv func(string) string, key string) (bool, error) {
	v := getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s=%q: %w", key, v, err)
	}
	return b, nil
}
