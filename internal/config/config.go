package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
)

const (
	envCurrency = "SHOP_CURRENCY"
	envLogLevel = "SHOP_LOG_LEVEL"

	defaultCurrency = "BRL"
	defaultLogLevel = "info"
)

type Config struct {
	Currency currency.Unit
	LogLevel string
}

// Load reads an optional .env file from the working directory, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	code := getenv(envCurrency)
	if code == "" {
		code = defaultCurrency
	}

	cur, err := currency.ParseISO(code)
	if err != nil {
		return Config{}, fmt.Errorf("%s[%s] is not valid: %w", envCurrency, code, err)
	}

	level := getenv(envLogLevel)
	if level == "" {
		level = defaultLogLevel
	}

	return Config{
		Currency: cur,
		LogLevel: level,
	}, nil
}
