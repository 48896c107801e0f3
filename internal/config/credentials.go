package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/munim/organize-bitwarden-folders-ai/internal/common"
)

// GetEnv returns the value of key from the process environment, falling back
// to a .env file in the working directory. Returns an empty string when the
// key is unset in both.
func GetEnv(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	vals, err := godotenv.Read()
	if err != nil {
		return ""
	}
	return vals[key]
}

// RequireEnv is GetEnv but treats an unset key as a fatal configuration
// error.
func RequireEnv(key string) (string, error) {
	v := GetEnv(key)
	if v == "" {
		return "", fmt.Errorf("%w: %s is not set (environment or .env)", common.ErrMissingConfig, key)
	}
	return v, nil
}
