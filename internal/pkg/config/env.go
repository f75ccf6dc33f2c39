package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppEnvKey selects the environment specific .env file
const AppEnvKey = "APP_ENV"

// DefaultAppEnv is used when APP_ENV is unset
const DefaultAppEnv = "dev"

// LoadEnvFiles reads the given .env files in order. Later files override earlier
// ones, while variables already present in the process environment always win.
// Missing files are skipped.
func LoadEnvFiles(files ...string) error {
	merged := map[string]string{}

	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read env file %s: %w", file, err)
		}
		for k, v := range values {
			merged[k] = v
		}
	}

	for k, v := range merged {
		if _, exists := os.LookupEnv(k); exists {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("failed to set %s: %w", k, err)
		}
	}

	return nil
}

// EnvFiles returns the layered env file names for an app environment
func EnvFiles(appEnv string) []string {
	if appEnv == "" {
		appEnv = DefaultAppEnv
	}
	return []string{".env.common", ".env." + appEnv}
}

func overrideString(target *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*target = v
	}
}

func overrideInt(target *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	*target = n
	return nil
}

func overrideBool(target *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid boolean for %s: %w", key, err)
	}
	*target = b
	return nil
}

// overrideDuration accepts Go durations ("1500ms") and plain seconds ("2.0").
func overrideDuration(target *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	d, err := parseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	*target = d
	return nil
}

func overrideList(target *[]string, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	*target = items
}

func parseDuration(v string) (time.Duration, error) {
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	seconds, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
