package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries every knob the commands need; the core packages hold
// no process-wide state and receive paths explicitly.
type Config struct {
	FlatFile string // path of the delimited flat file
	DBPath   string // path of the sqlite store
	Addr     string // listen address for the read-only viewer
	AppEnv   string // dev or prod, selects the logger config
}

// Load reads configuration from the environment, with an optional .env
// file in the working directory taking precedence. Missing keys fall
// back to defaults; a missing .env is not an error.
func Load() Config {
	fileEnv, _ := godotenv.Read(".env")
	get := func(key, def string) string {
		if v, ok := fileEnv[key]; ok && v != "" {
			return v
		}
		if v := os.Getenv(key); v != "" {
			return v
		}
		return def
	}
	return Config{
		FlatFile: get("APPTRACK_CSV", "applications.csv"),
		DBPath:   get("APPTRACK_DB", "applications.db"),
		Addr:     get("APPTRACK_ADDR", ":8090"),
		AppEnv:   get("APP_ENV", "dev"),
	}
}
