package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config is built once at process start and passed down explicitly; there is
// no package-level settings state.
type Config struct {
	NewsAPIKey  string
	NewsBaseURL string
	DataDir     string

	// MaxNewsCount caps the total number of unique articles kept per run.
	// Zero disables the cap.
	MaxNewsCount int

	CronSpec    string
	SourcesFile string
}

func Load() *Config {
	cfg := &Config{
		NewsAPIKey:   os.Getenv("NEWS_API_KEY"),
		NewsBaseURL:  getEnv("NEWS_API_BASE_URL", "https://newsapi.org/v2"),
		DataDir:      getEnv("DATA_DIR", "internet_killer/data"),
		MaxNewsCount: getEnvInt("MAX_NEWS_COUNT", 0),
		CronSpec:     getEnv("CRON_SPEC", "0 6 * * *"),
		SourcesFile:  os.Getenv("SOURCES_FILE"),
	}

	log.Printf("config loaded: data_dir=%s cron=%s", cfg.DataDir, cfg.CronSpec)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

// Now returns the current time, wrapped so date-sensitive logic stays
// testable.
func Now() time.Time {
	return time.Now()
}
