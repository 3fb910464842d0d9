package config

import (
	"os"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_NEWS_DATA_DIR"

	_ = os.Unsetenv(key)
	if got := getEnv(key, "internet_killer/data"); got != "internet_killer/data" {
		t.Fatalf("getEnv(%q) = %q, want default", key, got)
	}

	if err := os.Setenv(key, "/tmp/news"); err != nil {
		t.Fatalf("Setenv error: %v", err)
	}
	defer os.Unsetenv(key)
	if got := getEnv(key, "internet_killer/data"); got != "/tmp/news" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "/tmp/news")
	}
}

func TestGetEnvInt(t *testing.T) {
	const key = "TEST_MAX_NEWS_COUNT"

	_ = os.Unsetenv(key)
	if got := getEnvInt(key, 0); got != 0 {
		t.Fatalf("getEnvInt default = %d, want 0", got)
	}

	_ = os.Setenv(key, "100")
	if got := getEnvInt(key, 0); got != 100 {
		t.Fatalf("getEnvInt = %d, want 100", got)
	}

	// Unparsable values fall back to the default instead of aborting.
	_ = os.Setenv(key, "plenty")
	if got := getEnvInt(key, 7); got != 7 {
		t.Fatalf("getEnvInt with bad value = %d, want 7", got)
	}
	_ = os.Unsetenv(key)
}

func TestLoadReadsEnvironment(t *testing.T) {
	_ = os.Setenv("NEWS_API_KEY", "test-key")
	_ = os.Setenv("DATA_DIR", "/tmp/news-test")
	_ = os.Setenv("MAX_NEWS_COUNT", "250")
	defer func() {
		_ = os.Unsetenv("NEWS_API_KEY")
		_ = os.Unsetenv("DATA_DIR")
		_ = os.Unsetenv("MAX_NEWS_COUNT")
	}()

	cfg := Load()
	if cfg.NewsAPIKey != "test-key" {
		t.Fatalf("NewsAPIKey = %q, want %q", cfg.NewsAPIKey, "test-key")
	}
	if cfg.DataDir != "/tmp/news-test" {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, "/tmp/news-test")
	}
	if cfg.MaxNewsCount != 250 {
		t.Fatalf("MaxNewsCount = %d, want 250", cfg.MaxNewsCount)
	}
	if cfg.NewsBaseURL != "https://newsapi.org/v2" {
		t.Fatalf("NewsBaseURL = %q, want default", cfg.NewsBaseURL)
	}
}
