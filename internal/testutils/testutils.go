// Package testutils holds helpers shared by package tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/amantech/internal/config"
)

// ProjectRoot walks up from the working directory to the directory holding
// go.mod.
func ProjectRoot(t *testing.T) string {
	t.Helper()
	path, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}
}

// ConfigForTests sets the variables from .env.test for the duration of the
// test and returns the resulting, validated config.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	env, err := godotenv.Read(filepath.Join(ProjectRoot(t), ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return cfg
}
