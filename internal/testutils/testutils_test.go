package testutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nfrund/amantech/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestProjectRoot(t *testing.T) {
	root := testutils.ProjectRoot(t)
	_, err := os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err)
}

func TestConfigForTests(t *testing.T) {
	cfg := testutils.ConfigForTests(t)

	assert.Equal(t, "test", cfg.GetEnv())
	assert.Equal(t, "error", cfg.GetLogLevel())
	assert.Equal(t, 3, cfg.GetContactRateLimit())
	assert.Equal(t, "test", os.Getenv("APP_ENV"))
}
