package logging_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/getmatchd/matchd/pkg/logging"
)

func TestNew_TextFormat(t *testing.T) {
	var b strings.Builder
	logger := logging.New(logging.Config{Level: logging.LevelInfo, Output: &b})

	logger.Info("evaluated", "items", 3)

	out := b.String()
	assert.Contains(t, out, "evaluated")
	assert.Contains(t, out, "items=3")
}

func TestNew_JSONFormat(t *testing.T) {
	var b strings.Builder
	logger := logging.New(logging.Config{Format: logging.FormatJSON, Output: &b})

	logger.Info("evaluated")

	assert.Contains(t, b.String(), `"msg":"evaluated"`)
}

func TestNew_LevelFilters(t *testing.T) {
	var b strings.Builder
	logger := logging.New(logging.Config{Level: logging.LevelWarn, Output: &b})

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, b.String(), "dropped")
	assert.Contains(t, b.String(), "kept")
}

func TestNop(t *testing.T) {
	logging.Nop().Error("discarded")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logging.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, logging.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, logging.LevelError, logging.ParseLevel("ERROR"))
	assert.Equal(t, logging.LevelInfo, logging.ParseLevel("anything"))
}
