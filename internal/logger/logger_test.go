package logger_test

import (
	"bytes"
	"testing"

	"github.com/issuecheck/issuecheck/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestNew_VerboseEmitsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, true)
	log.Debug("loaded case file", "file", "cases/a.yaml")

	out := buf.String()
	assert.Contains(t, out, "loaded case file")
	assert.Contains(t, out, "cases/a.yaml")
	assert.NotContains(t, out, "\x1b[", "non-terminal output should not be colored")
}

func TestNew_QuietDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, false)
	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { logger.Discard().Info("nothing") })
}
