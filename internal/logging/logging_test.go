package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/lcl/internal/logging"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lcl.log")

	logger, err := logging.New(path, true)
	assert.NilError(t, err)
	logger.Debug("probe finished")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(string(data), "probe finished"))
}

func TestNew_InfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcl.log")

	logger, err := logging.New(path, false)
	assert.NilError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Assert(t, !strings.Contains(string(data), "hidden"))
	assert.Assert(t, strings.Contains(string(data), "shown"))
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := logging.New("", false)
	assert.NilError(t, err)
	logger.Info("goes nowhere")
}
