package log_test

import (
	"strings"
	"testing"

	"github.com/ezoic/boostsplit/pkg/log"
)

func TestTestProviderCapturesOutput(t *testing.T) {
	provider, buf := log.NewTestProvider()

	logger := provider.GetLoggerWithName("boostsplit.test")
	logger.Info("split accepted",
		"feature", 3,
		"gain", 1.25,
	)

	out := buf.String()
	if !strings.Contains(out, "split accepted") {
		t.Errorf("missing message in output: %s", out)
	}
	if !strings.Contains(out, `"component":"boostsplit.test"`) {
		t.Errorf("missing component field in output: %s", out)
	}
	if !strings.Contains(out, `"feature":3`) {
		t.Errorf("missing structured field in output: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	provider, buf := log.NewTestProvider()
	provider.SetLevel(log.LevelWarn)

	logger := provider.GetLogger()
	logger.Debug("noise")
	logger.Info("also noise")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "noise") {
		t.Errorf("low-level messages leaked: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestWithAddsPersistentFields(t *testing.T) {
	provider, buf := log.NewTestProvider()

	logger := provider.GetLogger().With("node", 7)
	logger.Info("scanning")

	if !strings.Contains(buf.String(), `"node":7`) {
		t.Errorf("missing persistent field: %s", buf.String())
	}
}

func TestLevelString(t *testing.T) {
	if log.LevelDebug.String() != "DEBUG" || log.LevelError.String() != "ERROR" {
		t.Errorf("unexpected level names: %s %s", log.LevelDebug, log.LevelError)
	}
}
