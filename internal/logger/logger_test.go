package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
	assert.Same(t, log, L())
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Info("recipe added", "recipe_id", 7)

	output := buf.String()
	assert.Contains(t, output, "recipe added")
	assert.Contains(t, output, `"recipe_id":7`)
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Error("renewal failed")

	assert.Contains(t, buf.String(), "renewal failed")
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestDebug_HiddenAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Debug("should not appear")

	assert.Empty(t, buf.String())
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Debugf("tariff %d months", 3)

	assert.Contains(t, buf.String(), "tariff 3 months")
}

func TestInfofErrorf(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Infof("user %d", 1)
	Errorf("user %d missing", 2)

	output := buf.String()
	assert.Contains(t, output, "user 1")
	assert.Contains(t, output, "user 2 missing")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	WithError(assert.AnError).Info("test with error")

	output := buf.String()
	assert.Contains(t, output, "test with error")
	assert.Contains(t, output, assert.AnError.Error())
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	WithFields(map[string]interface{}{"key1": "value1", "key2": 123}).Info("test with fields")

	output := buf.String()
	assert.Contains(t, output, "test with fields")
	assert.Contains(t, output, `"key1":"value1"`)
	assert.Contains(t, output, `"key2":123`)
}
