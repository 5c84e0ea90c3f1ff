package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, level string, format OutputFormat, fn func()) string {
	t.Helper()
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	// Reinitialize logger with test output
	logger = nil
	InitLogger(level, format)

	fn()

	return buf.String()
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logFn    func()
		contains []string
		excludes []string
	}{
		{
			name:  "info log",
			level: "info",
			logFn: func() {
				Info("cache updated")
			},
			contains: []string{"cache updated"},
		},
		{
			name:  "debug log with debug level",
			level: "debug",
			logFn: func() {
				Debug("request sent")
			},
			contains: []string{"request sent", "level=DEBUG"},
		},
		{
			name:  "debug log with info level",
			level: "info",
			logFn: func() {
				Debug("request sent")
			},
			excludes: []string{"request sent"},
		},
		{
			name:  "error log",
			level: "error",
			logFn: func() {
				Error("write failed")
			},
			contains: []string{"write failed", "level=ERROR"},
		},
		{
			name:  "warn log with fields",
			level: "warn",
			logFn: func() {
				Warn("falling back to local cache", Fields{"query": "util", "results": 2})
			},
			contains: []string{"falling back to local cache", "level=WARN", "query=util", "results=2"},
		},
		{
			name:  "success log",
			level: "info",
			logFn: func() {
				Success("package installed")
			},
			contains: []string{"package installed", "status=success"},
		},
		{
			name:  "formatted info log",
			level: "info",
			logFn: func() {
				Infof("found %d packages", 3)
			},
			contains: []string{"found 3 packages"},
		},
		{
			name:  "formatted debug with fields",
			level: "debug",
			logFn: func() {
				DebugfWithFields(Fields{"endpoint": "/api/status"}, "posting request %d", 1)
			},
			contains: []string{"posting request 1", "endpoint=/api/status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput(t, tt.level, FormatText, tt.logFn)
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, notWant := range tt.excludes {
				assert.NotContains(t, output, notWant)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	output := captureOutput(t, "info", FormatJSON, func() {
		Info("search complete", Fields{
			"query":   "util",
			"results": 2,
		})
	})

	assert.Contains(t, output, `"msg":"search complete"`)
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"query":"util"`)
	assert.Contains(t, output, `"results":2`)
}

func TestSetOutputFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	logger = nil
	InitLogger("debug", FormatText)
	Info("first message")
	assert.Contains(t, buf.String(), "first message")
	assert.Contains(t, buf.String(), "INFO")

	buf.Reset()
	SetOutputFormat(FormatJSON)
	Info("second message")
	assert.Contains(t, buf.String(), `"msg":"second message"`)
	assert.Contains(t, buf.String(), `"level":"INFO"`)

	// The level survives the format switch.
	buf.Reset()
	Debug("still debug")
	assert.Contains(t, buf.String(), "still debug")
}

func TestGetLogger_InitializesIfNil(t *testing.T) {
	logger = nil
	assert.NotPanics(t, func() {
		lg := GetLogger()
		assert.NotNil(t, lg)
		lg.Info("test message")
	})
}

func TestMergeFields(t *testing.T) {
	tests := []struct {
		name   string
		fields []Fields
		expect map[string]interface{}
	}{
		{
			name:   "single field",
			fields: []Fields{{"key1": "value1"}},
			expect: map[string]interface{}{"key1": "value1"},
		},
		{
			name:   "multiple fields",
			fields: []Fields{{"key1": "value1"}, {"key2": 123, "key3": true}},
			expect: map[string]interface{}{"key1": "value1", "key2": 123, "key3": true},
		},
		{
			name:   "overwrite fields",
			fields: []Fields{{"key1": "value1"}, {"key1": "new value", "key2": 123}},
			expect: map[string]interface{}{"key1": "new value", "key2": 123},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := mergeFields(tt.fields...)
			result := make(map[string]interface{})
			for i := 0; i < len(attrs); i += 2 {
				key := attrs[i].(string)
				result[key] = attrs[i+1]
			}
			assert.Equal(t, tt.expect, result)
		})
	}
}
