package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var testCases = []struct {
		description string
		level       string
		expectDebug bool
		expectInfo  bool
		expectWarn  bool
	}{
		{description: "debug", level: "debug", expectDebug: true, expectInfo: true, expectWarn: true},
		{description: "info", level: INFO, expectInfo: true, expectWarn: true},
		{description: "warn", level: WARN, expectWarn: true},
		{description: "error", level: ERROR},
		{description: "unknown level", level: "verbose", expectInfo: true, expectWarn: true},
	}
	for _, testCase := range testCases {
		buffer := &bytes.Buffer{}
		logger := New(testCase.level, buffer)
		assert.EqualValues(t, testCase.expectDebug, logger.IsDebugEnabled(), testCase.description)
		assert.EqualValues(t, testCase.expectInfo, logger.IsInfoEnabled(), testCase.description)
		assert.EqualValues(t, testCase.expectWarn, logger.IsWarnEnabled(), testCase.description)
		assert.True(t, logger.IsErrorEnabled(), testCase.description)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")
		assert.EqualValues(t, testCase.expectDebug, strings.Contains(buffer.String(), "debug message"), testCase.description)
		assert.EqualValues(t, testCase.expectInfo, strings.Contains(buffer.String(), "info message"), testCase.description)
		assert.EqualValues(t, testCase.expectWarn, strings.Contains(buffer.String(), "warn message"), testCase.description)
	}
}

func TestLogger_ContextValues(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := New(DEBUG, buffer)
	ctx := WithPage(WithProgram(context.Background(), "splToken"), "programs/splToken.ts")
	logger.Errorc(ctx, "failed to render", "error", "boom")

	record := map[string]interface{}{}
	require.Nil(t, json.Unmarshal(buffer.Bytes(), &record))
	assert.EqualValues(t, "failed to render", record["msg"])
	assert.EqualValues(t, "ERROR", record["level"])
	assert.EqualValues(t, "splToken", record["program"])
	assert.EqualValues(t, "programs/splToken.ts", record["page"])
	assert.EqualValues(t, "boom", record["error"])
	assert.Contains(t, record["function"], "TestLogger_ContextValues")
	_, hasTimestamp := record["timestamp"]
	assert.True(t, hasTimestamp)
}

func TestRedactURL(t *testing.T) {
	var testCases = []struct {
		description string
		URL         string
		expect      string
	}{
		{description: "credentials", URL: "s3://key:secret@bucket/idl.json", expect: "s3://[REDACTED]@bucket/idl.json"},
		{description: "no credentials", URL: "mem://localhost/kitgen/idl.yaml", expect: "mem://localhost/kitgen/idl.yaml"},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, RedactURL(testCase.URL), testCase.description)
	}
}
