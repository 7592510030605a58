package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/kitgen/shared/logging"
)

func TestShouldUpdateRange(t *testing.T) {
	var testCases = []struct {
		description string
		current     string
		required    string
		expect      bool
	}{
		{description: "same range", current: "^5.0.0", required: "^5.0.0"},
		{description: "older major", current: "^4.0.0", required: "^5.0.0", expect: true},
		{description: "narrower caret", current: "^5.1.0", required: "^5.0.0"},
		{description: "newer major", current: "^6.0.0", required: "^5.0.0"},
		{description: "exact version within range", current: "5.0.0", required: "^5.0.0"},
		{description: "tilde within caret", current: "~5.0.0", required: "^5.0.0"},
		{description: "open lower bound", current: ">=4.0.0", required: "^5.0.0", expect: true},
		{description: "any version", current: "*", required: "^5.0.0", expect: true},
		{description: "zero major caret", current: "^0.2.0", required: "^0.3.0", expect: true},
		{description: "x range", current: "4.x", required: "^5.0.0", expect: true},
		{description: "separated comparator", current: ">= 5.2.0 <6", required: "^5.0.0"},
		{description: "alternatives", current: "^4.0.0 || ^5.0.0", required: "^5.0.0", expect: true},
	}
	logger := logging.New(logging.ERROR, &bytes.Buffer{})
	for _, testCase := range testCases {
		actual := shouldUpdateRange(logger, "@solana/kit", testCase.current, testCase.required)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestShouldUpdateRange_Invalid(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := logging.New(logging.WARN, buffer)
	assert.False(t, shouldUpdateRange(logger, "@solana/kit", "workspace:*", "^5.0.0"))
	assert.Contains(t, buffer.String(), "could not parse dependency ranges")
	assert.Contains(t, buffer.String(), "workspace:*")
}

func TestVersionRange_MinVersion(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		expect      string
	}{
		{description: "caret", text: "^1.2.3", expect: "v1.2.3"},
		{description: "exclusive lower", text: ">1.2.3", expect: "v1.2.4"},
		{description: "exclusive partial", text: ">1.2", expect: "v1.3.0"},
		{description: "lowest alternative", text: "^1.2 || >=0.5.0", expect: "v0.5.0"},
		{description: "upper only", text: "<2.0.0", expect: "v0.0.0"},
		{description: "prerelease", text: "^2.0.0-rc.1", expect: "v2.0.0-rc.1"},
	}
	for _, testCase := range testCases {
		aRange, err := parseRange(testCase.text)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		actual, err := aRange.minVersion()
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
