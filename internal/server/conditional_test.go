package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	const fp = "abc123"
	lastModified := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	httpDate := func(t time.Time) string { return t.Format(http.TimeFormat) }

	tests := []struct {
		name            string
		ifNoneMatch     string
		ifModifiedSince string
		expected        Decision
	}{
		{name: "no headers", expected: DecisionFull},
		{name: "matching etag", ifNoneMatch: `"abc123"`, expected: DecisionNotModified},
		{name: "unquoted etag", ifNoneMatch: "abc123", expected: DecisionFull},
		{name: "other etag", ifNoneMatch: `"invalid-etag"`, expected: DecisionFull},
		{name: "weak etag", ifNoneMatch: `W/"abc123"`, expected: DecisionFull},
		{name: "etag list", ifNoneMatch: `"x", "abc123"`, expected: DecisionFull},
		{name: "since equal", ifModifiedSince: httpDate(lastModified), expected: DecisionNotModified},
		{name: "since later", ifModifiedSince: httpDate(lastModified.Add(time.Hour)), expected: DecisionNotModified},
		{name: "since earlier", ifModifiedSince: httpDate(lastModified.Add(-time.Second)), expected: DecisionFull},
		{name: "since old date", ifModifiedSince: "Mon, 01 Jan 2020 00:00:00 GMT", expected: DecisionFull},
		{name: "rfc 850 date", ifModifiedSince: "Friday, 01-Mar-24 12:00:00 GMT", expected: DecisionNotModified},
		{name: "ansi c date", ifModifiedSince: "Fri Mar  1 12:00:00 2024", expected: DecisionNotModified},
		{name: "unparseable date", ifModifiedSince: "yesterday", expected: DecisionFull},
		{name: "etag mismatch falls back to date", ifNoneMatch: `"other"`, ifModifiedSince: httpDate(lastModified), expected: DecisionNotModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.ifNoneMatch, tt.ifModifiedSince, fp, lastModified.Unix())
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "full", DecisionFull.String())
	assert.Equal(t, "not_modified", DecisionNotModified.String())
}
