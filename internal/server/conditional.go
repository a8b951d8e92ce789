package server

import (
	"net/http"
	"strings"
)

// Decision is the outcome of evaluating conditional request headers
type Decision int

const (
	// DecisionFull means the full response must be sent
	DecisionFull Decision = iota
	// DecisionNotModified means 304 with an empty body
	DecisionNotModified
)

// String returns the decision name
func (d Decision) String() string {
	if d == DecisionNotModified {
		return "not_modified"
	}
	return "full"
}

// Decide evaluates If-None-Match and If-Modified-Since against an artifact.
// An exact If-None-Match match of the quoted fingerprint wins. Otherwise a
// parseable If-Modified-Since at or after lastModified is not modified.
// Empty header values are treated as absent.
func Decide(ifNoneMatch, ifModifiedSince, fingerprint string, lastModified int64) Decision {
	if ifNoneMatch != "" && ifNoneMatch == `"`+fingerprint+`"` {
		return DecisionNotModified
	}

	ifModifiedSince = strings.TrimSpace(ifModifiedSince)
	if ifModifiedSince == "" {
		return DecisionFull
	}

	since, err := http.ParseTime(ifModifiedSince)
	if err != nil {
		return DecisionFull
	}
	if since.Unix() >= lastModified {
		return DecisionNotModified
	}
	return DecisionFull
}
