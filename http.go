package main

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// loggingTransport logs every backend round trip at debug level. The
// Authorization header is never logged, only whether it was sent.
type loggingTransport struct {
	next   http.RoundTripper
	logger *log.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	authenticated := req.Header.Get("Authorization") != ""

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.logger.Error("request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
		return nil, err
	}

	t.logger.Debug("request",
		"method", req.Method,
		"path", req.URL.Path,
		"query", req.URL.RawQuery,
		"auth", authenticated,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return resp, nil
}

func newLoggingTransport(next http.RoundTripper, logger *log.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}
