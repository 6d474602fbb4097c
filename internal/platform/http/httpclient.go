// Package http provides the outbound HTTP client used for exchange API calls.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client for calling external market-data APIs.
//
// http.DefaultClient has no timeout, so every outbound call goes through a client
// built here. timeout bounds the whole request; a non-positive value falls back to
// DefaultTimeout. The response header wait is capped at the same value so a stalled
// upstream surfaces as an error instead of hanging the request handler.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}

// DefaultTimeout is used when NewHTTPClient receives a non-positive timeout.
const DefaultTimeout = 10 * time.Second
