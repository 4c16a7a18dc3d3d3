package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes every available knob
// discoverable at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options run before the header transport wrapper is installed, so
// transport-related options (like debug logging) end up underneath the header
// wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time of a single HTTP request. The
// value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the default http.Client. The caller keeps
// ownership of transport-level policy (proxies, TLS, timeouts).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithUsername sets the identity sent as the x-username header on every
// request. The controller falls back to its guest identity when unset.
func WithUsername(username string) Option {
	return func(c *Client) error {
		c.username = username
		return nil
	}
}

// WithLogger replaces the default zerolog logger used for failure logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// WithRetry enables retrying of recoverable failures (transport errors,
// 408/429, 5xx) up to maxAttempts total attempts with exponential backoff.
// Irrecoverable failures still fail on the first attempt. maxAttempts must be
// at least 1; 1 restores the default single-shot behavior.
func WithRetry(maxAttempts int) Option {
	return func(c *Client) error {
		if maxAttempts < 1 {
			return fmt.Errorf("retry attempts must be >= 1")
		}
		c.retry.MaxAttempts = maxAttempts
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and may include headers and method/URL metadata in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
