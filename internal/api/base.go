// Package api issues the HTTP requests behind every SDK operation. Functions
// take the http.Client and base URL explicitly so tests can inject both.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	sdkerrors "github.com/genai-factory/genai-factory/client/internal/errors"
	"github.com/genai-factory/genai-factory/client/internal/types"
)

// basePath prefixes every controller route.
const basePath = "/api"

// joinPath appends percent-encoded segments to baseURL under /api. Escaping
// each segment keeps hostile identifiers from rewriting the route shape.
func joinPath(baseURL string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString(basePath)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func withQuery(u string, q url.Values) string {
	if len(q) == 0 {
		return u
	}
	return u + "?" + q.Encode()
}

// do performs a single request/response exchange and unwraps the controller
// envelope into out (out may be nil for delete-style calls).
//
// Failure mapping:
//   - request could not be sent or reply not decoded -> *TransportError
//   - non-2xx status                                 -> *ServerError
//   - 2xx envelope with success=false                -> *ServerError
func do(ctx context.Context, httpClient *http.Client, op, method, reqURL string, in, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(buf)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return sdkerrors.NewTransportError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Decode the envelope best-effort; error bodies may not be JSON at all
	// (proxies, panics), in which case the status code alone has to do.
	var env types.APIResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return sdkerrors.NewServerError(resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return sdkerrors.NewTransportError(op, fmt.Errorf("decode response: %w", decodeErr))
	}
	if !env.Success {
		return sdkerrors.NewServerError(resp.StatusCode, env.Error)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return sdkerrors.NewTransportError(op, fmt.Errorf("decode payload: %w", err))
		}
	}
	return nil
}
