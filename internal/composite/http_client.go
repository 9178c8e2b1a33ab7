// Package composite assembles cross-service views by calling the client and
// account HTTP APIs. The callers are plain HTTP clients so the package works
// the same whether the services run in-process or as separate deployments.
package composite

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/finserv-tools/bank_management_app/internal/apperrors"
	"github.com/finserv-tools/bank_management_app/internal/middleware"
)

const defaultTimeout = 10 * time.Second

// httpCaller wraps an http.Client with base URL handling, correlation ID
// propagation and error mapping shared by the service clients.
type httpCaller struct {
	baseURL string
	client  *http.Client
}

func newHTTPCaller(baseURL string) httpCaller {
	return httpCaller{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// getJSON issues a GET against path and decodes the response body into out.
// Upstream error statuses are folded back into the sentinel error taxonomy so
// the composite layer surfaces them exactly like a local service would.
func (h httpCaller) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	if correlationID := middleware.GetCorrelationID(ctx); correlationID != "" {
		req.Header.Set(middleware.CorrelationIDHeader, correlationID)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return mapStatus(resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func mapStatus(status int, path string) error {
	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("upstream resource %s: %w", path, apperrors.ErrNotFound)
	case http.StatusBadRequest:
		return fmt.Errorf("upstream rejected request %s: %w", path, apperrors.ErrValidation)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("upstream business rejection on %s: %w", path, apperrors.ErrBusiness)
	default:
		return fmt.Errorf("upstream %s returned status %d: %w", path, status, apperrors.ErrInternal)
	}
}
