package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/failsafe-go/failsafe-go"

	"github.com/wherecaniwatch/finder/internal/apperrors"
	"github.com/wherecaniwatch/finder/internal/config"
	"github.com/wherecaniwatch/finder/internal/metrics"
	"github.com/wherecaniwatch/finder/internal/parser"
)

const (
	endpointSearch         = "search"
	endpointWatchProviders = "watch providers"

	// maxBodySize caps how much of a provider response is read into memory.
	maxBodySize = 5 << 20
)

type providerResponse struct {
	status int
	body   []byte
}

// get performs one GET against the provider and returns the body of a 200
// response. Every failure is returned as *apperrors.ProviderError.
func (c *client) get(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	logger := config.GetLogger()

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("api_key", c.apiKey)
	requestURL := c.baseURL + path + "?" + query.Encode()

	start := time.Now()
	resp, err := c.executor.WithContext(ctx).GetWithExecution(func(exec failsafe.Execution[*providerResponse]) (*providerResponse, error) {
		return c.do(exec.Context(), requestURL)
	})
	elapsed := time.Since(start)

	status := "error"
	if resp != nil {
		status = strconv.Itoa(resp.status)
	}
	metrics.ProviderRequestsTotal.WithLabelValues(endpoint, status).Inc()
	metrics.ProviderRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())

	if err != nil {
		logger.Warn().Err(err).Str("endpoint", endpoint).Str("path", path).Dur("elapsed", elapsed).Msg("Provider request failed")
		return nil, apperrors.NewProviderRequestError(endpoint, err)
	}
	if resp.status != http.StatusOK {
		logger.Warn().Int("status", resp.status).Str("endpoint", endpoint).Str("path", path).Msg("Provider returned unexpected status")
		return nil, apperrors.NewProviderStatusError(endpoint, resp.status)
	}

	logger.Debug().Str("endpoint", endpoint).Str("path", path).Int("bytes", len(resp.body)).Dur("elapsed", elapsed).Msg("Provider request succeeded")
	return resp.body, nil
}

func (c *client) do(ctx context.Context, requestURL string) (*providerResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, redactURLError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &providerResponse{status: resp.StatusCode}, nil
	}

	reader, err := parser.NewUTF8Reader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode response charset: %w", err)
	}

	body, err := io.ReadAll(io.LimitReader(reader, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &providerResponse{status: resp.StatusCode, body: body}, nil
}

// redactURLError strips the request URL, which carries the API key, from
// transport errors before they are logged or returned.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request failed: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
