package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/timeout"

	"github.com/wherecaniwatch/finder/internal/cache"
	"github.com/wherecaniwatch/finder/internal/config"
	"github.com/wherecaniwatch/finder/internal/models"
	"github.com/wherecaniwatch/finder/internal/parser"
)

const defaultTimeout = 10 * time.Second

// Client defines the interface for querying the metadata provider.
//
// Each call makes at most one outbound request and never retries. Failures
// (non-200 status, transport error, timeout, undecodable body) are returned as
// *apperrors.ProviderError so callers can decide how to degrade.
type Client interface {
	// Configured reports whether an API key is set. Without one no request is sent.
	Configured() bool

	Search(ctx context.Context, query string) ([]models.Title, error)
	WatchProviders(ctx context.Context, titleID int, mediaType models.MediaType) (models.WatchProviders, error)

	// Close releases any resources held by the client (e.g., cache connections).
	Close() error
}

// client implements the Client interface
type client struct {
	httpClient      *http.Client
	executor        failsafe.Executor[*providerResponse]
	baseURL         string
	apiKey          string
	userAgent       string
	searchParser    parser.Parser[[]models.Title]
	providersParser parser.Parser[models.WatchProviders]
	searchCache     cache.Cache // nil when caching is disabled
}

// NewClient creates a new client instance with proxy configuration if provided
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	requestTimeout := defaultTimeout
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, using default 10s")
		} else {
			requestTimeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve its pooling, HTTP/2 and dial settings
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	return &client{
		httpClient: &http.Client{
			Transport: newCompressionTransport(baseTransport),
		},
		// The timeout bounds the whole exchange, body included. No retry policy.
		executor:        failsafe.With[*providerResponse](timeout.New[*providerResponse](requestTimeout)),
		baseURL:         strings.TrimRight(cfg.TMDB.BaseURL, "/"),
		apiKey:          strings.TrimSpace(cfg.TMDB.APIKey),
		userAgent:       userAgent,
		searchParser:    parser.NewSearchParser(),
		providersParser: parser.NewWatchProvidersParser(),
		searchCache:     newSearchCache(cfg),
	}
}

func (c *client) Configured() bool {
	return c.apiKey != ""
}

// Close releases any resources held by the client, such as cache connections.
func (c *client) Close() error {
	if c.searchCache == nil {
		return nil
	}
	return c.searchCache.Close()
}
