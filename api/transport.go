package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dghubble/sling"
	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout         = 30 * time.Second
	defaultMaxIdleConns    = 10
	defaultIdleConnTimeout = 90 * time.Second

	// apiKeyHeader is read by OKLink-style explorers in place of the apikey parameter.
	apiKeyHeader = "Ok-Access-Key"
)

// Transport performs one HTTP round trip per call against the explorer endpoint and
// returns the response body without interpreting it.
//
// Param sets are query-tagged structs, url.Values or map[string]string. They are merged
// after the apikey and chainid parameters, in order, a later key replacing an earlier one.
type Transport interface {
	APIKey() string
	URL() string
	ChainID() Chain
	Get(ctx context.Context, params ...any) (json.RawMessage, error)
	Post(ctx context.Context, body any, params ...any) (json.RawMessage, error)
}

// HTTPTransport is the Transport used by NewClient.
type HTTPTransport struct {
	url     string
	apiKey  string
	chainID Chain
	client  *http.Client
	base    *sling.Sling
	logger  zerolog.Logger
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport builds a transport from a config. Missing URL and HTTP client are
// defaulted; the API key is taken as is.
func NewHTTPTransport(cfg ClientConfig, logger zerolog.Logger) *HTTPTransport {
	endpoint := strings.TrimSpace(cfg.URL)
	if endpoint == "" {
		endpoint = DefaultURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				MaxIdleConns:    defaultMaxIdleConns,
				IdleConnTimeout: defaultIdleConnTimeout,
			},
		}
	}

	return &HTTPTransport{
		url:     endpoint,
		apiKey:  cfg.APIKey,
		chainID: cfg.ChainID,
		client:  httpClient,
		base: sling.New().
			Base(endpoint).
			Client(httpClient).
			Set("User-Agent", "").
			Set(apiKeyHeader, cfg.APIKey),
		logger: logger,
	}
}

func (t *HTTPTransport) APIKey() string { return t.apiKey }

func (t *HTTPTransport) URL() string { return t.url }

func (t *HTTPTransport) ChainID() Chain { return t.chainID }

// Get sends the merged parameters as the query string of a GET request.
func (t *HTTPTransport) Get(ctx context.Context, params ...any) (json.RawMessage, error) {
	req, err := t.base.New().Get("").Request()
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return t.do(ctx, req, params)
}

// Post form-encodes body and sends the merged parameters as the query string.
func (t *HTTPTransport) Post(ctx context.Context, body any, params ...any) (json.RawMessage, error) {
	form, err := encodeParams(body)
	if err != nil {
		return nil, err
	}

	req, err := t.base.New().
		Post("").
		Set("Content-Type", "application/x-www-form-urlencoded").
		Body(strings.NewReader(form.Encode())).
		Request()
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return t.do(ctx, req, params)
}

func (t *HTTPTransport) do(ctx context.Context, req *http.Request, params []any) (json.RawMessage, error) {
	q, err := t.query(req.URL.RawQuery, params)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = q.Encode()
	req = req.WithContext(ctx)

	t.logger.Trace().
		Str("method", req.Method).
		Str("url", redactedURL(req.URL)).
		Msg("explorer request")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.logger.Debug().Int("status", resp.StatusCode).Str("response", string(body)).Msg("explorer request failed")
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: body}
	}

	t.logger.Trace().Int("status", resp.StatusCode).Bytes("response", body).Msg("explorer response")
	return body, nil
}

// query merges the base URL's own query, the fixed apikey/chainid pair and the caller
// param sets, in that order.
func (t *HTTPTransport) query(raw string, params []any) (url.Values, error) {
	q, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeParams, err)
	}

	q.Set("apikey", t.apiKey)
	if t.chainID != 0 {
		q.Set("chainid", strconv.FormatUint(uint64(t.chainID), 10))
	}

	for _, p := range params {
		values, err := encodeParams(p)
		if err != nil {
			return nil, err
		}
		for key, vals := range values {
			q[key] = vals
		}
	}
	return q, nil
}

// encodeParams turns one param set into url.Values.
func encodeParams(p any) (url.Values, error) {
	switch v := p.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		return v, nil
	case map[string]string:
		values := make(url.Values, len(v))
		for key, val := range v {
			values.Set(key, val)
		}
		return values, nil
	}

	values, err := query.Values(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeParams, err)
	}
	return values, nil
}

func redactedURL(u *url.URL) string {
	c := *u
	q := c.Query()
	if q.Has("apikey") {
		q.Set("apikey", "redacted")
	}
	c.RawQuery = q.Encode()
	return c.String()
}
