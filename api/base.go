package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// txNotFoundMessage is how the explorer reports an empty list. It comes with status "0"
// but is not a failure.
const txNotFoundMessage = "No transactions found"

var emptyList = json.RawMessage("[]")

// Client handles calls to an Etherscan-compatible explorer. It holds no mutable state
// and is safe for concurrent use.
type Client struct {
	transport Transport
	validate  *validator.Validate
	logger    zerolog.Logger
}

type config struct {
	transport  Transport
	httpClient *http.Client
	logger     zerolog.Logger
}

type Option func(*config)

// WithTransport replaces the HTTP transport built from ClientConfig.
func WithTransport(t Transport) Option {
	return func(cfg *config) {
		cfg.transport = t
	}
}

// WithHTTPClient sets the *http.Client used by the default transport. It takes
// precedence over ClientConfig.HTTPClient.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

// WithLogger sets the logger; requests and responses are logged at trace level.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// NewClient creates a new explorer client
func NewClient(cfg ClientConfig, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	c := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}

	logger := c.logger.With().Str("component", "explorer").Logger()
	if c.httpClient != nil {
		cfg.HTTPClient = c.httpClient
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(cfg, logger)
	}

	return &Client{
		transport: c.transport,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}, nil
}

// Transport returns the transport the client sends requests through.
func (c *Client) Transport() Transport {
	return c.transport
}

// checkRestEnvelope unwraps the result of a REST envelope. The "No transactions found"
// message yields an empty list whatever the status.
func checkRestEnvelope(body json.RawMessage, options any) (json.RawMessage, error) {
	var env RestEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	if env.Message == txNotFoundMessage {
		return emptyList, nil
	}

	if (env.Status != "" && env.Status != StatusSuccess) || env.ErrorMessage() != "" {
		return nil, newResponseError(ErrRestResponse, body, options)
	}

	return env.Result, nil
}

// checkRPCEnvelope unwraps the result of a proxy envelope. Only an error object with a
// code is a failure; any result, including "0x0" or null, is returned as is.
func checkRPCEnvelope(body json.RawMessage, options any) (json.RawMessage, error) {
	var env RPCEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	if _, ok := env.ErrorCode(); ok {
		return nil, newResponseError(ErrRPCResponse, body, options)
	}

	return env.Result, nil
}

func newResponseError(kind error, body json.RawMessage, options any) *ResponseError {
	envelope := string(body)
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err == nil {
		envelope = buf.String()
	}

	return &ResponseError{
		Kind:     kind,
		Envelope: envelope,
		Options:  describeOptions(options),
	}
}

// describeOptions renders options the way they were sent, as a JSON object.
func describeOptions(options any) string {
	values, err := encodeParams(options)
	if err != nil {
		return "{}"
	}

	flat := make(map[string]string, len(values))
	for key, vals := range values {
		flat[key] = strings.Join(vals, ",")
	}

	out, err := json.Marshal(flat)
	if err != nil {
		return "{}"
	}
	return string(out)
}

func (c *Client) validateOptions(options any) error {
	if options == nil {
		return nil
	}
	if err := c.validate.Struct(options); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

// decodeResult decodes a validated payload into T. An absent payload, or the empty list
// produced for "No transactions found" when T is not a slice, gives T's zero value.
func decodeResult[T any](raw json.RawMessage) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, nil
	}
	if bytes.Equal(raw, emptyList) && reflect.TypeOf((*T)(nil)).Elem().Kind() != reflect.Slice {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return out, nil
}

// getRest performs a GET against a REST endpoint.
func getRest[T any](ctx context.Context, c *Client, ep endpoint, options any) (T, error) {
	var zero T
	if err := c.validateOptions(options); err != nil {
		return zero, err
	}

	body, err := c.transport.Get(ctx, options, ep)
	if err != nil {
		return zero, err
	}

	raw, err := checkRestEnvelope(body, options)
	if err != nil {
		c.logFailure(ep, err)
		return zero, err
	}
	return decodeResult[T](raw)
}

// postRest performs a POST with a form body against a REST endpoint.
func postRest[T any](ctx context.Context, c *Client, ep endpoint, options any) (T, error) {
	var zero T
	if err := c.validateOptions(options); err != nil {
		return zero, err
	}

	body, err := c.transport.Post(ctx, options, ep)
	if err != nil {
		return zero, err
	}

	raw, err := checkRestEnvelope(body, options)
	if err != nil {
		c.logFailure(ep, err)
		return zero, err
	}
	return decodeResult[T](raw)
}

// getRPC performs a GET against a proxy endpoint.
func getRPC[T any](ctx context.Context, c *Client, action Action, options any) (T, error) {
	var zero T
	if err := c.validateOptions(options); err != nil {
		return zero, err
	}

	ep := endpoint{Module: ModuleProxy, Action: action}
	body, err := c.transport.Get(ctx, options, ep)
	if err != nil {
		return zero, err
	}

	raw, err := checkRPCEnvelope(body, options)
	if err != nil {
		c.logFailure(ep, err)
		return zero, err
	}
	return decodeResult[T](raw)
}

func (c *Client) logFailure(ep endpoint, err error) {
	c.logger.Debug().
		Err(err).
		Str("module", string(ep.Module)).
		Str("action", string(ep.Action)).
		Msg("explorer call failed")
}
