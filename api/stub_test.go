package api

import (
	"context"
	"encoding/json"
	"net/url"
)

// stubTransport answers every call with a canned body and records what it was sent.
type stubTransport struct {
	body string
	err  error

	calls  int
	method string
	params url.Values
	form   url.Values
}

var _ Transport = (*stubTransport)(nil)

func (s *stubTransport) APIKey() string { return "key" }

func (s *stubTransport) URL() string { return DefaultURL }

func (s *stubTransport) ChainID() Chain { return ChainEthereum }

func (s *stubTransport) Get(_ context.Context, params ...any) (json.RawMessage, error) {
	s.calls++
	s.method = "GET"
	s.params = mergeForTest(params)
	return s.respond()
}

func (s *stubTransport) Post(_ context.Context, body any, params ...any) (json.RawMessage, error) {
	s.calls++
	s.method = "POST"
	s.params = mergeForTest(params)
	s.form = mergeForTest([]any{body})
	return s.respond()
}

func (s *stubTransport) respond() (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.body), nil
}

func mergeForTest(params []any) url.Values {
	out := url.Values{}
	for _, p := range params {
		values, err := encodeParams(p)
		if err != nil {
			panic(err)
		}
		for key, vals := range values {
			out[key] = vals
		}
	}
	return out
}

func newStubClient(body string) (*Client, *stubTransport) {
	stub := &stubTransport{body: body}
	client, err := NewClient(ClientConfig{APIKey: "key"}, WithTransport(stub))
	if err != nil {
		panic(err)
	}
	return client, stub
}
