package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method string
	query  url.Values
	header http.Header
	form   url.Values
}

func newCaptureServer(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	got := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.query = r.URL.Query()
		got.header = r.Header.Clone()
		if r.Method == http.MethodPost && r.ParseForm() == nil {
			got.form = r.PostForm
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestClientSendsAuthAndChain(t *testing.T) {
	t.Parallel()

	srv, got := newCaptureServer(t, http.StatusOK, `{"status":"1","message":"OK","result":[{"hash":"0xabc"}]}`)

	client, err := NewClient(ClientConfig{URL: srv.URL, APIKey: "secret", ChainID: ChainSepolia})
	require.NoError(t, err)

	txs, err := client.GetNormalTxListByAddress(context.Background(), NormalTxListOptions{
		Address:           "0x1",
		PaginationOptions: PaginationOptions{Page: 1, Offset: 10},
	})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "0xabc", txs[0].Hash)

	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "secret", got.query.Get("apikey"))
	assert.Equal(t, "11155111", got.query.Get("chainid"))
	assert.Equal(t, "account", got.query.Get("module"))
	assert.Equal(t, "txlist", got.query.Get("action"))
	assert.Equal(t, "0x1", got.query.Get("address"))
	assert.Equal(t, "1", got.query.Get("page"))
	assert.Equal(t, "10", got.query.Get("offset"))

	assert.Equal(t, "secret", got.header.Get("Ok-Access-Key"))
	assert.Empty(t, got.header.Get("User-Agent"))
}

func TestTransportOmitsUnsetChain(t *testing.T) {
	t.Parallel()

	srv, got := newCaptureServer(t, http.StatusOK, `{"jsonrpc":"2.0","id":1,"result":"0x1"}`)

	tr := NewHTTPTransport(ClientConfig{URL: srv.URL, APIKey: "secret"}, zerolog.Nop())
	body, err := tr.Get(context.Background(), endpoint{ModuleProxy, ActionEthBlockNumber})
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"result":"0x1"}`, string(body))

	assert.Equal(t, "secret", got.query.Get("apikey"))
	assert.False(t, got.query.Has("chainid"))
}

func TestTransportMergeOrder(t *testing.T) {
	t.Parallel()

	srv, got := newCaptureServer(t, http.StatusOK, `{}`)

	tr := NewHTTPTransport(ClientConfig{URL: srv.URL + "/api?network=testnet", APIKey: "secret", ChainID: ChainEthereum}, zerolog.Nop())
	_, err := tr.Get(context.Background(),
		map[string]string{"apikey": "other", "chainid": "5", "module": "logs"},
		url.Values{"address": {"0x1"}},
		endpoint{ModuleAccount, ActionBalance},
	)
	require.NoError(t, err)

	// caller params are applied after apikey/chainid and may replace them
	assert.Equal(t, "other", got.query.Get("apikey"))
	assert.Equal(t, "5", got.query.Get("chainid"))
	assert.Equal(t, "account", got.query.Get("module"))
	assert.Equal(t, "balance", got.query.Get("action"))
	assert.Equal(t, "0x1", got.query.Get("address"))
	assert.Equal(t, "testnet", got.query.Get("network"))
	assert.Equal(t, []string{"other"}, got.query["apikey"])
}

func TestTransportPostForm(t *testing.T) {
	t.Parallel()

	srv, got := newCaptureServer(t, http.StatusOK, `{"status":"1","message":"OK","result":"ezq878u486pzijkvvmerl6a9mzwhv6sefgvqi5tkwceejc7tvn"}`)

	client, err := NewClient(ClientConfig{URL: srv.URL, APIKey: "secret", ChainID: ChainBase})
	require.NoError(t, err)

	guid, err := client.VerifySourceCode(context.Background(), VerifySourceCodeOptions{
		ContractAddress:      "0x1",
		SourceCode:           "pragma solidity ^0.8.0; contract A {}",
		CodeFormat:           CodeFormatSoliditySingleFile,
		ContractName:         "A",
		CompilerVersion:      "v0.8.24+commit.e11b9ed9",
		OptimizationUsed:     "1",
		Runs:                 200,
		ConstructorArguments: "0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "ezq878u486pzijkvvmerl6a9mzwhv6sefgvqi5tkwceejc7tvn", guid)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "application/x-www-form-urlencoded", got.header.Get("Content-Type"))
	assert.Equal(t, "contract", got.query.Get("module"))
	assert.Equal(t, "verifysourcecode", got.query.Get("action"))
	assert.Equal(t, "secret", got.query.Get("apikey"))
	assert.Equal(t, "8453", got.query.Get("chainid"))
	assert.False(t, got.query.Has("sourceCode"))

	assert.Equal(t, "pragma solidity ^0.8.0; contract A {}", got.form.Get("sourceCode"))
	assert.Equal(t, "solidity-single-file", got.form.Get("codeformat"))
	assert.Equal(t, "200", got.form.Get("runs"))
	assert.Equal(t, "0000", got.form.Get("constructorArguements"))
	assert.False(t, got.form.Has("evmversion"))
}

func TestTransportNon2xx(t *testing.T) {
	t.Parallel()

	srv, _ := newCaptureServer(t, http.StatusBadGateway, `upstream down`)

	client, err := NewClient(ClientConfig{URL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	_, err = client.EthGasPrice(context.Background())
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "upstream down", string(httpErr.Body))
	assert.NotErrorIs(t, err, ErrRPCResponse)
}

func TestTransportNetworkErrorUnchanged(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	endpointURL := srv.URL
	srv.Close()

	tr := NewHTTPTransport(ClientConfig{URL: endpointURL, APIKey: "secret"}, zerolog.Nop())
	_, err := tr.Get(context.Background())

	var urlErr *url.Error
	require.ErrorAs(t, err, &urlErr)
	assert.NotContains(t, err.Error(), "failed to")
}

func TestTransportHonoursContext(t *testing.T) {
	t.Parallel()

	srv, _ := newCaptureServer(t, http.StatusOK, `{}`)
	tr := NewHTTPTransport(ClientConfig{URL: srv.URL, APIKey: "secret"}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Get(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRedactedURL(t *testing.T) {
	t.Parallel()

	u, err := url.Parse("https://api.etherscan.io/v2/api?apikey=secret&module=account")
	require.NoError(t, err)
	assert.Equal(t, "https://api.etherscan.io/v2/api?apikey=redacted&module=account", redactedURL(u))
}
