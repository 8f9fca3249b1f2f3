package cmd

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/chinmay1088/explorer/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rpcResult(result string) func(url.Values) string {
	return func(url.Values) string {
		return `{"jsonrpc":"2.0","id":83,"result":` + result + `}`
	}
}

func TestRPCBlockNumber(t *testing.T) {
	srv := newFakeExplorer(t, rpcResult(`"0x1427a5f"`))

	out, err := executeCommand(t, srv.args("rpc", "block-number")...)
	require.NoError(t, err)
	assert.Contains(t, out, "21133919 (0x1427a5f)")

	q := srv.last(t)
	assert.Equal(t, "proxy", q.Get("module"))
	assert.Equal(t, "eth_blockNumber", q.Get("action"))
}

func TestRPCGasPrice(t *testing.T) {
	srv := newFakeExplorer(t, rpcResult(`"0x3b9aca00"`))

	out, err := executeCommand(t, srv.args("rpc", "gas-price")...)
	require.NoError(t, err)
	assert.Contains(t, out, "1000000000 (0x3b9aca00)")
	assert.Contains(t, out, "1 gwei")
}

func TestRPCError(t *testing.T) {
	srv := newFakeExplorer(t, func(url.Values) string {
		return `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"nonce too low"}}`
	})

	_, err := executeCommand(t, srv.args("rpc", "send", "0xf86c")...)
	require.ErrorIs(t, err, api.ErrRPCResponse)
	assert.Contains(t, err.Error(), "nonce too low")
	assert.Equal(t, "0xf86c", srv.last(t).Get("hex"))
}

func TestRPCBlockConvertsNumber(t *testing.T) {
	srv := newFakeExplorer(t, rpcResult(`{"number":"0x10d4f","hash":"0xblock","transactions":["0xa"]}`))

	out, err := executeCommand(t, srv.args("rpc", "block", "68943", "--full")...)
	require.NoError(t, err)
	assert.Contains(t, out, `"hash": "0xblock"`)

	q := srv.last(t)
	assert.Equal(t, "eth_getBlockByNumber", q.Get("action"))
	assert.Equal(t, "0x10d4f", q.Get("tag"))
	assert.Equal(t, "true", q.Get("boolean"))
}

func TestRPCReceiptNotFound(t *testing.T) {
	srv := newFakeExplorer(t, rpcResult(`null`))

	out, err := executeCommand(t, srv.args("rpc", "receipt", "0xhash")...)
	require.NoError(t, err)
	assert.Contains(t, out, "receipt not found")
}

func TestRPCNonceDefaultsToLatest(t *testing.T) {
	srv := newFakeExplorer(t, rpcResult(`"0x2"`))

	out, err := executeCommand(t, srv.args("rpc", "nonce", "0xabc")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Nonce: 2 (0x2)")
	assert.Equal(t, "latest", srv.last(t).Get("tag"))
}

func TestRPCStorage(t *testing.T) {
	srv := newFakeExplorer(t, rpcResult(`"0x00000000000000000000000000000000000000000000000000000000000004d2"`))

	out, err := executeCommand(t, srv.args("rpc", "storage", "0xabc", "3", "pending")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Storage: 1234")

	q := srv.last(t)
	assert.Equal(t, "0x3", q.Get("position"))
	assert.Equal(t, "pending", q.Get("tag"))
}

func TestRPCEstimateGas(t *testing.T) {
	srv := newFakeExplorer(t, rpcResult(`"0x5208"`))

	out, err := executeCommand(t, srv.args("rpc", "estimate-gas", "0xto", "0x", "--value", "0xff22")...)
	require.NoError(t, err)
	assert.Contains(t, out, "21000")

	q := srv.last(t)
	assert.Equal(t, "eth_estimateGas", q.Get("action"))
	assert.Equal(t, "0xff22", q.Get("value"))
	assert.Empty(t, q.Get("gasPrice"))
}

func TestBlockTag(t *testing.T) {
	tests := []struct {
		in      string
		want    api.Tag
		wantErr bool
	}{
		{in: "latest", want: api.TagLatest},
		{in: "PENDING", want: api.TagPending},
		{in: "0x10d4f", want: "0x10d4f"},
		{in: "68943", want: "0x10d4f"},
		{in: "0", want: "0x0"},
		{in: "0xzz", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "soon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := blockTag(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndexArg(t *testing.T) {
	got, err := indexArg("16")
	require.NoError(t, err)
	assert.Equal(t, "0x10", got)

	got, err = indexArg("0x0")
	require.NoError(t, err)
	assert.Equal(t, "0x0", got)

	_, err = indexArg("first")
	require.Error(t, err)
}

func TestChainsList(t *testing.T) {
	out, err := executeCommand(t, "--chain", "base", "chains")
	require.NoError(t, err)
	assert.Contains(t, out, "Current chain: base (8453)")
	assert.Contains(t, out, "➜ 8453")
	assert.Contains(t, out, "11155111     sepolia")
}

func TestChainsUseWritesConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "explorer.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("api-key: kept\n"), 0o600))

	out, err := executeCommand(t, "--config", cfg, "chains", "use", "optimism")
	require.NoError(t, err)
	assert.Contains(t, out, "Switched to optimism (10)")

	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "chain: optimism")
	assert.Contains(t, string(data), "api-key: kept")

	_, err = executeCommand(t, "chains", "use", "nowhere")
	require.Error(t, err)
}
