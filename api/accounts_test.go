package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNormalTxListByAddress(t *testing.T) {
	t.Parallel()

	client, stub := newStubClient(`{"status":"1","message":"OK","result":[{"hash":"0xabc"}]}`)

	txs, err := client.GetNormalTxListByAddress(context.Background(), NormalTxListOptions{
		Address:           "0x2c1ba59d6f58433fb1eaee7d20b26ed83bda51a3",
		BlockOptions:      BlockOptions{StartBlock: 10, Sort: SortDesc},
		PaginationOptions: PaginationOptions{Page: 1, Offset: 5},
	})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "0xabc", txs[0].Hash)

	assert.Equal(t, "GET", stub.method)
	assert.Equal(t, "account", stub.params.Get("module"))
	assert.Equal(t, "txlist", stub.params.Get("action"))
	assert.Equal(t, "0x2c1ba59d6f58433fb1eaee7d20b26ed83bda51a3", stub.params.Get("address"))
	assert.Equal(t, "10", stub.params.Get("startblock"))
	assert.Equal(t, "desc", stub.params.Get("sort"))
	assert.Equal(t, "1", stub.params.Get("page"))
	assert.Equal(t, "5", stub.params.Get("offset"))
	assert.False(t, stub.params.Has("endblock"))
}

func TestGetNormalTxListByAddressNoTransactions(t *testing.T) {
	t.Parallel()

	client, _ := newStubClient(`{"status":"0","message":"No transactions found","result":null}`)

	txs, err := client.GetNormalTxListByAddress(context.Background(), NormalTxListOptions{Address: "0x1"})
	require.NoError(t, err)
	require.NotNil(t, txs)
	assert.Empty(t, txs)
}

func TestGetErc20TokenTransferEventsListFailure(t *testing.T) {
	t.Parallel()

	body := `{"status":"0","message":"NOTOK","result":"Max rate limit reached"}`
	client, _ := newStubClient(body)

	_, err := client.GetErc20TokenTransferEventsList(context.Background(), Erc20TokenTransferEventsListOptions{
		ContractAddress: "0x9702230A8Ea53601f5cD2dc00fDBc13d4dF4A8c7",
	})
	require.ErrorIs(t, err, ErrRestResponse)
	assert.Contains(t, err.Error(), body)
	assert.Contains(t, err.Error(), "0x9702230A8Ea53601f5cD2dc00fDBc13d4dF4A8c7")
}

func TestGetBalanceMulti(t *testing.T) {
	t.Parallel()

	client, stub := newStubClient(`{"status":"1","message":"OK","result":[
		{"account":"0x1","balance":"40891626854930000000999"},
		{"account":"0x2","balance":"0"}]}`)

	balances, err := client.GetBalanceMulti(context.Background(), BalanceMultiOptions{
		Addresses: []string{"0x1", "0x2"},
		Tag:       TagLatest,
	})
	require.NoError(t, err)
	require.Equal(t, []AccountBalance{
		{Account: "0x1", Balance: "40891626854930000000999"},
		{Account: "0x2", Balance: "0"},
	}, balances)
	assert.Equal(t, "0x1,0x2", stub.params.Get("address"))
	assert.Equal(t, "latest", stub.params.Get("tag"))
}

func TestGetInternalTxListByHash(t *testing.T) {
	t.Parallel()

	client, stub := newStubClient(`{"status":"1","message":"OK","result":[{"type":"call","value":"1"}]}`)

	txs, err := client.GetInternalTxListByAddress(context.Background(), InternalTxListOptions{TxHash: "0xdead"})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "call", txs[0].Type)
	assert.Equal(t, "0xdead", stub.params.Get("txhash"))
	assert.False(t, stub.params.Has("address"))
}

func TestOptionsAreValidatedBeforeSending(t *testing.T) {
	t.Parallel()

	client, stub := newStubClient(`{"status":"1","message":"OK","result":[]}`)
	ctx := context.Background()

	_, err := client.GetNormalTxListByAddress(ctx, NormalTxListOptions{})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = client.GetNormalTxListByAddress(ctx, NormalTxListOptions{
		Address:      "0x1",
		BlockOptions: BlockOptions{Sort: "sideways"},
	})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = client.GetInternalTxListByAddress(ctx, InternalTxListOptions{})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = client.GetBalanceMulti(ctx, BalanceMultiOptions{Addresses: []string{"0x1", ""}})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = client.GetBlockNumberByTimestamp(ctx, BlockNumberByTimestampOptions{Timestamp: 1, Closest: "around"})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = client.GetLogs(ctx, LogsOptions{FromBlock: 1})
	require.ErrorIs(t, err, ErrInvalidOptions)

	assert.Zero(t, stub.calls)
}

func TestNumbersAreSentVerbatim(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client, stub := newStubClient(`{"status":"0","message":"NOTOK","result":"Invalid timestamp"}`)
	_, err := client.GetBlockNumberByTimestamp(ctx, BlockNumberByTimestampOptions{Timestamp: 0})
	require.ErrorIs(t, err, ErrRestResponse)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "0", stub.params.Get("timestamp"))

	addresses := make([]string, 21)
	for i := range addresses {
		addresses[i] = fmt.Sprintf("0x%d", i)
	}
	client, stub = newStubClient(`{"status":"0","message":"NOTOK","result":"Maximum of 20 addresses"}`)
	_, err = client.GetBalanceMulti(ctx, BalanceMultiOptions{Addresses: addresses})
	require.ErrorIs(t, err, ErrRestResponse)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, strings.Join(addresses, ","), stub.params.Get("address"))

	client, stub = newStubClient(`{"status":"1","message":"OK","result":[]}`)
	_, err = client.GetNormalTxListByAddress(ctx, NormalTxListOptions{
		Address:           "0x1",
		PaginationOptions: PaginationOptions{Page: -1, Offset: -5},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "-1", stub.params.Get("page"))
	assert.Equal(t, "-5", stub.params.Get("offset"))

	client, stub = newStubClient(`{"status":"1","message":"OK","result":{"CurrentBlock":"1","CountdownBlock":"0","RemainingBlock":"0","EstimateTimeInSec":"0"}}`)
	_, err = client.GetBlockCountdown(ctx, BlockCountdownOptions{})
	require.NoError(t, err)
	assert.Equal(t, "0", stub.params.Get("blockno"))
}

func TestTransportErrorIsReturnedUnchanged(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	client, stub := newStubClient("")
	stub.err = boom

	_, err := client.GetBalance(context.Background(), BalanceOptions{Address: "0x1"})
	require.Equal(t, boom, err)

	_, err = client.EthBlockNumber(context.Background())
	require.Equal(t, boom, err)
}
