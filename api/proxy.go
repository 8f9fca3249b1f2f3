package api

import "context"

// Geth/Parity proxy endpoints. Results are the hex strings and objects of the underlying
// JSON-RPC call, returned without conversion.

// EthBlockNumber returns the number of the most recent block, in hex.
func (c *Client) EthBlockNumber(ctx context.Context) (string, error) {
	return getRPC[string](ctx, c, ActionEthBlockNumber, nil)
}

// EthGetBlockByNumber returns a block. A missing block yields nil.
func (c *Client) EthGetBlockByNumber(ctx context.Context, opts EthBlockByNumberOptions) (*Block, error) {
	return getRPC[*Block](ctx, c, ActionEthGetBlockByNumber, opts)
}

// EthGetUncleByBlockNumberAndIndex returns an uncle of a block by position.
func (c *Client) EthGetUncleByBlockNumberAndIndex(ctx context.Context, opts EthUncleByBlockNumberAndIndexOptions) (*UncleBlock, error) {
	return getRPC[*UncleBlock](ctx, c, ActionEthGetUncleByBlockNumberAndIndex, opts)
}

// EthGetBlockTransactionCountByNumber returns the number of transactions in a block, in hex.
func (c *Client) EthGetBlockTransactionCountByNumber(ctx context.Context, opts EthBlockTransactionCountByNumberOptions) (string, error) {
	return getRPC[string](ctx, c, ActionEthGetBlockTransactionCountByNumber, opts)
}

func (c *Client) EthGetTransactionByHash(ctx context.Context, opts EthTransactionByHashOptions) (*RPCTransaction, error) {
	return getRPC[*RPCTransaction](ctx, c, ActionEthGetTransactionByHash, opts)
}

func (c *Client) EthGetTransactionByBlockNumberAndIndex(ctx context.Context, opts EthTransactionByBlockNumberAndIndexOptions) (*RPCTransaction, error) {
	return getRPC[*RPCTransaction](ctx, c, ActionEthGetTransactionByBlockNumberAndIndex, opts)
}

// EthGetTransactionCount returns the nonce of an address, in hex.
func (c *Client) EthGetTransactionCount(ctx context.Context, opts EthTransactionCountOptions) (string, error) {
	return getRPC[string](ctx, c, ActionEthGetTransactionCount, opts)
}

// EthSendRawTransaction broadcasts a signed transaction and returns its hash.
func (c *Client) EthSendRawTransaction(ctx context.Context, opts EthSendRawTransactionOptions) (string, error) {
	return getRPC[string](ctx, c, ActionEthSendRawTransaction, opts)
}

// EthGetTransactionReceipt returns nil for a pending or unknown transaction.
func (c *Client) EthGetTransactionReceipt(ctx context.Context, opts EthTransactionReceiptOptions) (*TxReceipt, error) {
	return getRPC[*TxReceipt](ctx, c, ActionEthGetTransactionReceipt, opts)
}

// EthCall executes a message call without creating a transaction and returns the
// call's return data.
func (c *Client) EthCall(ctx context.Context, opts EthCallOptions) (string, error) {
	return getRPC[string](ctx, c, ActionEthCall, opts)
}

// EthGetCode returns the code deployed at an address.
func (c *Client) EthGetCode(ctx context.Context, opts EthCodeOptions) (string, error) {
	return getRPC[string](ctx, c, ActionEthGetCode, opts)
}

// EthGetStorageAt returns the 32-byte word stored at a position.
func (c *Client) EthGetStorageAt(ctx context.Context, opts EthStorageAtOptions) (string, error) {
	return getRPC[string](ctx, c, ActionEthGetStorageAt, opts)
}

// EthGasPrice returns the current gas price in wei, in hex.
func (c *Client) EthGasPrice(ctx context.Context) (string, error) {
	return getRPC[string](ctx, c, ActionEthGasPrice, nil)
}

// EthEstimateGas returns the gas a call would use, in hex. Nothing is added to the chain.
func (c *Client) EthEstimateGas(ctx context.Context, opts EthEstimateGasOptions) (string, error) {
	return getRPC[string](ctx, c, ActionEthEstimateGas, opts)
}
