package api

import "context"

// GetBalance returns the native balance of an address, in wei.
func (c *Client) GetBalance(ctx context.Context, opts BalanceOptions) (string, error) {
	return getRest[string](ctx, c, endpoint{ModuleAccount, ActionBalance}, opts)
}

// GetBalanceMulti returns the native balances of up to 20 addresses.
func (c *Client) GetBalanceMulti(ctx context.Context, opts BalanceMultiOptions) ([]AccountBalance, error) {
	return getRest[[]AccountBalance](ctx, c, endpoint{ModuleAccount, ActionBalanceMulti}, opts)
}

// GetNormalTxListByAddress returns the 'normal' transactions of an address.
func (c *Client) GetNormalTxListByAddress(ctx context.Context, opts NormalTxListOptions) ([]Transaction, error) {
	return getRest[[]Transaction](ctx, c, endpoint{ModuleAccount, ActionTxList}, opts)
}

// GetInternalTxListByAddress returns internal transactions by address or by transaction hash.
func (c *Client) GetInternalTxListByAddress(ctx context.Context, opts InternalTxListOptions) ([]InternalTransaction, error) {
	return getRest[[]InternalTransaction](ctx, c, endpoint{ModuleAccount, ActionTxListInternal}, opts)
}

// GetErc20TokenTransferEventsList returns ERC-20 transfers of a token contract,
// optionally restricted to one address.
func (c *Client) GetErc20TokenTransferEventsList(ctx context.Context, opts Erc20TokenTransferEventsListOptions) ([]Erc20TokenTransferEvent, error) {
	return getRest[[]Erc20TokenTransferEvent](ctx, c, endpoint{ModuleAccount, ActionTokenTxList}, opts)
}
