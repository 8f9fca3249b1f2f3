package api

import "context"

// GetAccountTokenBalance returns an address's balance of an ERC-20 token in the token's
// smallest unit.
func (c *Client) GetAccountTokenBalance(ctx context.Context, opts TokenBalanceOptions) (string, error) {
	return getRest[string](ctx, c, endpoint{ModuleAccount, ActionTokenBalance}, opts)
}
