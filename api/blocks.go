package api

import "context"

// GetBlockNumberByTimestamp returns the number of the block closest to a unix timestamp,
// as a decimal string.
func (c *Client) GetBlockNumberByTimestamp(ctx context.Context, opts BlockNumberByTimestampOptions) (string, error) {
	if opts.Closest == "" {
		opts.Closest = ClosestAfter
	}
	return getRest[string](ctx, c, endpoint{ModuleBlock, ActionGetBlockByTime}, opts)
}

// GetBlockCountdown estimates how long until a future block is mined.
func (c *Client) GetBlockCountdown(ctx context.Context, opts BlockCountdownOptions) (*BlockCountdown, error) {
	return getRest[*BlockCountdown](ctx, c, endpoint{ModuleBlock, ActionGetBlockCountdown}, opts)
}
