package api

import "context"

// GetLogs returns event logs matching an address and/or topics in a block range.
func (c *Client) GetLogs(ctx context.Context, opts LogsOptions) ([]Log, error) {
	return getRest[[]Log](ctx, c, endpoint{ModuleLogs, ActionGetLogs}, opts)
}
