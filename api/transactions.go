package api

import "context"

// GetContractExecutionStatus reports whether a contract execution failed.
func (c *Client) GetContractExecutionStatus(ctx context.Context, opts TxHashOptions) (*ContractExecutionStatus, error) {
	return getRest[*ContractExecutionStatus](ctx, c, endpoint{ModuleTransaction, ActionGetStatus}, opts)
}

// GetTxReceiptStatus returns the receipt status of a post-Byzantium transaction.
func (c *Client) GetTxReceiptStatus(ctx context.Context, opts TxHashOptions) (*TxReceiptStatus, error) {
	return getRest[*TxReceiptStatus](ctx, c, endpoint{ModuleTransaction, ActionGetTxReceiptStatus}, opts)
}
