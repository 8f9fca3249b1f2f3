// Package api is a typed client for Etherscan-compatible block explorer APIs.
//
// Files:
//	config.go        - default endpoint, chain identifiers and ClientConfig
//	params.go        - module/action names and the other enumerated parameters
//	options.go       - per-endpoint option structs
//	types.go         - response envelopes and result records
//	transport.go     - HTTP transport (apikey/chainid injection, raw body)
//	base.go          - Client, NewClient and the two envelope validators
//	accounts.go      - account module (balances, transaction lists, transfers)
//	blocks.go        - block module (block by timestamp, countdown)
//	tokens.go        - token balance
//	transactions.go  - transaction status checks
//	contracts.go     - source code verification
//	logs.go          - event logs
//	proxy.go         - eth_* JSON-RPC proxy endpoints
//	format.go        - hex and wei helpers for callers
//
// Usage:
//	client, err := api.NewClient(api.ClientConfig{APIKey: key, ChainID: api.ChainEthereum})
//	txs, err := client.GetNormalTxListByAddress(ctx, api.NormalTxListOptions{Address: addr})
//	head, err := client.EthBlockNumber(ctx)
package api
