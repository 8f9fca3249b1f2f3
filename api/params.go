package api

// Module routes a request to a group of handlers on the explorer side.
type Module string

const (
	ModuleAccount     Module = "account"
	ModuleBlock       Module = "block"
	ModuleContract    Module = "contract"
	ModuleLogs        Module = "logs"
	ModuleProxy       Module = "proxy"
	ModuleTransaction Module = "transaction"
)

// Action selects the handler inside a module.
type Action string

const (
	ActionBalance            Action = "balance"
	ActionBalanceMulti       Action = "balancemulti"
	ActionGetBlockByTime     Action = "getblocknobytime"
	ActionGetBlockCountdown  Action = "getblockcountdown"
	ActionGetLogs            Action = "getLogs"
	ActionTokenBalance       Action = "tokenbalance"
	ActionTxList             Action = "txlist"
	ActionTokenTxList        Action = "tokentx"
	ActionTxListInternal     Action = "txlistinternal"
	ActionGetStatus          Action = "getstatus"
	ActionGetTxReceiptStatus Action = "gettxreceiptstatus"
	ActionVerifySourceCode   Action = "verifysourcecode"
	ActionCheckVerifyStatus  Action = "checkverifystatus"

	ActionEthBlockNumber                         Action = "eth_blockNumber"
	ActionEthGetBlockByNumber                    Action = "eth_getBlockByNumber"
	ActionEthGetUncleByBlockNumberAndIndex       Action = "eth_getUncleByBlockNumberAndIndex"
	ActionEthGetBlockTransactionCountByNumber    Action = "eth_getBlockTransactionCountByNumber"
	ActionEthGetTransactionByHash                Action = "eth_getTransactionByHash"
	ActionEthGetTransactionByBlockNumberAndIndex Action = "eth_getTransactionByBlockNumberAndIndex"
	ActionEthGetTransactionCount                 Action = "eth_getTransactionCount"
	ActionEthSendRawTransaction                  Action = "eth_sendRawTransaction"
	ActionEthGetTransactionReceipt               Action = "eth_getTransactionReceipt"
	ActionEthCall                                Action = "eth_call"
	ActionEthGetCode                             Action = "eth_getCode"
	ActionEthGetStorageAt                        Action = "eth_getStorageAt"
	ActionEthGasPrice                            Action = "eth_gasPrice"
	ActionEthEstimateGas                         Action = "eth_estimateGas"
)

// Sort order of list endpoints.
type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

// Tag is a symbolic block reference. Proxy endpoints also accept a hex block number
// wherever a Tag is accepted.
type Tag string

const (
	TagEarliest Tag = "earliest"
	TagPending  Tag = "pending"
	TagLatest   Tag = "latest"
)

// Status of a REST envelope.
type Status string

const (
	StatusSuccess Status = "1"
	StatusFail    Status = "0"
)

// Closest picks the block before or after a timestamp that falls between blocks.
type Closest string

const (
	ClosestBefore Closest = "before"
	ClosestAfter  Closest = "after"
)

// TopicOperation combines two topic filters of a logs query.
type TopicOperation string

const (
	TopicAnd TopicOperation = "and"
	TopicOr  TopicOperation = "or"
)

// CodeFormat of submitted source code.
type CodeFormat string

const (
	CodeFormatSoliditySingleFile        CodeFormat = "solidity-single-file"
	CodeFormatSolidityStandardJSONInput CodeFormat = "solidity-standard-json-input"
)

// endpoint is the module/action pair appended to every request. It is encoded last so
// options can never reroute a call.
type endpoint struct {
	Module Module `url:"module"`
	Action Action `url:"action"`
}
