package api

import (
	"bytes"
	"encoding/json"
)

// RestEnvelope wraps every non-proxy response. Error is kept raw since explorers
// disagree on its shape; only an object's message counts as a failure.
type RestEnvelope struct {
	Status  Status          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// ErrorMessage returns error.message, or "" when error is absent, not an object, or
// carries an empty message.
func (e RestEnvelope) ErrorMessage() string {
	var obj struct {
		Message json.RawMessage `json:"message"`
	}
	if !isJSONObject(e.Error) || json.Unmarshal(e.Error, &obj) != nil || !isTruthy(obj.Message) {
		return ""
	}
	var msg string
	if json.Unmarshal(obj.Message, &msg) == nil {
		return msg
	}
	return string(obj.Message)
}

// RPCEnvelope wraps every proxy (eth_*) response.
type RPCEnvelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// ErrorCode returns error.code as sent. ok is false when error is absent, not an
// object, or has no code.
func (e RPCEnvelope) ErrorCode() (code json.RawMessage, ok bool) {
	var obj struct {
		Code json.RawMessage `json:"code"`
	}
	if !isJSONObject(e.Error) || json.Unmarshal(e.Error, &obj) != nil {
		return nil, false
	}
	if len(obj.Code) == 0 || string(obj.Code) == "null" {
		return nil, false
	}
	return obj.Code, true
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// isTruthy reports whether a JSON value is set to something other than null, false,
// 0 or an empty string.
func isTruthy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}

// Transaction is an entry of the txlist endpoint. Numbers are decimal strings.
type Transaction struct {
	BlockNumber       string `json:"blockNumber"`
	TimeStamp         string `json:"timeStamp"`
	Hash              string `json:"hash"`
	Nonce             string `json:"nonce"`
	BlockHash         string `json:"blockHash"`
	TransactionIndex  string `json:"transactionIndex"`
	From              string `json:"from"`
	To                string `json:"to"`
	Value             string `json:"value"`
	Gas               string `json:"gas"`
	GasPrice          string `json:"gasPrice"`
	IsError           string `json:"isError,omitempty"`
	TxReceiptStatus   string `json:"txreceipt_status"`
	Input             string `json:"input"`
	ContractAddress   string `json:"contractAddress"`
	CumulativeGasUsed string `json:"cumulativeGasUsed"`
	GasUsed           string `json:"gasUsed"`
	Confirmations     string `json:"confirmations"`
	MethodID          string `json:"methodId"`
	FunctionName      string `json:"functionName"`
}

// InternalTransaction is an entry of the txlistinternal endpoint.
type InternalTransaction struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash,omitempty"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	ContractAddress string `json:"contractAddress"`
	Input           string `json:"input"`
	Type            string `json:"type"`
	Gas             string `json:"gas"`
	GasUsed         string `json:"gasUsed"`
	TraceID         string `json:"traceId"`
	IsError         string `json:"isError"`
	ErrCode         string `json:"errCode"`
}

// Erc20TokenTransferEvent is an entry of the tokentx endpoint.
type Erc20TokenTransferEvent struct {
	BlockNumber       string `json:"blockNumber"`
	TimeStamp         string `json:"timeStamp"`
	Hash              string `json:"hash"`
	Nonce             string `json:"nonce"`
	BlockHash         string `json:"blockHash"`
	From              string `json:"from"`
	ContractAddress   string `json:"contractAddress"`
	To                string `json:"to"`
	Value             string `json:"value"`
	TokenName         string `json:"tokenName"`
	TokenSymbol       string `json:"tokenSymbol"`
	TokenDecimal      string `json:"tokenDecimal"`
	TransactionIndex  string `json:"transactionIndex"`
	Gas               string `json:"gas"`
	GasPrice          string `json:"gasPrice"`
	GasUsed           string `json:"gasUsed"`
	CumulativeGasUsed string `json:"cumulativeGasUsed"`
	Input             string `json:"input"`
	Confirmations     string `json:"confirmations"`
}

// AccountBalance is an entry of the balancemulti endpoint. Balance is in wei.
type AccountBalance struct {
	Account string `json:"account"`
	Balance string `json:"balance"`
}

// BlockCountdown estimates the time until a future block.
type BlockCountdown struct {
	CurrentBlock      string `json:"CurrentBlock"`
	CountdownBlock    string `json:"CountdownBlock"`
	RemainingBlock    string `json:"RemainingBlock"`
	EstimateTimeInSec string `json:"EstimateTimeInSec"`
}

// Log is an entry of the logs endpoint. Numbers are hex strings.
type Log struct {
	Address          string   `json:"address"`
	Topics           []string `json:"topics"`
	Data             string   `json:"data"`
	BlockNumber      string   `json:"blockNumber"`
	BlockHash        string   `json:"blockHash"`
	TimeStamp        string   `json:"timeStamp"`
	GasPrice         string   `json:"gasPrice"`
	GasUsed          string   `json:"gasUsed"`
	LogIndex         string   `json:"logIndex"`
	TransactionHash  string   `json:"transactionHash"`
	TransactionIndex string   `json:"transactionIndex"`
}

// ContractExecutionStatus: IsError "0" means the execution succeeded.
type ContractExecutionStatus struct {
	IsError        string `json:"isError"`
	ErrDescription string `json:"errDescription"`
}

// TxReceiptStatus: Status "1" means success, "0" failure, "" pre-Byzantium.
type TxReceiptStatus struct {
	Status string `json:"status"`
}

// RPCTransaction is a transaction object as returned by the proxy module.
type RPCTransaction struct {
	BlockHash            string          `json:"blockHash"`
	BlockNumber          string          `json:"blockNumber"`
	From                 string          `json:"from"`
	Gas                  string          `json:"gas"`
	GasPrice             string          `json:"gasPrice"`
	MaxFeePerGas         string          `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas string          `json:"maxPriorityFeePerGas,omitempty"`
	Hash                 string          `json:"hash"`
	Input                string          `json:"input"`
	Nonce                string          `json:"nonce"`
	To                   string          `json:"to"`
	TransactionIndex     string          `json:"transactionIndex"`
	Value                string          `json:"value"`
	Type                 string          `json:"type"`
	AccessList           json.RawMessage `json:"accessList,omitempty"`
	ChainID              string          `json:"chainId,omitempty"`
	V                    string          `json:"v"`
	R                    string          `json:"r"`
	S                    string          `json:"s"`
	YParity              string          `json:"yParity,omitempty"`
}

// Block is a block object as returned by eth_getBlockByNumber. Transactions holds either
// hashes or full transaction objects depending on the request.
type Block struct {
	BaseFeePerGas    string          `json:"baseFeePerGas,omitempty"`
	Difficulty       string          `json:"difficulty"`
	ExtraData        string          `json:"extraData"`
	GasLimit         string          `json:"gasLimit"`
	GasUsed          string          `json:"gasUsed"`
	Hash             string          `json:"hash"`
	LogsBloom        string          `json:"logsBloom"`
	Miner            string          `json:"miner"`
	MixHash          string          `json:"mixHash"`
	Nonce            string          `json:"nonce"`
	Number           string          `json:"number"`
	ParentHash       string          `json:"parentHash"`
	ReceiptsRoot     string          `json:"receiptsRoot"`
	Sha3Uncles       string          `json:"sha3Uncles"`
	Size             string          `json:"size"`
	StateRoot        string          `json:"stateRoot"`
	Timestamp        string          `json:"timestamp"`
	TotalDifficulty  string          `json:"totalDifficulty,omitempty"`
	Transactions     json.RawMessage `json:"transactions"`
	TransactionsRoot string          `json:"transactionsRoot"`
	Uncles           []string        `json:"uncles"`
	WithdrawalsRoot  string          `json:"withdrawalsRoot,omitempty"`
}

// TransactionHashes decodes Transactions when the block was requested without full
// transaction objects.
func (b *Block) TransactionHashes() ([]string, error) {
	var hashes []string
	if len(b.Transactions) == 0 {
		return hashes, nil
	}
	if err := json.Unmarshal(b.Transactions, &hashes); err != nil {
		return nil, err
	}
	return hashes, nil
}

// FullTransactions decodes Transactions when the block was requested with full
// transaction objects.
func (b *Block) FullTransactions() ([]RPCTransaction, error) {
	var txs []RPCTransaction
	if len(b.Transactions) == 0 {
		return txs, nil
	}
	if err := json.Unmarshal(b.Transactions, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// UncleBlock is an uncle header; it carries no transactions.
type UncleBlock struct {
	BaseFeePerGas    string   `json:"baseFeePerGas,omitempty"`
	Difficulty       string   `json:"difficulty"`
	ExtraData        string   `json:"extraData"`
	GasLimit         string   `json:"gasLimit"`
	GasUsed          string   `json:"gasUsed"`
	Hash             string   `json:"hash"`
	LogsBloom        string   `json:"logsBloom"`
	Miner            string   `json:"miner"`
	MixHash          string   `json:"mixHash"`
	Nonce            string   `json:"nonce"`
	Number           string   `json:"number"`
	ParentHash       string   `json:"parentHash"`
	ReceiptsRoot     string   `json:"receiptsRoot"`
	Sha3Uncles       string   `json:"sha3Uncles"`
	Size             string   `json:"size"`
	StateRoot        string   `json:"stateRoot"`
	Timestamp        string   `json:"timestamp"`
	TransactionsRoot string   `json:"transactionsRoot"`
	Uncles           []string `json:"uncles"`
}

// RPCLog is a log entry of a transaction receipt.
type RPCLog struct {
	Address          string   `json:"address"`
	Topics           []string `json:"topics"`
	Data             string   `json:"data"`
	BlockNumber      string   `json:"blockNumber"`
	TransactionHash  string   `json:"transactionHash"`
	TransactionIndex string   `json:"transactionIndex"`
	BlockHash        string   `json:"blockHash"`
	LogIndex         string   `json:"logIndex"`
	Removed          bool     `json:"removed"`
}

// TxReceipt is the result of eth_getTransactionReceipt.
type TxReceipt struct {
	BlockHash         string   `json:"blockHash"`
	BlockNumber       string   `json:"blockNumber"`
	ContractAddress   *string  `json:"contractAddress"`
	CumulativeGasUsed string   `json:"cumulativeGasUsed"`
	EffectiveGasPrice string   `json:"effectiveGasPrice,omitempty"`
	From              string   `json:"from"`
	GasUsed           string   `json:"gasUsed"`
	Logs              []RPCLog `json:"logs"`
	LogsBloom         string   `json:"logsBloom"`
	Status            string   `json:"status"`
	To                string   `json:"to"`
	TransactionHash   string   `json:"transactionHash"`
	TransactionIndex  string   `json:"transactionIndex"`
	Type              string   `json:"type"`
}
