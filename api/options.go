package api

// Option structs are encoded into query parameters with their url tags. Only presence
// of string fields and enum membership are checked before sending; numbers, addresses,
// hashes and hex payloads are passed through verbatim for the explorer to judge.

// BlockOptions narrows list endpoints to a block range.
type BlockOptions struct {
	StartBlock uint64 `url:"startblock,omitempty"`
	EndBlock   uint64 `url:"endblock,omitempty"`
	Sort       Sort   `url:"sort,omitempty" validate:"omitempty,oneof=asc desc"`
}

// PaginationOptions pages list endpoints. Offset is the page size.
type PaginationOptions struct {
	Page   int `url:"page,omitempty"`
	Offset int `url:"offset,omitempty"`
}

type BalanceOptions struct {
	Address string `url:"address" validate:"required"`
	Tag     Tag    `url:"tag,omitempty"`
}

// BalanceMultiOptions queries several addresses in one call. Etherscan accepts up to 20.
type BalanceMultiOptions struct {
	Addresses []string `url:"address,comma" validate:"required,dive,required"`
	Tag       Tag      `url:"tag,omitempty"`
}

type NormalTxListOptions struct {
	Address string `url:"address" validate:"required"`
	BlockOptions
	PaginationOptions
}

// InternalTxListOptions lists internal transactions of an address, or of a single
// transaction when TxHash is set.
type InternalTxListOptions struct {
	Address string `url:"address,omitempty" validate:"required_without=TxHash"`
	TxHash  string `url:"txhash,omitempty"`
	BlockOptions
	PaginationOptions
}

type Erc20TokenTransferEventsListOptions struct {
	Address         string `url:"address,omitempty"`
	ContractAddress string `url:"contractaddress" validate:"required"`
	BlockOptions
	PaginationOptions
}

type TokenBalanceOptions struct {
	ContractAddress string `url:"contractaddress" validate:"required"`
	Address         string `url:"address" validate:"required"`
	Tag             Tag    `url:"tag,omitempty"`
}

// BlockNumberByTimestampOptions takes a unix timestamp in seconds. Closest defaults to
// ClosestAfter.
type BlockNumberByTimestampOptions struct {
	Timestamp int64   `url:"timestamp"`
	Closest   Closest `url:"closest,omitempty" validate:"omitempty,oneof=before after"`
}

type BlockCountdownOptions struct {
	BlockNo uint64 `url:"blockno"`
}

// LogsOptions filters event logs. Operators combine the pair of topics in their name.
type LogsOptions struct {
	FromBlock uint64 `url:"fromBlock,omitempty"`
	ToBlock   uint64 `url:"toBlock,omitempty"`
	Address   string `url:"address,omitempty" validate:"required_without_all=Topic0 Topic1 Topic2 Topic3"`
	Topic0    string `url:"topic0,omitempty"`
	Topic1    string `url:"topic1,omitempty"`
	Topic2    string `url:"topic2,omitempty"`
	Topic3    string `url:"topic3,omitempty"`

	Topic01Opr TopicOperation `url:"topic0_1_opr,omitempty" validate:"omitempty,oneof=and or"`
	Topic02Opr TopicOperation `url:"topic0_2_opr,omitempty" validate:"omitempty,oneof=and or"`
	Topic03Opr TopicOperation `url:"topic0_3_opr,omitempty" validate:"omitempty,oneof=and or"`
	Topic12Opr TopicOperation `url:"topic1_2_opr,omitempty" validate:"omitempty,oneof=and or"`
	Topic13Opr TopicOperation `url:"topic1_3_opr,omitempty" validate:"omitempty,oneof=and or"`
	Topic23Opr TopicOperation `url:"topic2_3_opr,omitempty" validate:"omitempty,oneof=and or"`

	PaginationOptions
}

// TxHashOptions identifies a single transaction.
type TxHashOptions struct {
	TxHash string `url:"txhash" validate:"required"`
}

// VerifySourceCodeOptions is sent as a form body. The misspelt constructorArguements
// parameter name is what the explorer expects.
type VerifySourceCodeOptions struct {
	ContractAddress      string     `url:"contractaddress" validate:"required"`
	SourceCode           string     `url:"sourceCode" validate:"required"`
	CodeFormat           CodeFormat `url:"codeformat" validate:"required,oneof=solidity-single-file solidity-standard-json-input"`
	ContractName         string     `url:"contractname" validate:"required"`
	CompilerVersion      string     `url:"compilerversion" validate:"required"`
	OptimizationUsed     string     `url:"optimizationUsed,omitempty" validate:"omitempty,oneof=0 1"`
	Runs                 int        `url:"runs,omitempty"`
	ConstructorArguments string     `url:"constructorArguements,omitempty"`
	EVMVersion           string     `url:"evmversion,omitempty"`
	LicenseType          int        `url:"licenseType,omitempty"`
}

type CheckVerifyStatusOptions struct {
	GUID string `url:"guid" validate:"required"`
}

// Proxy options. Tag holds either a hex block number or one of the symbolic tags.

type EthBlockByNumberOptions struct {
	Tag Tag `url:"tag,omitempty"`
	// Boolean selects full transaction objects instead of hashes.
	Boolean bool `url:"boolean"`
}

type EthUncleByBlockNumberAndIndexOptions struct {
	Tag   Tag    `url:"tag,omitempty"`
	Index string `url:"index,omitempty"`
}

type EthBlockTransactionCountByNumberOptions struct {
	Tag Tag `url:"tag,omitempty"`
}

type EthTransactionByHashOptions struct {
	TxHash string `url:"txhash" validate:"required"`
}

type EthTransactionByBlockNumberAndIndexOptions struct {
	Tag   Tag    `url:"tag" validate:"required"`
	Index string `url:"index,omitempty"`
}

type EthTransactionCountOptions struct {
	Address string `url:"address" validate:"required"`
	Tag     Tag    `url:"tag,omitempty"`
}

type EthSendRawTransactionOptions struct {
	Hex string `url:"hex" validate:"required"`
}

type EthTransactionReceiptOptions struct {
	TxHash string `url:"txhash" validate:"required"`
}

type EthCallOptions struct {
	To   string `url:"to" validate:"required"`
	Data string `url:"data,omitempty"`
	Tag  Tag    `url:"tag,omitempty"`
}

type EthCodeOptions struct {
	Address string `url:"address" validate:"required"`
	Tag     Tag    `url:"tag,omitempty"`
}

type EthStorageAtOptions struct {
	Address  string `url:"address" validate:"required"`
	Position string `url:"position,omitempty"`
	Tag      Tag    `url:"tag,omitempty"`
}

type EthEstimateGasOptions struct {
	Data     string `url:"data" validate:"required"`
	To       string `url:"to" validate:"required"`
	Value    string `url:"value,omitempty"`
	GasPrice string `url:"gasPrice,omitempty"`
	Gas      string `url:"gas,omitempty"`
}
