package api

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of decimals between wei and ether.
const EtherDecimals = 18

// HexToUint64 decodes a proxy quantity such as a block number or nonce.
func HexToUint64(s string) (uint64, error) {
	n, err := hexutil.DecodeUint64(s)
	if err != nil {
		return 0, fmt.Errorf("invalid hex quantity %q: %w", s, err)
	}
	return n, nil
}

// HexToBig decodes a hex value of any size. Unlike a JSON-RPC quantity it may carry
// leading zeros, as storage words do.
func HexToBig(s string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if digits == "" {
		return big.NewInt(0), nil
	}

	value := new(big.Int)
	if _, ok := value.SetString(digits, 16); !ok {
		return nil, fmt.Errorf("invalid hex value: %s", s)
	}
	return value, nil
}

// FormatUnits scales an integer amount given as a decimal or 0x-prefixed hex string
// down by decimals, e.g. wei to ether with EtherDecimals.
func FormatUnits(amount string, decimals int32) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if strings.HasPrefix(amount, "0x") || strings.HasPrefix(amount, "0X") {
		b, err := HexToBig(amount)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromBigInt(b, -decimals), nil
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return d.Shift(-decimals), nil
}

// WeiToEther converts a wei amount to ether.
func WeiToEther(wei string) (decimal.Decimal, error) {
	return FormatUnits(wei, EtherDecimals)
}
