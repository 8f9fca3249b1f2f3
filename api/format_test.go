package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToUint64(t *testing.T) {
	t.Parallel()

	n, err := HexToUint64("0x1427a5f")
	require.NoError(t, err)
	assert.Equal(t, uint64(21133919), n)

	_, err = HexToUint64("1427a5f")
	require.Error(t, err)
}

func TestHexToBig(t *testing.T) {
	t.Parallel()

	n, err := HexToBig("0x0000000000000000000000000000000000000000000000000000000000000010")
	require.NoError(t, err)
	assert.Equal(t, int64(16), n.Int64())

	n, err = HexToBig("0x")
	require.NoError(t, err)
	assert.Zero(t, n.Sign())

	_, err = HexToBig("0xzz")
	require.Error(t, err)
}

func TestFormatUnits(t *testing.T) {
	t.Parallel()

	eth, err := WeiToEther("1000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1", eth.String())

	eth, err = WeiToEther("0xde0b6b3a7640000")
	require.NoError(t, err)
	assert.Equal(t, "1", eth.String())

	usdt, err := FormatUnits("12345678", 6)
	require.NoError(t, err)
	assert.Equal(t, "12.345678", usdt.String())

	_, err = WeiToEther("lots")
	require.Error(t, err)
}

func TestParseChain(t *testing.T) {
	t.Parallel()

	c, err := ParseChain("Sepolia")
	require.NoError(t, err)
	assert.Equal(t, ChainSepolia, c)

	c, err = ParseChain("8453")
	require.NoError(t, err)
	assert.Equal(t, ChainBase, c)
	assert.Equal(t, "base", c.String())

	c, err = ParseChain("")
	require.NoError(t, err)
	assert.Zero(t, c)

	assert.Equal(t, "999999", Chain(999999).String())

	_, err = ParseChain("atlantis")
	require.Error(t, err)
}
