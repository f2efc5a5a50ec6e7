package entity

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeiToEther(t *testing.T) {
	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	oneAndHalf, _ := new(big.Int).SetString("1500000000000000000", 10)
	large, _ := new(big.Int).SetString("123456789000000000000000", 10)

	testCases := []struct {
		name     string
		wei      *big.Int
		expected string
	}{
		{"One ether", oneEther, "1.0"},
		{"One and a half", oneAndHalf, "1.5"},
		{"One wei", big.NewInt(1), "0.000000000000000001"},
		{"Zero", big.NewInt(0), "0.0"},
		{"Nil", nil, "0.0"},
		{"Large balance", large, "123456.789"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WeiToEther(tc.wei))
		})
	}
}

func TestNewBalanceResult(t *testing.T) {
	wei := big.NewInt(500_000_000_000_000_000)
	result := NewBalanceResult("0xabc", wei)

	assert.Equal(t, "0xabc", result.Address)
	assert.Equal(t, "0.5", result.BalanceEth)
	assert.Equal(t, 0, wei.Cmp(result.BalanceWei))

	// The result keeps its own copy of the balance
	wei.SetInt64(0)
	assert.Equal(t, "500000000000000000", result.BalanceWei.String())

	empty := NewBalanceResult("0xabc", nil)
	assert.Equal(t, "0.0", empty.BalanceEth)
}
