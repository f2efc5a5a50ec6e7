package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestValidateAddress(t *testing.T) {
	valid := []string{
		"0xdAC17F958D2ee523a2206206994597C13D831ec7",
		"0xdac17f958d2ee523a2206206994597c13d831ec7",
		"dac17f958d2ee523a2206206994597c13d831ec7",
	}
	for _, address := range valid {
		assert.NoError(t, ValidateAddress(address), address)
	}

	invalid := []string{
		"",
		"   ",
		"some-address",
		"0x1234",
		"0xzzC17F958D2ee523a2206206994597C13D831ec7",
	}
	for _, address := range invalid {
		assert.ErrorIs(t, ValidateAddress(address), errs.ErrInvalidAddress, address)
	}
}
