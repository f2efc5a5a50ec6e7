package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	"github.com/ethereum/go-ethereum/common"
)

// ValidateAddress checks that address is a 20-byte hex account address
func ValidateAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" || !common.IsHexAddress(address) {
		return errs.ErrInvalidAddress
	}
	return nil
}
