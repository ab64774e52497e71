package ethurl

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const ensSuffix = ".eth"

// IsENSName reports whether the identifier looks like an ENS name: a
// non-empty label followed by the ".eth" suffix. Names are not resolved.
func IsENSName(identifier string) bool {
	return strings.HasSuffix(identifier, ensSuffix) && len(identifier) > len(ensSuffix)
}

// NormalizeAddress validates a recipient identifier and returns the form used
// in URIs. ENS names are returned verbatim; hex addresses (with or without
// the 0x prefix, any letter case) are returned in EIP-55 checksummed form.
func NormalizeAddress(identifier string) (string, error) {
	if identifier == "" {
		return "", &AddressError{Input: identifier, Err: ErrEmptyTarget}
	}
	if IsENSName(identifier) {
		return identifier, nil
	}
	if !common.IsHexAddress(identifier) {
		return "", &AddressError{Input: identifier, Err: ErrInvalidAddress}
	}
	return common.HexToAddress(identifier).Hex(), nil
}

// resolveTarget normalizes a transaction's recipient. Surrounding whitespace
// is ignored.
func resolveTarget(tx *Transaction) (string, error) {
	if tx == nil || tx.To == "" {
		return "", &AddressError{Err: ErrEmptyTarget}
	}
	return NormalizeAddress(strings.TrimSpace(tx.To))
}
