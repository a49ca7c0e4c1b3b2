package model

import "github.com/ethereum/go-ethereum/common"

// Address parses a validated hex address.
func Address(s string) common.Address {
	return common.HexToAddress(s)
}

// ChecksumAddress returns the EIP-55 form of s, or "" when s is empty.
func ChecksumAddress(s string) string {
	if s == "" {
		return ""
	}
	return common.HexToAddress(s).Hex()
}
