package catalog

import _ "embed"

//go:embed bank.yaml
var defaultBank []byte

// DefaultBank returns the built-in item bank.
func DefaultBank() ([]Item, error) {
	return ParseBank(defaultBank)
}
