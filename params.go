package ethurl

import (
	"math/big"
)

// amountParam maps a transaction amount field to its query key.
type amountParam struct {
	key   string
	field func(*Transaction) *big.Int
}

// amountParams lists the amount fields in rendering order. gasLimit is
// abbreviated to "gas".
var amountParams = []amountParam{
	{"value", func(tx *Transaction) *big.Int { return tx.Value }},
	{"gasPrice", func(tx *Transaction) *big.Int { return tx.GasPrice }},
	{"gas", func(tx *Transaction) *big.Int { return tx.GasLimit }},
	{"maxFeePerGas", func(tx *Transaction) *big.Int { return tx.MaxFeePerGas }},
	{"maxPriorityFeePerGas", func(tx *Transaction) *big.Int { return tx.MaxPriorityFeePerGas }},
}

// amountFragments renders the set amount fields as "key=<exponential>".
func amountFragments(tx *Transaction) []string {
	fragments := make([]string, 0, len(amountParams))
	for _, p := range amountParams {
		amount := p.field(tx)
		if isUnset(amount) {
			continue
		}
		fragments = append(fragments, p.key+"="+ToExponential(amount))
	}
	return fragments
}

// chainIDSuffix renders the path style chain id.
func chainIDSuffix(chainID *big.Int) string {
	if chainID == nil {
		return ""
	}
	return "@" + chainID.String()
}

// chainIDFragment renders the query style chain id. Zero is omitted.
func chainIDFragment(chainID *big.Int) string {
	if isUnset(chainID) {
		return ""
	}
	return "chainId=" + chainID.String()
}
