package ethurl

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
)

// Transaction describes the transaction a URI requests. Only To is required.
// Amount fields are denominated in wei; nil and zero amounts are both
// treated as unset.
type Transaction struct {
	// To is a hex address (optionally 0x-prefixed, any case) or an ENS name.
	To string

	Value                *big.Int
	GasPrice             *big.Int
	GasLimit             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int

	// ChainID is rendered whenever non-nil under ChainIDPath, and only when
	// non-zero under ChainIDQuery.
	ChainID *big.Int

	// Data is the ABI-encoded call payload, if any.
	Data []byte
}

// FromTransaction converts a go-ethereum transaction into a Transaction.
// Legacy and access list transactions carry a gas price; dynamic fee
// transactions carry the fee cap and tip cap instead. A zero chain id, as
// reported for unprotected legacy transactions, is left unset.
func FromTransaction(tx *types.Transaction) (*Transaction, error) {
	if tx.To() == nil {
		return nil, &AddressError{Err: ErrContractCreation}
	}

	out := &Transaction{
		To:       tx.To().Hex(),
		Value:    tx.Value(),
		GasLimit: new(big.Int).SetUint64(tx.Gas()),
		Data:     tx.Data(),
	}

	switch tx.Type() {
	case types.LegacyTxType, types.AccessListTxType:
		out.GasPrice = tx.GasPrice()
	default:
		out.MaxFeePerGas = tx.GasFeeCap()
		out.MaxPriorityFeePerGas = tx.GasTipCap()
	}

	if id := tx.ChainId(); id != nil && id.Sign() > 0 {
		out.ChainID = id
	}
	return out, nil
}

// FromCallMsg converts a call message into a Transaction on the given chain.
// chainID may be nil.
func FromCallMsg(msg ethereum.CallMsg, chainID *big.Int) (*Transaction, error) {
	if msg.To == nil {
		return nil, &AddressError{Err: ErrContractCreation}
	}

	out := &Transaction{
		To:                   msg.To.Hex(),
		Value:                msg.Value,
		GasPrice:             msg.GasPrice,
		MaxFeePerGas:         msg.GasFeeCap,
		MaxPriorityFeePerGas: msg.GasTipCap,
		ChainID:              chainID,
		Data:                 msg.Data,
	}
	if msg.Gas > 0 {
		out.GasLimit = new(big.Int).SetUint64(msg.Gas)
	}
	return out, nil
}
