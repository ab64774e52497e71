package ethurl

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Sentinel errors for common failure conditions.
var (
	// ErrEmptyTarget indicates the transaction has no recipient.
	ErrEmptyTarget = errors.New("ethurl: missing transaction target")

	// ErrInvalidAddress indicates the recipient is neither a hex address nor an ENS name.
	ErrInvalidAddress = errors.New("ethurl: invalid address")

	// ErrUnknownSelector indicates the call payload matches no function in the contract ABI.
	ErrUnknownSelector = errors.New("ethurl: no function matches selector")

	// ErrInvalidMemberName indicates a member was looked up with a name that is not a plain identifier.
	ErrInvalidMemberName = errors.New("ethurl: invalid member name")

	// ErrNoSuchMember indicates the wrapped handle has no member with the given name.
	ErrNoSuchMember = errors.New("ethurl: no such member")

	// ErrContractCreation indicates a transaction without a recipient (contract deployment).
	ErrContractCreation = errors.New("ethurl: contract creation transactions have no target")

	// ErrArgumentCount indicates the number of arguments doesn't match the method inputs.
	ErrArgumentCount = errors.New("ethurl: argument count mismatch")
)

// AddressError indicates the transaction target could not be resolved.
type AddressError struct {
	Input string
	Err   error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("ethurl: expected valid \"to\" address, encountered %q: %v", e.Input, e.Err)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a call payload could not be decoded against the contract ABI.
type DecodeError struct {
	Selector []byte
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ethurl: decode call %s: %v", hexutil.Encode(e.Selector), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AccessError indicates an invalid member access on a wrapped contract.
type AccessError struct {
	Name string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("ethurl: unable to access property %q: %v", e.Name, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// MethodNotFoundError indicates the contract ABI doesn't declare the requested method.
type MethodNotFoundError struct {
	Contract common.Address
	Method   string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("ethurl: method %q not found in contract %s", e.Method, e.Contract.Hex())
}

// ArgumentError indicates an issue with a function argument.
type ArgumentError struct {
	Method string
	Index  int
	Err    error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("ethurl: argument %d for method %q: %v", e.Index, e.Method, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
