package ethurl

import (
	"context"
	"math/big"
	"reflect"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Populator materializes the transaction a method invocation would submit.
type Populator interface {
	PopulateTransaction(ctx context.Context, method string, args ...any) (*Transaction, error)
}

// PopulatorFunc adapts a function to the Populator interface.
type PopulatorFunc func(ctx context.Context, method string, args ...any) (*Transaction, error)

// PopulateTransaction calls f.
func (f PopulatorFunc) PopulateTransaction(ctx context.Context, method string, args ...any) (*Transaction, error) {
	return f(ctx, method, args...)
}

// Overrides sets amount fields for a single invocation. Pass it (or a
// pointer to it) as the last argument of a method call.
type Overrides struct {
	Value                *big.Int
	GasPrice             *big.Int
	GasLimit             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// Contract is a contract handle: an address, its ABI and a way to populate
// transactions for its methods.
type Contract struct {
	address   common.Address
	abi       abi.ABI
	populator Populator
	opts      *bind.TransactOpts
	chainID   *big.Int
}

// ContractOption configures a Contract.
type ContractOption func(*Contract)

// WithPopulator delegates transaction population to p, typically a wallet
// or node backed implementation. By default call data is packed locally.
func WithPopulator(p Populator) ContractOption {
	return func(c *Contract) {
		c.populator = p
	}
}

// WithTransactOpts takes value, gas limit and fee fields for locally
// populated transactions from opts.
func WithTransactOpts(opts *bind.TransactOpts) ContractOption {
	return func(c *Contract) {
		c.opts = opts
	}
}

// WithChainID sets the chain id of locally populated transactions.
func WithChainID(id *big.Int) ContractOption {
	return func(c *Contract) {
		c.chainID = id
	}
}

// NewContract creates a Contract handle.
func NewContract(address common.Address, contractABI abi.ABI, opts ...ContractOption) *Contract {
	c := &Contract{
		address: address,
		abi:     contractABI,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Address returns the contract address.
func (c *Contract) Address() common.Address {
	return c.address
}

// ABI returns the contract ABI.
func (c *Contract) ABI() abi.ABI {
	return c.abi
}

// HasMethod returns true if the contract has a method with the given name.
func (c *Contract) HasMethod(methodName string) bool {
	_, ok := c.abi.Methods[methodName]
	return ok
}

// MethodNames returns all method names in the contract ABI, sorted.
func (c *Contract) MethodNames() []string {
	names := make([]string, 0, len(c.abi.Methods))
	for name := range c.abi.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeCall decodes a call payload against the contract ABI.
func (c *Contract) DecodeCall(data []byte) (*Call, error) {
	if len(data) < selectorSize {
		return nil, &DecodeError{Selector: data, Err: ErrUnknownSelector}
	}
	selector := data[:selectorSize]

	method, err := c.abi.MethodById(selector)
	if err != nil {
		return nil, &DecodeError{Selector: selector, Err: ErrUnknownSelector}
	}

	args, err := method.Inputs.Unpack(data[selectorSize:])
	if err != nil {
		return nil, &DecodeError{Selector: selector, Err: err}
	}
	return newCall(*method, args)
}

// PopulateTransaction returns the transaction invoking method with args.
// Unless a Populator was configured, the call data is packed with the ABI
// and amounts come from the TransactOpts and a trailing Overrides argument.
func (c *Contract) PopulateTransaction(ctx context.Context, method string, args ...any) (*Transaction, error) {
	if c.populator != nil {
		return c.populator.PopulateTransaction(ctx, method, args...)
	}

	m, ok := c.abi.Methods[method]
	if !ok {
		return nil, &MethodNotFoundError{Contract: c.address, Method: method}
	}

	args, overrides := splitOverrides(args)
	if len(args) != len(m.Inputs) {
		return nil, &ArgumentError{Method: method, Index: len(args), Err: ErrArgumentCount}
	}

	packed := make([]any, len(args))
	for i, arg := range args {
		packed[i] = convertToABIType(arg, m.Inputs[i].Type)
	}

	data, err := c.abi.Pack(method, packed...)
	if err != nil {
		return nil, &ArgumentError{Method: method, Index: -1, Err: err}
	}

	tx := &Transaction{
		To:      c.address.Hex(),
		ChainID: c.chainID,
		Data:    data,
	}
	if c.opts != nil {
		tx.Value = c.opts.Value
		tx.GasPrice = c.opts.GasPrice
		tx.MaxFeePerGas = c.opts.GasFeeCap
		tx.MaxPriorityFeePerGas = c.opts.GasTipCap
		if c.opts.GasLimit > 0 {
			tx.GasLimit = new(big.Int).SetUint64(c.opts.GasLimit)
		}
	}
	if overrides != nil {
		overrides.apply(tx)
	}
	return tx, nil
}

// splitOverrides removes a trailing Overrides argument.
func splitOverrides(args []any) ([]any, *Overrides) {
	if len(args) == 0 {
		return args, nil
	}
	switch o := args[len(args)-1].(type) {
	case Overrides:
		return args[:len(args)-1], &o
	case *Overrides:
		return args[:len(args)-1], o
	}
	return args, nil
}

// apply copies the set fields onto tx.
func (o *Overrides) apply(tx *Transaction) {
	if o.Value != nil {
		tx.Value = o.Value
	}
	if o.GasPrice != nil {
		tx.GasPrice = o.GasPrice
	}
	if o.GasLimit != nil {
		tx.GasLimit = o.GasLimit
	}
	if o.MaxFeePerGas != nil {
		tx.MaxFeePerGas = o.MaxFeePerGas
	}
	if o.MaxPriorityFeePerGas != nil {
		tx.MaxPriorityFeePerGas = o.MaxPriorityFeePerGas
	}
}

var bigIntType = reflect.TypeOf((*big.Int)(nil))

// convertToABIType widens Go integers for ABI types packed as *big.Int.
func convertToABIType(value any, abiType abi.Type) any {
	if abiType.GetType() != bigIntType {
		return value
	}
	switch v := value.(type) {
	case int:
		return big.NewInt(int64(v))
	case int64:
		return big.NewInt(v)
	case uint64:
		return new(big.Int).SetUint64(v)
	case int32:
		return big.NewInt(int64(v))
	case uint32:
		return new(big.Int).SetUint64(uint64(v))
	default:
		return v
	}
}

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}
