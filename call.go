package ethurl

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// selectorSize is the length of the function selector prefixing a call payload.
const selectorSize = 4

// ContractDescriptor decodes call payloads against a contract's functions.
// Contract is the ABI-backed implementation.
type ContractDescriptor interface {
	// HasMethod reports whether the contract declares the named function.
	HasMethod(name string) bool

	// DecodeCall decodes a call payload into the invoked function and its
	// arguments. A selector that matches no function yields a DecodeError
	// wrapping ErrUnknownSelector.
	DecodeCall(data []byte) (*Call, error)
}

// Call is a decoded contract invocation.
// Call is immutable.
type Call struct {
	method abi.Method
	args   []any
}

// Param is a rendered call argument.
type Param struct {
	Type  string
	Value string
}

// String returns the "<type>=<value>" query fragment.
func (p Param) String() string {
	return p.Type + "=" + p.Value
}

// newCall creates a Call from a method and its decoded arguments.
func newCall(method abi.Method, args []any) (*Call, error) {
	if len(args) != len(method.Inputs) {
		return nil, &ArgumentError{
			Method: method.Name,
			Index:  len(args),
			Err:    ErrArgumentCount,
		}
	}
	return &Call{method: method, args: args}, nil
}

// Name returns the invoked function name as declared on the contract.
// Overloaded functions share it, unlike the deduplicated Method().Name.
func (c *Call) Name() string {
	if c.method.RawName != "" {
		return c.method.RawName
	}
	return c.method.Name
}

// Method returns the ABI method for this call.
func (c *Call) Method() abi.Method {
	return c.method
}

// Args returns the decoded arguments in declaration order.
func (c *Call) Args() []any {
	return c.args
}

// Selector returns the 4-byte function selector.
func (c *Call) Selector() [4]byte {
	var sel [4]byte
	copy(sel[:], c.method.ID[:selectorSize])
	return sel
}

// Params renders each argument keyed by its ABI type, in declaration order.
// String values are rendered verbatim, so a string containing '&' or '='
// reads back as extra query fragments. Callers embedding untrusted strings
// must check them first.
func (c *Call) Params() []Param {
	params := make([]Param, len(c.args))
	for i, arg := range c.args {
		t := c.method.Inputs[i].Type
		params[i] = Param{Type: t.String(), Value: formatArgument(t, arg)}
	}
	return params
}

// Fragments returns the query fragments for the call arguments.
func (c *Call) Fragments() []string {
	params := c.Params()
	fragments := make([]string, len(params))
	for i, p := range params {
		fragments[i] = p.String()
	}
	return fragments
}

// formatArgument renders a decoded argument: booleans as 1/0, addresses
// checksummed, integers in base 10 and byte values as 0x-prefixed hex.
func formatArgument(t abi.Type, v any) string {
	switch t.T {
	case abi.BoolTy:
		if b, ok := v.(bool); ok && b {
			return "1"
		}
		return "0"
	case abi.AddressTy:
		if addr, ok := v.(common.Address); ok {
			return addr.Hex()
		}
	case abi.IntTy, abi.UintTy:
		if n, ok := v.(*big.Int); ok {
			return n.String()
		}
	case abi.StringTy:
		if s, ok := v.(string); ok {
			return s
		}
	case abi.BytesTy:
		if b, ok := v.([]byte); ok {
			return hexutil.Encode(b)
		}
	case abi.FixedBytesTy:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Array {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return hexutil.Encode(b)
		}
	}
	return fmt.Sprint(v)
}

// decodeInvocation decodes data against d. It returns nil when there is no
// descriptor or the payload is too short to carry a selector. An unknown
// selector is an error unless lenient is set.
func decodeInvocation(d ContractDescriptor, data []byte, lenient bool) (*Call, error) {
	if d == nil || len(data) < selectorSize {
		return nil, nil
	}

	call, err := d.DecodeCall(data)
	if err != nil {
		if lenient && errors.Is(err, ErrUnknownSelector) {
			return nil, nil
		}
		return nil, err
	}
	return call, nil
}
