package ethurl

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
)

// ErrUnsupportedType indicates an ABI type that textual arguments can't express.
var ErrUnsupportedType = errors.New("ethurl: unsupported argument type")

// ParseArgs converts textual arguments into the Go values the ABI packer
// expects for method's inputs. Integers accept decimal or 0x-prefixed hex;
// byte values must be 0x-prefixed hex.
func ParseArgs(method abi.Method, raw []string) ([]any, error) {
	if len(raw) != len(method.Inputs) {
		return nil, &ArgumentError{Method: method.Name, Index: len(raw), Err: ErrArgumentCount}
	}

	args := make([]any, len(raw))
	for i, s := range raw {
		v, err := parseArg(method.Inputs[i].Type, s)
		if err != nil {
			return nil, &ArgumentError{Method: method.Name, Index: i, Err: err}
		}
		args[i] = v
	}
	return args, nil
}

func parseArg(t abi.Type, s string) (any, error) {
	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, ErrInvalidAddress
		}
		return common.HexToAddress(s), nil

	case abi.BoolTy:
		return strconv.ParseBool(s)

	case abi.StringTy:
		return s, nil

	case abi.BytesTy:
		return hexutil.Decode(s)

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(b))
		}
		v := reflect.New(t.GetType()).Elem()
		reflect.Copy(v, reflect.ValueOf(b))
		return v.Interface(), nil

	case abi.IntTy, abi.UintTy:
		return parseInteger(t, s)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t.String())
}

// parseInteger returns *big.Int for types wider than 64 bits and the
// matching sized Go integer otherwise.
func parseInteger(t abi.Type, s string) (any, error) {
	n, ok := math.ParseBig256(s)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if t.T == abi.UintTy && n.Sign() < 0 {
		return nil, fmt.Errorf("negative value %q for %s", s, t.String())
	}

	goType := t.GetType()
	if goType == bigIntType {
		return n, nil
	}

	v := reflect.New(goType).Elem()
	if t.T == abi.UintTy {
		if !n.IsUint64() || v.OverflowUint(n.Uint64()) {
			return nil, fmt.Errorf("value %q overflows %s", s, t.String())
		}
		v.SetUint(n.Uint64())
	} else {
		if !n.IsInt64() || v.OverflowInt(n.Int64()) {
			return nil, fmt.Errorf("value %q overflows %s", s, t.String())
		}
		v.SetInt(n.Int64())
	}
	return v.Interface(), nil
}
