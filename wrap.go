package ethurl

import (
	"context"
	"reflect"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// Handle is a live contract handle: it describes its ABI methods and can
// populate the transaction for any of them. *Contract implements Handle.
type Handle interface {
	ContractDescriptor
	Populator

	// MethodNames returns the ABI method names.
	MethodNames() []string
}

// MethodFunc renders the URI for invoking a contract method with args.
type MethodFunc func(ctx context.Context, args ...any) (string, error)

// Wrapped exposes a contract handle's ABI methods as URI builders: calling
// a method populates its transaction and returns the request URI instead of
// submitting it.
// Wrapped is immutable and safe for concurrent use.
type Wrapped struct {
	handle  Handle
	encoder *Encoder
	methods map[string]MethodFunc
}

// Wrap builds the method dispatch table for h. Options configure the
// encoder used for every method; WithPassthrough also enables the
// compatibility mode of Member.
func Wrap(h Handle, opts ...Option) *Wrapped {
	w := &Wrapped{
		handle:  h,
		encoder: NewEncoder(opts...),
	}

	names := h.MethodNames()
	w.methods = make(map[string]MethodFunc, len(names))
	for _, name := range names {
		w.methods[name] = w.bind(name)
	}
	return w
}

// bind returns the URI builder for the named method.
func (w *Wrapped) bind(name string) MethodFunc {
	return func(ctx context.Context, args ...any) (string, error) {
		tx, err := w.handle.PopulateTransaction(ctx, name, args...)
		if err != nil {
			return "", err
		}
		return w.encoder.EncodeCall(tx, w.handle)
	}
}

// Handle returns the wrapped handle.
func (w *Wrapped) Handle() Handle {
	return w.handle
}

// Methods returns the names of the wrapped ABI methods, sorted.
func (w *Wrapped) Methods() []string {
	names := make([]string, 0, len(w.methods))
	for name := range w.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Method returns the URI builder for an ABI method.
func (w *Wrapped) Method(name string) (MethodFunc, error) {
	if !isPlainName(name) {
		return nil, &AccessError{Name: name, Err: ErrInvalidMemberName}
	}
	fn, ok := w.methods[name]
	if !ok {
		return nil, w.methodNotFound(name)
	}
	return fn, nil
}

// Call renders the URI for invoking the named ABI method with args.
func (w *Wrapped) Call(ctx context.Context, name string, args ...any) (string, error) {
	fn, err := w.Method(name)
	if err != nil {
		return "", err
	}
	return fn(ctx, args...)
}

// Member looks up name on the wrapped handle the way a property access
// would. ABI methods resolve to their MethodFunc. Exported non-function
// fields of the handle are returned unchanged. Exported Go methods and
// function-valued fields that are not ABI methods yield a
// MethodNotFoundError, or are returned unchanged when the wrapper was
// created with WithPassthrough.
func (w *Wrapped) Member(name string) (any, error) {
	if !isPlainName(name) {
		return nil, &AccessError{Name: name, Err: ErrInvalidMemberName}
	}
	if fn, ok := w.methods[name]; ok {
		return fn, nil
	}

	rv := reflect.ValueOf(w.handle)
	if m := rv.MethodByName(name); m.IsValid() {
		return w.passthrough(name, m)
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, &AccessError{Name: name, Err: ErrNoSuchMember}
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		if sf, ok := rv.Type().FieldByName(name); ok && sf.IsExported() {
			field, err := rv.FieldByIndexErr(sf.Index)
			if err != nil {
				return nil, &AccessError{Name: name, Err: ErrNoSuchMember}
			}
			if field.Kind() == reflect.Func {
				return w.passthrough(name, field)
			}
			return field.Interface(), nil
		}
	}
	return nil, &AccessError{Name: name, Err: ErrNoSuchMember}
}

// passthrough returns a non-ABI callable in compatibility mode.
func (w *Wrapped) passthrough(name string, fn reflect.Value) (any, error) {
	if !w.encoder.cfg.passthrough {
		return nil, w.methodNotFound(name)
	}
	return fn.Interface(), nil
}

func (w *Wrapped) methodNotFound(name string) error {
	var addr common.Address
	if a, ok := w.handle.(interface{ Address() common.Address }); ok {
		addr = a.Address()
	}
	return &MethodNotFoundError{Contract: addr, Method: name}
}

// isPlainName reports whether name is a plain identifier: a letter, '_' or
// '$' followed by letters, digits, '_' or '$'.
func isPlainName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
