package ethurl

import (
	"strings"
)

// Encoder renders transactions as request URIs.
// An Encoder is immutable and safe for concurrent use.
type Encoder struct {
	cfg config
}

// NewEncoder creates an Encoder with the given options.
func NewEncoder(opts ...Option) *Encoder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Encoder{cfg: *cfg}
}

// Profile returns the encoder's URI profile.
func (e *Encoder) Profile() Profile {
	return e.cfg.profile
}

// Serialize renders tx with a one-off Encoder.
func Serialize(tx *Transaction, opts ...Option) (string, error) {
	return NewEncoder(opts...).Encode(tx)
}

// Encode renders tx as a request URI using the configured contract
// descriptor, if any.
func (e *Encoder) Encode(tx *Transaction) (string, error) {
	return e.encode(tx, e.cfg.contract)
}

// EncodeCall renders tx, decoding its payload against d.
func (e *Encoder) EncodeCall(tx *Transaction, d ContractDescriptor) (string, error) {
	return e.encode(tx, d)
}

func (e *Encoder) encode(tx *Transaction, d ContractDescriptor) (string, error) {
	target, err := resolveTarget(tx)
	if err != nil {
		return "", err
	}

	if e.cfg.profile == ProfileLegacy {
		return e.assemble(target, false, nil, tx), nil
	}

	call, err := decodeInvocation(d, tx.Data, e.cfg.lenient)
	if err != nil {
		return "", err
	}
	return e.assemble(target, true, call, tx), nil
}

// assemble joins the URI parts:
//
//	<scheme>:[pay-]<target>[/<function>][@<chainId>][?<fragments>]
func (e *Encoder) assemble(target string, prefixed bool, call *Call, tx *Transaction) string {
	var b strings.Builder
	b.WriteString(Scheme)
	b.WriteByte(':')
	if prefixed && IsENSName(target) {
		b.WriteString(PayPrefix)
		b.WriteByte('-')
	}
	b.WriteString(target)

	var fragments []string
	if call != nil {
		b.WriteByte('/')
		b.WriteString(call.Name())
		fragments = append(fragments, call.Fragments()...)
	}
	fragments = append(fragments, amountFragments(tx)...)

	switch e.cfg.resolvedChainIDStyle() {
	case ChainIDPath:
		b.WriteString(chainIDSuffix(tx.ChainID))
	case ChainIDQuery:
		if f := chainIDFragment(tx.ChainID); f != "" {
			fragments = append(fragments, f)
		}
	}

	if len(fragments) > 0 {
		b.WriteByte('?')
		b.WriteString(strings.Join(fragments, "&"))
	}
	return b.String()
}
