package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"

	"github.com/branched-services/go-ethurl"
)

// amountFlags holds the textual amount flags shared by the commands.
type amountFlags struct {
	value                string
	gasPrice             string
	gasLimit             string
	maxFeePerGas         string
	maxPriorityFeePerGas string
	chainID              string
}

func (f *amountFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.value, "value", "", "value in wei")
	flags.StringVar(&f.gasPrice, "gas-price", "", "gas price in wei")
	flags.StringVar(&f.gasLimit, "gas", "", "gas limit")
	flags.StringVar(&f.maxFeePerGas, "max-fee-per-gas", "", "EIP-1559 fee cap in wei")
	flags.StringVar(&f.maxPriorityFeePerGas, "max-priority-fee-per-gas", "", "EIP-1559 tip cap in wei")
	flags.StringVar(&f.chainID, "chain-id", "", "chain id")
}

// overrides parses the amount flags. Unset flags stay nil.
func (f *amountFlags) overrides() (ethurl.Overrides, *big.Int, error) {
	var (
		o   ethurl.Overrides
		err error
	)
	fields := []struct {
		name string
		raw  string
		dst  **big.Int
	}{
		{"value", f.value, &o.Value},
		{"gas-price", f.gasPrice, &o.GasPrice},
		{"gas", f.gasLimit, &o.GasLimit},
		{"max-fee-per-gas", f.maxFeePerGas, &o.MaxFeePerGas},
		{"max-priority-fee-per-gas", f.maxPriorityFeePerGas, &o.MaxPriorityFeePerGas},
	}
	for _, field := range fields {
		if *field.dst, err = parseAmount(field.name, field.raw); err != nil {
			return o, nil, err
		}
	}
	chainID, err := parseAmount("chain-id", f.chainID)
	if err != nil {
		return o, nil, err
	}
	return o, chainID, nil
}

func parseAmount(name, raw string) (*big.Int, error) {
	if raw == "" {
		return nil, nil
	}
	n, ok := math.ParseBig256(raw)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid --%s %q", name, raw)
	}
	return n, nil
}

// profileFlags selects the encoder options.
type profileFlags struct {
	legacy       bool
	chainIDQuery bool
	lenient      bool
}

func (f *profileFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&f.legacy, "legacy", false, "use the legacy profile (no pay- prefix, no function path, chainId as query parameter)")
	flags.BoolVar(&f.chainIDQuery, "chain-id-query", false, "render the chain id as a query parameter")
	flags.BoolVar(&f.lenient, "lenient", false, "render payloads with unknown selectors as plain transfers")
}

func (f *profileFlags) options() []ethurl.Option {
	var opts []ethurl.Option
	if f.legacy {
		opts = append(opts, ethurl.WithProfile(ethurl.ProfileLegacy))
	}
	if f.chainIDQuery {
		opts = append(opts, ethurl.WithChainIDStyle(ethurl.ChainIDQuery))
	}
	if f.lenient {
		opts = append(opts, ethurl.WithLenientDecode())
	}
	return opts
}

// readABI loads a JSON ABI file.
func readABI(path string) (abi.ABI, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return abi.ABI{}, err
	}
	parsed, err := ethurl.ParseABI(string(raw))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse ABI %s: %w", path, err)
	}
	log.Debug("Loaded ABI", "path", path, "methods", len(parsed.Methods))
	return parsed, nil
}
