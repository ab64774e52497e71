package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"

	"github.com/branched-services/go-ethurl"
)

var (
	callAmounts amountFlags
	callProfile profileFlags
	callABI     string
	callAddress string
)

var callCmd = &cobra.Command{
	Use:   "call <method> [args...]",
	Short: "Render a contract method invocation as a request URI",
	Long: `Render a contract method invocation as a request URI instead of submitting it.

Arguments are given as text: addresses as hex, integers as decimal or
0x-prefixed hex, booleans as true/false and byte values as 0x-prefixed hex.

Examples:
  ethurl call --abi erc20.json --address 0xTokenAddress transfer 0xRecipient 1000000
  ethurl call --abi weth.json --address 0xWETH deposit --value 1000000000000000000 --chain-id 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, raw := args[0], args[1:]

		parsed, err := readABI(callABI)
		if err != nil {
			return err
		}
		if !common.IsHexAddress(callAddress) {
			return fmt.Errorf("invalid --address %q", callAddress)
		}
		method, ok := parsed.Methods[name]
		if !ok {
			return &ethurl.MethodNotFoundError{Contract: common.HexToAddress(callAddress), Method: name}
		}

		callArgs, err := ethurl.ParseArgs(method, raw)
		if err != nil {
			return err
		}
		overrides, chainID, err := callAmounts.overrides()
		if err != nil {
			return err
		}

		contract := ethurl.NewContract(common.HexToAddress(callAddress), parsed, ethurl.WithChainID(chainID))
		wrapped := ethurl.Wrap(contract, callProfile.options()...)

		log.Debug("Rendering contract call", "contract", callAddress, "method", method.Sig)
		uri, err := wrapped.Call(cmd.Context(), name, append(callArgs, overrides)...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), uri)
		return nil
	},
}

func init() {
	callAmounts.register(callCmd)
	callProfile.register(callCmd)

	flags := callCmd.Flags()
	flags.StringVar(&callABI, "abi", "", "JSON ABI file of the contract")
	flags.StringVar(&callAddress, "address", "", "contract address")
	_ = callCmd.MarkFlagRequired("abi")
	_ = callCmd.MarkFlagRequired("address")
}
