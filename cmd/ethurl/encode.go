package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"

	"github.com/branched-services/go-ethurl"
)

var (
	encodeAmounts amountFlags
	encodeProfile profileFlags
	encodeTo      string
	encodeData    string
	encodeABI     string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a transaction as a request URI",
	Long: `Encode a transaction as a request URI.

When --data carries a contract call and --abi is given, the call is decoded
and rendered as a function path with typed arguments.

Examples:
  ethurl encode --to cawfree.eth --value 1000000000000000000
  ethurl encode --to 0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed --chain-id 1
  ethurl encode --to 0xTokenAddress --abi erc20.json --data 0xa9059cbb...`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		overrides, chainID, err := encodeAmounts.overrides()
		if err != nil {
			return err
		}

		tx := &ethurl.Transaction{
			To:                   encodeTo,
			Value:                overrides.Value,
			GasPrice:             overrides.GasPrice,
			GasLimit:             overrides.GasLimit,
			MaxFeePerGas:         overrides.MaxFeePerGas,
			MaxPriorityFeePerGas: overrides.MaxPriorityFeePerGas,
			ChainID:              chainID,
		}
		if encodeData != "" {
			if tx.Data, err = hexutil.Decode(encodeData); err != nil {
				return fmt.Errorf("invalid --data: %w", err)
			}
		}

		opts := encodeProfile.options()
		if encodeABI != "" {
			parsed, err := readABI(encodeABI)
			if err != nil {
				return err
			}
			opts = append(opts, ethurl.WithContract(ethurl.NewContract(common.Address{}, parsed)))
		}

		uri, err := ethurl.Serialize(tx, opts...)
		if err != nil {
			return err
		}
		log.Debug("Encoded transaction", "to", tx.To, "data", len(tx.Data))
		fmt.Fprintln(cmd.OutOrStdout(), uri)
		return nil
	},
}

func init() {
	encodeAmounts.register(encodeCmd)
	encodeProfile.register(encodeCmd)

	flags := encodeCmd.Flags()
	flags.StringVar(&encodeTo, "to", "", "recipient address or ENS name")
	flags.StringVar(&encodeData, "data", "", "0x-prefixed call payload")
	flags.StringVar(&encodeABI, "abi", "", "JSON ABI file used to decode --data")
	_ = encodeCmd.MarkFlagRequired("to")
}
