package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"

	"github.com/branched-services/go-ethurl"
)

var (
	txProfile profileFlags
	txABI     string
)

var txCmd = &cobra.Command{
	Use:   "tx <raw-transaction>",
	Short: "Render a raw transaction as a request URI",
	Long: `Render an RLP or typed-envelope encoded transaction as a request URI.

Examples:
  ethurl tx 0x02f8...
  ethurl tx --abi erc20.json 0x02f8...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := hexutil.Decode(args[0])
		if err != nil {
			return fmt.Errorf("invalid raw transaction: %w", err)
		}

		var tx types.Transaction
		if err := tx.UnmarshalBinary(raw); err != nil {
			return fmt.Errorf("decode transaction: %w", err)
		}
		log.Debug("Decoded transaction", "hash", tx.Hash(), "type", tx.Type(), "nonce", tx.Nonce())

		desc, err := ethurl.FromTransaction(&tx)
		if err != nil {
			return err
		}

		opts := txProfile.options()
		if txABI != "" {
			parsed, err := readABI(txABI)
			if err != nil {
				return err
			}
			opts = append(opts, ethurl.WithContract(ethurl.NewContract(*tx.To(), parsed)))
		}

		uri, err := ethurl.Serialize(desc, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), uri)
		return nil
	},
}

func init() {
	txProfile.register(txCmd)
	txCmd.Flags().StringVar(&txABI, "abi", "", "JSON ABI file used to decode the call payload")
}
