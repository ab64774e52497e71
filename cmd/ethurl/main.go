// Command ethurl prints Ethereum transaction request URIs.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "ethurl",
	Short: "Build transaction request URIs that wallets can open",
	Long: `ethurl renders a transaction (recipient, value, fees, chain id and an
optional contract call) as an "ethereum:" request URI.

Amounts are given in wei, as decimal or 0x-prefixed hex integers.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		handler := log.NewTerminalHandlerWithLevel(os.Stderr, log.FromLegacyLevel(verbosity), useColor)
		log.SetDefault(log.NewLogger(handler))
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&verbosity, "verbosity", 2, "log level (0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace)")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(txCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
