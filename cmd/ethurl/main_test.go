package main

import (
	"bytes"
	"errors"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/branched-services/go-ethurl"
)

const erc20ABI = `[
	{
		"name": "transfer",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"outputs": [
			{"name": "", "type": "bool"}
		]
	}
]`

var (
	tokenAddr = common.HexToAddress("0x2222222222222222222222222222222222222222")
	recipient = common.HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--verbosity", "0"}, args...))
	err := rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

// resetFlags restores every flag in the command tree to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeABI(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "erc20.json")
	if err := os.WriteFile(path, []byte(erc20ABI), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestEncodeCommand(t *testing.T) {
	abiPath := writeABI(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "ENS payment",
			args: []string{"--to", "cawfree.eth", "--value", "1000000000000000000", "--gas", "0x5208"},
			want: "ethereum:pay-cawfree.eth?value=1e18&gas=2.1e4",
		},
		{
			name: "chain id in path",
			args: []string{"--to", recipient.Hex(), "--value", "1", "--chain-id", "1"},
			want: "ethereum:0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed@1?value=1e0",
		},
		{
			name: "legacy profile",
			args: []string{"--to", recipient.Hex(), "--value", "1", "--chain-id", "1", "--legacy"},
			want: "ethereum:0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed?value=1e0&chainId=1",
		},
		{
			name: "chain id as query parameter",
			args: []string{"--to", recipient.Hex(), "--value", "1", "--chain-id", "1", "--chain-id-query"},
			want: "ethereum:0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed?value=1e0&chainId=1",
		},
		{
			name: "lenient unknown selector",
			args: []string{"--to", tokenAddr.Hex(), "--abi", abiPath, "--data", "0xdeadbeef", "--lenient"},
			want: "ethereum:" + tokenAddr.Hex(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, append([]string{"encode"}, tt.args...)...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}

	t.Run("strict unknown selector", func(t *testing.T) {
		_, err := execute(t, "encode", "--to", tokenAddr.Hex(), "--abi", abiPath, "--data", "0xdeadbeef")
		if !errors.Is(err, ethurl.ErrUnknownSelector) {
			t.Errorf("Expected ErrUnknownSelector, got %v", err)
		}
	})

	t.Run("flags do not leak between runs", func(t *testing.T) {
		if _, err := execute(t, "encode", "--to", recipient.Hex(), "--legacy", "--chain-id", "5"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		got, err := execute(t, "encode", "--to", recipient.Hex())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := "ethereum:0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
		if got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	})
}

func TestCallCommand(t *testing.T) {
	got, err := execute(t, "call",
		"--abi", writeABI(t),
		"--address", tokenAddr.Hex(),
		"--chain-id", "1",
		"transfer", recipient.Hex(), "1000",
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := "ethereum:" + tokenAddr.Hex() + "/transfer@1?address=0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed&uint256=1000"
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

// signedTransfer returns a signed dynamic-fee transfer call to tokenAddr.
func signedTransfer(t *testing.T) string {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	data, err := ethurl.MustParseABI(erc20ABI).Pack("transfer", recipient, big.NewInt(5))
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	tx, err := types.SignNewTx(key, types.LatestSignerForChainID(big.NewInt(1)), &types.DynamicFeeTx{
		ChainID:   big.NewInt(1),
		GasTipCap: big.NewInt(2),
		GasFeeCap: big.NewInt(30),
		Gas:       60000,
		To:        &tokenAddr,
		Data:      data,
	})
	if err != nil {
		t.Fatalf("SignNewTx failed: %v", err)
	}
	raw, err := tx.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	return hexutil.Encode(raw)
}

func TestTxCommand(t *testing.T) {
	raw := signedTransfer(t)
	abiPath := writeABI(t)
	fees := "gas=6e4&maxFeePerGas=3e1&maxPriorityFeePerGas=2e0"

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "with ABI",
			args: []string{"--abi", abiPath, raw},
			want: "ethereum:" + tokenAddr.Hex() + "/transfer@1?address=0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed&uint256=5&" + fees,
		},
		{
			name: "without ABI",
			args: []string{raw},
			want: "ethereum:" + tokenAddr.Hex() + "@1?" + fees,
		},
		{
			name: "legacy profile ignores ABI",
			args: []string{"--legacy", "--abi", abiPath, raw},
			want: "ethereum:" + tokenAddr.Hex() + "?" + fees + "&chainId=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, append([]string{"tx"}, tt.args...)...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}

	t.Run("invalid hex", func(t *testing.T) {
		if _, err := execute(t, "tx", "0xzz"); err == nil {
			t.Error("Expected error for invalid raw transaction")
		}
	})
}
