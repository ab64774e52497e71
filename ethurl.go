// Package ethurl builds Ethereum transaction request URIs that wallets can
// open to pre-fill and execute a transaction.
//
// A URI is assembled from a Transaction (recipient, value, fee fields, chain
// id and an optional call payload). When a contract descriptor is supplied,
// the call payload is decoded against its ABI so the URI names the function
// and carries its typed arguments.
//
// # Basic Usage
//
// Serialize a plain value transfer:
//
//	uri, err := ethurl.Serialize(&ethurl.Transaction{
//	    To:    "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
//	    Value: big.NewInt(1e18),
//	})
//	// ethereum:0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed?value=1e18
//
// Render a contract invocation instead of submitting it:
//
//	token := ethurl.NewContract(tokenAddr, ethurl.MustParseABI(erc20ABIJSON))
//	wrapped := ethurl.Wrap(token)
//
//	uri, err := wrapped.Call(ctx, "transfer", recipient, big.NewInt(1000))
//	// ethereum:0x.../transfer?address=0x...&uint256=1000
//
// # Profiles
//
// Two URI profiles are supported:
//
//   - ProfileFull (default): ENS targets receive the "pay-" prefix, a decoded
//     function is appended as a path segment and the chain id is rendered as
//     an "@<chainId>" suffix.
//
//   - ProfileLegacy: a bare "ethereum:<target>" with every field, including
//     chainId, rendered as a query parameter.
//
// The chain id rendering can be overridden independently with
// WithChainIDStyle.
//
// # Amounts
//
// Amounts are rendered in exponential notation ("2.014e18") without any loss
// of precision. Zero amounts are treated the same as unset fields and are
// omitted from the query string.
//
// # References
//
//   - https://eips.ethereum.org/EIPS/eip-681 (transaction request URIs)
//   - https://eips.ethereum.org/EIPS/eip-55 (checksummed addresses)
package ethurl

const (
	// Scheme is the URI scheme shared by both profiles.
	Scheme = "ethereum"

	// PayPrefix marks a payment request addressed to a human-readable name.
	PayPrefix = "pay"
)
