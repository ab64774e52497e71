package ethurl

import (
	"math/big"
	"strconv"
	"strings"
)

// ToExponential renders an integer amount in normalized scientific notation
// with the minimal mantissa that reconstructs it exactly, e.g. 2014000000000000000
// becomes "2.014e18" and 0 becomes "0e0". A nil amount renders as zero.
func ToExponential(amount *big.Int) string {
	if amount == nil || amount.Sign() == 0 {
		return "0e0"
	}

	digits := new(big.Int).Abs(amount).String()
	exponent := len(digits) - 1
	mantissa := strings.TrimRight(digits, "0")

	var b strings.Builder
	if amount.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteByte(mantissa[0])
	if len(mantissa) > 1 {
		b.WriteByte('.')
		b.WriteString(mantissa[1:])
	}
	b.WriteByte('e')
	b.WriteString(strconv.Itoa(exponent))
	return b.String()
}

// isUnset reports whether an amount is absent. Zero is treated as absent.
func isUnset(amount *big.Int) bool {
	return amount == nil || amount.Sign() == 0
}
