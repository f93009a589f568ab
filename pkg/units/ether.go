package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// EtherDecimals is the number of fractional digits between ether and wei.
const EtherDecimals = 18

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrTooManyDecimals = errors.New("too many decimal places")
	weiPerEther        = new(big.Int).Exp(big.NewInt(10), big.NewInt(EtherDecimals), nil)
)

// ParseEther converts a decimal ether string such as "1.25" into wei without
// going through floating point. A leading minus sign is accepted so that
// callers can reject non-positive values themselves.
func ParseEther(amount string) (*big.Int, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	frac = strings.TrimRight(frac, "0")
	if len(frac) > EtherDecimals {
		return nil, fmt.Errorf("%w: %q", ErrTooManyDecimals, amount)
	}
	frac += strings.Repeat("0", EtherDecimals-len(frac))

	wei, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if negative {
		wei.Neg(wei)
	}

	return wei, nil
}

// FormatEther renders a wei value as a decimal ether string with no trailing
// fractional zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	abs := new(big.Int).Abs(wei)
	whole, rem := new(big.Int).QuoRem(abs, weiPerEther, new(big.Int))

	out := whole.String()
	if rem.Sign() != 0 {
		frac := rem.String()
		frac = strings.Repeat("0", EtherDecimals-len(frac)) + frac
		out += "." + strings.TrimRight(frac, "0")
	}
	if wei.Sign() < 0 {
		out = "-" + out
	}

	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
