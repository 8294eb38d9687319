package sandbox

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scale is the number of Amount units in one test token.
const Scale = 1000

// Amount is a quantity of test tokens in thousandths of a token.
type Amount int64

// Tokens returns the amount for a whole number of tokens.
func Tokens(n int64) Amount {
	return Amount(n * Scale)
}

// ParseAmount converts a decimal string with at most three fractional digits
// into an amount.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty amount")
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")

	whole, frac, _ := strings.Cut(s, ".")
	if (whole == "" && frac == "") || !digits(whole) || !digits(frac) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if len(frac) > 3 {
		return 0, fmt.Errorf("amount %q has more than 3 decimal places", s)
	}

	var w int64
	if whole != "" {
		var err error
		if w, err = strconv.ParseInt(whole, 10, 64); err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}

	var f int64
	if frac != "" {
		var err error
		if f, err = strconv.ParseInt(frac+strings.Repeat("0", 3-len(frac)), 10, 64); err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}

	if w > (1<<63-1)/Scale-1 {
		return 0, fmt.Errorf("amount %q is too large", s)
	}

	a := Amount(w*Scale + f)
	if neg {
		a = -a
	}

	return a, nil
}

// String renders the amount with three decimal places.
func (a Amount) String() string {
	sign := ""
	if a < 0 {
		sign = "-"
		a = -a
	}
	return fmt.Sprintf("%s%d.%03d", sign, int64(a)/Scale, int64(a)%Scale)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (a *Amount) UnmarshalText(data []byte) error {
	v, err := ParseAmount(string(data))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
