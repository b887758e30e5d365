// Package money holds currency amounts as integer cents so arithmetic
// stays exact. All prices in the system flow through this type.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a currency value in cents.
type Amount int64

var ErrInvalidAmount = errors.New("invalid amount")

func (a Amount) Add(b Amount) Amount { return a + b }

func (a Amount) Sub(b Amount) Amount { return a - b }

// Split divides total evenly into n shares that sum back to total exactly.
// Each share is total/n rounded down; the first total%n shares carry one
// extra cent. Share order is stable, so callers can map shares onto
// membership order deterministically.
func Split(total Amount, n int) ([]Amount, error) {
	if total < 0 || n <= 0 {
		return nil, fmt.Errorf("%w: split %d into %d shares", ErrInvalidAmount, total, n)
	}

	base := total / Amount(n)
	extra := total % Amount(n)

	shares := make([]Amount, n)
	for i := range shares {
		shares[i] = base
		if Amount(i) < extra {
			shares[i]++
		}
	}

	return shares, nil
}

// Parse converts a decimal string like "12.34" into cents.
// Used when reading prices out of CSV rows.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return Amount(d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()), nil
}

// String formats the amount as a plain decimal, e.g. 1234 -> "12.34".
func (a Amount) String() string {
	sign := ""
	if a < 0 {
		sign = "-"
		a = -a
	}

	return fmt.Sprintf("%s%d.%02d", sign, a/100, a%100)
}
