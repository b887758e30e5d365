package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraigob/resold/internal/money"
)

func TestSplit(t *testing.T) {
	type testCase struct {
		name    string
		total   money.Amount
		n       int
		want    []money.Amount
		wantErr bool
	}

	tests := []testCase{
		{
			name:  "EvenSplit",
			total: 3000,
			n:     2,
			want:  []money.Amount{1500, 1500},
		},
		{
			name:  "RemainderGoesToFirstShares",
			total: 10000,
			n:     3,
			want:  []money.Amount{3334, 3333, 3333},
		},
		{
			name:  "SingleShare",
			total: 999,
			n:     1,
			want:  []money.Amount{999},
		},
		{
			name:  "ZeroTotal",
			total: 0,
			n:     4,
			want:  []money.Amount{0, 0, 0, 0},
		},
		{
			name:  "TotalSmallerThanShares",
			total: 2,
			n:     3,
			want:  []money.Amount{1, 1, 0},
		},
		{
			name:    "NegativeTotal",
			total:   -100,
			n:       2,
			wantErr: true,
		},
		{
			name:    "ZeroShares",
			total:   100,
			n:       0,
			wantErr: true,
		},
		{
			name:    "NegativeShares",
			total:   100,
			n:       -1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Split(tt.total, tt.n)

			if tt.wantErr {
				require.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_SumIsExact(t *testing.T) {
	totals := []money.Amount{0, 1, 99, 100, 101, 3333, 99999, 1000000}

	for _, total := range totals {
		for n := 1; n <= 12; n++ {
			shares, err := money.Split(total, n)
			require.NoError(t, err)

			var sum money.Amount

			base := total / money.Amount(n)
			for _, s := range shares {
				sum += s
				assert.True(t, s == base || s == base+1, "share %d outside one cent of floor", s)
			}

			assert.Equal(t, total, sum, "split of %d into %d leaked cents", total, n)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    money.Amount
		wantErr bool
	}{
		{in: "12.34", want: 1234},
		{in: "0.5", want: 50},
		{in: "100", want: 10000},
		{in: "0", want: 0},
		{in: "-5.00", want: -500},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := money.Parse(tt.in)

			if tt.wantErr {
				require.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "12.34", money.Amount(1234).String())
	assert.Equal(t, "0.05", money.Amount(5).String())
	assert.Equal(t, "-3.50", money.Amount(-350).String())
	assert.Equal(t, "0.00", money.Amount(0).String())
}
