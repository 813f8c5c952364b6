package royalty_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royaltyguard/royalty-checker/internal/domain"
	"github.com/royaltyguard/royalty-checker/internal/royalty"
)

func TestOwedRoyalty(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		bps      int
		expected string
	}{
		{"five percent", 100000, 500, "5000"},
		{"zero amount", 0, 500, "0"},
		{"zero basis points", 100000, 0, "0"},
		{"fractional lamports", 333, 750, "24.975"},
		{"lamport scale sale", 9_000_000_000_000_000, 10000, "9000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := royalty.OwedRoyalty(tt.amount, tt.bps)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestNormalizeReceivedAmount(t *testing.T) {
	got, err := royalty.NormalizeReceivedAmount(2000, 100)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(2000)))

	got, err = royalty.NormalizeReceivedAmount(2500, 50)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(5000)))

	_, err = royalty.NormalizeReceivedAmount(2000, 0)
	assert.ErrorIs(t, err, domain.ErrZeroShare)

	_, err = royalty.NormalizeReceivedAmount(2000, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidRoyaltyConfig)
}

func TestIsFullPayment(t *testing.T) {
	owed := decimal.NewFromInt(5000)

	assert.True(t, royalty.IsFullPayment(owed, decimal.NewFromInt(5000)))
	assert.True(t, royalty.IsFullPayment(owed, decimal.NewFromInt(4950)))
	assert.False(t, royalty.IsFullPayment(owed, decimal.NewFromInt(4949)))
	assert.False(t, royalty.IsFullPayment(owed, decimal.NewFromInt(2000)))
	assert.True(t, royalty.IsFullPayment(owed, decimal.NewFromInt(6000)))
}

func TestFirstNonZeroShareReceiver(t *testing.T) {
	creators := []domain.Creator{
		{Address: "A", Share: 0},
		{Address: "B", Share: 40},
		{Address: "C", Share: 60},
	}
	c, ok := royalty.FirstNonZeroShareReceiver(creators)
	require.True(t, ok)
	assert.Equal(t, "B", c.Address)

	_, ok = royalty.FirstNonZeroShareReceiver([]domain.Creator{{Address: "A", Share: 0}})
	assert.False(t, ok)

	_, ok = royalty.FirstNonZeroShareReceiver(nil)
	assert.False(t, ok)
}

func TestFindTransferTo(t *testing.T) {
	transfers := []domain.NativeTransfer{
		{ToUserAccount: "seller", Amount: 90000},
		{ToUserAccount: "creator", Amount: 2000},
		{ToUserAccount: "creator", Amount: 3000},
	}

	tr, ok := royalty.FindTransferTo(transfers, "creator")
	require.True(t, ok)
	assert.Equal(t, int64(2000), tr.Amount)

	_, ok = royalty.FindTransferTo(transfers, "nobody")
	assert.False(t, ok)

	assert.Equal(t, int64(5000), royalty.SumTransfersTo(transfers, "creator"))
	assert.Equal(t, int64(0), royalty.SumTransfersTo(transfers, "nobody"))
}

func TestOwedRoyaltyProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	amounts := gen.Int64Range(0, 1_000_000_000_000_000)
	bps := gen.IntRange(0, domain.MAX_BASIS_POINTS)

	properties.Property("monotonic in sale amount", prop.ForAll(
		func(a, b int64, p int) bool {
			if a > b {
				a, b = b, a
			}
			return royalty.OwedRoyalty(a, p).LessThanOrEqual(royalty.OwedRoyalty(b, p))
		},
		amounts, amounts, bps,
	))

	properties.Property("monotonic in basis points", prop.ForAll(
		func(a int64, p, q int) bool {
			if p > q {
				p, q = q, p
			}
			return royalty.OwedRoyalty(a, p).LessThanOrEqual(royalty.OwedRoyalty(a, q))
		},
		amounts, bps, bps,
	))

	properties.Property("zero when either argument is zero", prop.ForAll(
		func(a int64, p int) bool {
			return royalty.OwedRoyalty(0, p).IsZero() && royalty.OwedRoyalty(a, 0).IsZero()
		},
		amounts, bps,
	))

	properties.Property("never exceeds sale amount", prop.ForAll(
		func(a int64, p int) bool {
			return royalty.OwedRoyalty(a, p).LessThanOrEqual(decimal.NewFromInt(a))
		},
		amounts, bps,
	))

	properties.TestingRun(t)
}
