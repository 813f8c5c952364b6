package royalty

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/royaltyguard/royalty-checker/internal/domain"
)

var (
	basisPointsDenominator = decimal.NewFromInt(domain.MAX_BASIS_POINTS)
	hundred                = decimal.NewFromInt(100)

	// FullPaymentTolerance is the fraction of the owed amount that must be received
	// for a payment to count as full
	FullPaymentTolerance = decimal.New(99, -2)
)

// OwedRoyalty returns saleAmount * sellerFeeBasisPoints / 10000 in lamports
func OwedRoyalty(saleAmount int64, sellerFeeBasisPoints int) decimal.Decimal {
	return decimal.NewFromInt(saleAmount).
		Mul(decimal.NewFromInt(int64(sellerFeeBasisPoints))).
		Div(basisPointsDenominator)
}

// NormalizeReceivedAmount extrapolates the full royalty from a payment made to a
// receiver holding sharePercent of the creator split
func NormalizeReceivedAmount(transferAmount int64, sharePercent int) (decimal.Decimal, error) {
	if sharePercent == 0 {
		return decimal.Zero, domain.ErrZeroShare
	}
	if sharePercent < 0 {
		return decimal.Zero, fmt.Errorf("%w: negative share %d", domain.ErrInvalidRoyaltyConfig, sharePercent)
	}
	return decimal.NewFromInt(transferAmount).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(sharePercent))), nil
}

// IsFullPayment reports whether normalized covers owed within the 1% tolerance
func IsFullPayment(owed, normalized decimal.Decimal) bool {
	return owed.Mul(FullPaymentTolerance).LessThanOrEqual(normalized)
}

// FindTransferTo returns the first transfer addressed to receiver, in list order
func FindTransferTo(transfers []domain.NativeTransfer, receiver string) (domain.NativeTransfer, bool) {
	for _, t := range transfers {
		if t.ToUserAccount == receiver {
			return t, true
		}
	}
	return domain.NativeTransfer{}, false
}

// SumTransfersTo adds up every transfer addressed to receiver
func SumTransfersTo(transfers []domain.NativeTransfer, receiver string) int64 {
	var total int64
	for _, t := range transfers {
		if t.ToUserAccount == receiver {
			total += t.Amount
		}
	}
	return total
}
