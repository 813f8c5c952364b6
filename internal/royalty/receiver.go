package royalty

import "github.com/royaltyguard/royalty-checker/internal/domain"

// ReceiverPolicy selects the creator accountable for receiving royalties.
// It returns false when no creator qualifies.
type ReceiverPolicy func(creators []domain.Creator) (domain.Creator, bool)

// FirstNonZeroShareReceiver picks the first creator in list order with a positive share.
// Other creators are ignored.
func FirstNonZeroShareReceiver(creators []domain.Creator) (domain.Creator, bool) {
	for _, c := range creators {
		if c.Share > 0 {
			return c, true
		}
	}
	return domain.Creator{}, false
}
