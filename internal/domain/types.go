package domain

import (
	"fmt"
)

// EventType is the marketplace event type as reported by the sales source
type EventType string

const (
	EventTypeSale          EventType = "NFT_SALE"
	EventTypeListing       EventType = "NFT_LISTING"
	EventTypeCancelListing EventType = "NFT_CANCEL_LISTING"
)

// Creator is one entry of a token's on-chain creator list
type Creator struct {
	Address  string `json:"address"`
	Share    int    `json:"share"` // percent, 0-100
	Verified bool   `json:"verified"`
}

// RoyaltyConfig is the on-chain royalty configuration of a single mint
type RoyaltyConfig struct {
	Mint                 string    `json:"mint"`
	SellerFeeBasisPoints int       `json:"sellerFeeBasisPoints"`
	Creators             []Creator `json:"creators"`
}

// Validate checks the basis points range and creator shares
func (c RoyaltyConfig) Validate() error {
	if c.SellerFeeBasisPoints < 0 || c.SellerFeeBasisPoints > MAX_BASIS_POINTS {
		return fmt.Errorf("%w: seller fee basis points %d out of range", ErrInvalidRoyaltyConfig, c.SellerFeeBasisPoints)
	}
	for _, creator := range c.Creators {
		if creator.Share < 0 || creator.Share > 100 {
			return fmt.Errorf("%w: creator %s share %d out of range", ErrInvalidRoyaltyConfig, creator.Address, creator.Share)
		}
	}
	return nil
}

// NativeTransfer is a lamport movement inside a transaction
type NativeTransfer struct {
	FromUserAccount string `json:"fromUserAccount"`
	ToUserAccount   string `json:"toUserAccount"`
	Amount          int64  `json:"amount"`
}

// MarketEvent is a normalized marketplace event (sale, listing or cancel listing).
// A single event may reference several mints.
type MarketEvent struct {
	Signature       string           `json:"signature"`
	Type            EventType        `json:"type"`
	Source          string           `json:"source"`
	Timestamp       int64            `json:"timestamp"` // unix seconds
	Amount          int64            `json:"amount"`    // lamports
	Mints           []string         `json:"mints"`
	NativeTransfers []NativeTransfer `json:"nativeTransfers"`
}

// References reports whether the event touches the given mint
func (e MarketEvent) References(mint string) bool {
	for _, m := range e.Mints {
		if m == mint {
			return true
		}
	}
	return false
}

// SaleEvent is the latest sale of one mint, as consumed by the reconciliation engine
type SaleEvent struct {
	Mint            string           `json:"mint"`
	Signature       string           `json:"signature"`
	Timestamp       int64            `json:"timestamp"` // unix seconds
	Amount          int64            `json:"amount"`    // total sale price in lamports
	NativeTransfers []NativeTransfer `json:"nativeTransfers"`
}

// SaleFromEvent projects a sale market event onto a single mint
func SaleFromEvent(mint string, e *MarketEvent) *SaleEvent {
	if e == nil {
		return nil
	}
	return &SaleEvent{
		Mint:            mint,
		Signature:       e.Signature,
		Timestamp:       e.Timestamp,
		Amount:          e.Amount,
		NativeTransfers: e.NativeTransfers,
	}
}

// RepaymentRecord is the on-chain state written by the royalty repayment tool
type RepaymentRecord struct {
	Address        string `json:"address"`
	Mint           string `json:"mint"`
	RepayTimestamp int64  `json:"repayTimestamp"` // unix seconds
}

// Redemption is a single royalty settlement recorded through the repayment tool
type Redemption struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"` // unix seconds
	Amount    int64  `json:"amount"`    // lamports
}

// PaymentStatus is the outcome of a royalty reconciliation
type PaymentStatus string

const (
	PaymentStatusNone         PaymentStatus = ""
	PaymentStatusNeverSold    PaymentStatus = "never-sold"
	PaymentStatusPaidAtSale   PaymentStatus = "paid-at-sale"
	PaymentStatusPartial      PaymentStatus = "partial"
	PaymentStatusPaidWithTool PaymentStatus = "paid-with-tool"
	PaymentStatusError        PaymentStatus = "error"
)

// PaymentClassification is the royalty payment verdict for one mint
type PaymentClassification struct {
	Mint                string        `json:"mint"`
	RoyaltiesPaid       bool          `json:"royaltiesPaid"`
	RoyaltiesToPay      float64       `json:"royaltiesToPay"`      // lamports outstanding
	RoyaltiesPaidAmount float64       `json:"royaltiesPaidAmount"` // lamports accounted for
	Status              PaymentStatus `json:"status"`
	RedemptionTimestamp *int64        `json:"redemptionTimestamp,omitempty"`
}

// ErrorClassification is the verdict for a mint whose inputs could not be loaded
func ErrorClassification(mint string) PaymentClassification {
	return PaymentClassification{
		Mint:   mint,
		Status: PaymentStatusError,
	}
}

// UnlistedClassification is the delisting verdict for one mint
type UnlistedClassification struct {
	Mint     string `json:"mint"`
	Unlisted bool   `json:"unlisted"`
}
