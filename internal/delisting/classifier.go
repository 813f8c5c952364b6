package delisting

import (
	"context"

	"go.uber.org/zap"

	"github.com/royaltyguard/royalty-checker/internal/adapter"
	"github.com/royaltyguard/royalty-checker/internal/domain"
	"github.com/royaltyguard/royalty-checker/internal/events"
	"github.com/royaltyguard/royalty-checker/internal/logger"
	"github.com/royaltyguard/royalty-checker/internal/metrics"
)

// Events are the latest listing, cancel listing and sale of one mint; any may be nil
type Events struct {
	Listing *domain.MarketEvent
	Cancel  *domain.MarketEvent
	Sale    *domain.MarketEvent
}

// EventsFromIndex picks a mint's latest listing events out of an aggregated index
func EventsFromIndex(idx *events.Index, mint string) Events {
	return Events{
		Listing: idx.Latest(mint, domain.EventTypeListing),
		Cancel:  idx.Latest(mint, domain.EventTypeCancelListing),
		Sale:    idx.Latest(mint, domain.EventTypeSale),
	}
}

// Classifier decides whether a mint has been off the market for long enough
type Classifier struct {
	clock adapter.Clock
}

// NewClassifier creates a Classifier reading "now" from clock
func NewClassifier(clock adapter.Clock) *Classifier {
	return &Classifier{clock: clock}
}

// Cutoff returns the unix millisecond instant a terminal event must precede
func (c *Classifier) Cutoff(unlistedDays float64) int64 {
	return c.clock.Now().UnixMilli() - int64(unlistedDays*domain.SECONDS_PER_DAY*1000)
}

// Classify applies the delisting rules in order
func (c *Classifier) Classify(ctx context.Context, mint string, evts Events, unlistedDays float64) domain.UnlistedClassification {
	unlisted := IsUnlisted(evts, c.Cutoff(unlistedDays))
	metrics.Default().ObserveUnlisted(unlisted)
	logger.DebugCtx(ctx, "Classified listing state",
		zap.String("mint", mint),
		zap.Bool("unlisted", unlisted),
		zap.Bool("has_listing", evts.Listing != nil),
		zap.Bool("has_cancel", evts.Cancel != nil),
		zap.Bool("has_sale", evts.Sale != nil),
	)
	return domain.UnlistedClassification{Mint: mint, Unlisted: unlisted}
}

// IsUnlisted evaluates the rules against a cutoff in unix milliseconds.
// A listing with neither a later cancel nor a sale counts as listed regardless of its age.
func IsUnlisted(evts Events, cutoffMs int64) bool {
	if evts.Listing == nil {
		return true
	}

	before := func(e *domain.MarketEvent) bool {
		return e.Timestamp*1000 <= cutoffMs
	}

	switch {
	case evts.Cancel != nil && evts.Sale != nil:
		return before(evts.Cancel) || before(evts.Sale)
	case evts.Cancel != nil:
		return before(evts.Cancel)
	case evts.Sale != nil:
		return before(evts.Sale)
	default:
		return false
	}
}
