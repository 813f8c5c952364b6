package events

import "github.com/royaltyguard/royalty-checker/internal/domain"

// LatestEventOfType returns the event of type t referencing mint with the greatest
// timestamp, or nil. On equal timestamps the first one seen wins.
func LatestEventOfType(events []domain.MarketEvent, t domain.EventType, mint string) *domain.MarketEvent {
	var latest *domain.MarketEvent
	for i := range events {
		e := &events[i]
		if e.Type != t || !e.References(mint) {
			continue
		}
		if latest == nil || e.Timestamp > latest.Timestamp {
			latest = e
		}
	}
	return latest
}

type key struct {
	mint      string
	eventType domain.EventType
}

// Index is a latest-event-per-(mint, type) lookup built from a possibly duplicated
// event list
type Index struct {
	latest map[key]*domain.MarketEvent
}

// NewIndex aggregates events in a single pass. Tie-breaking matches LatestEventOfType.
func NewIndex(events []domain.MarketEvent) *Index {
	idx := &Index{latest: make(map[key]*domain.MarketEvent)}
	for i := range events {
		e := &events[i]
		for _, mint := range e.Mints {
			k := key{mint: mint, eventType: e.Type}
			current, ok := idx.latest[k]
			if !ok || e.Timestamp > current.Timestamp {
				idx.latest[k] = e
			}
		}
	}
	return idx
}

// Latest returns the latest event of type t for mint, or nil
func (idx *Index) Latest(mint string, t domain.EventType) *domain.MarketEvent {
	if idx == nil {
		return nil
	}
	return idx.latest[key{mint: mint, eventType: t}]
}

// LatestSale returns the latest sale of mint projected to a SaleEvent, or nil
func (idx *Index) LatestSale(mint string) *domain.SaleEvent {
	return domain.SaleFromEvent(mint, idx.Latest(mint, domain.EventTypeSale))
}
