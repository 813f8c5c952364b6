package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royaltyguard/royalty-checker/internal/domain"
	"github.com/royaltyguard/royalty-checker/internal/events"
)

func sampleEvents() []domain.MarketEvent {
	return []domain.MarketEvent{
		{Signature: "s1", Type: domain.EventTypeSale, Timestamp: 100, Mints: []string{"m1"}},
		{Signature: "s2", Type: domain.EventTypeSale, Timestamp: 300, Mints: []string{"m1", "m2"}},
		{Signature: "s3", Type: domain.EventTypeSale, Timestamp: 300, Mints: []string{"m1"}},
		{Signature: "l1", Type: domain.EventTypeListing, Timestamp: 500, Mints: []string{"m1"}},
		{Signature: "s4", Type: domain.EventTypeSale, Timestamp: 200, Mints: []string{"m2"}},
		{Signature: "s1", Type: domain.EventTypeSale, Timestamp: 100, Mints: []string{"m1"}},
	}
}

func TestLatestEventOfType(t *testing.T) {
	evts := sampleEvents()

	tests := []struct {
		name      string
		eventType domain.EventType
		mint      string
		expected  string
	}{
		{"latest sale with tie keeps first seen", domain.EventTypeSale, "m1", "s2"},
		{"multi mint event counts for each mint", domain.EventTypeSale, "m2", "s2"},
		{"other type ignored", domain.EventTypeListing, "m1", "l1"},
		{"no matching type", domain.EventTypeCancelListing, "m1", ""},
		{"unknown mint", domain.EventTypeSale, "m3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := events.LatestEventOfType(evts, tt.eventType, tt.mint)
			if tt.expected == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got.Signature)
		})
	}
}

func TestLatestEventOfType_Empty(t *testing.T) {
	assert.Nil(t, events.LatestEventOfType(nil, domain.EventTypeSale, "m1"))
}

func TestIndex_MatchesLinearScan(t *testing.T) {
	evts := sampleEvents()
	idx := events.NewIndex(evts)

	for _, mint := range []string{"m1", "m2", "m3"} {
		for _, typ := range []domain.EventType{domain.EventTypeSale, domain.EventTypeListing, domain.EventTypeCancelListing} {
			assert.Equal(t, events.LatestEventOfType(evts, typ, mint), idx.Latest(mint, typ), "%s/%s", mint, typ)
		}
	}
}

func TestIndex_LatestSale(t *testing.T) {
	evts := []domain.MarketEvent{
		{
			Signature: "sig",
			Type:      domain.EventTypeSale,
			Timestamp: 42,
			Amount:    100000,
			Mints:     []string{"m1"},
			NativeTransfers: []domain.NativeTransfer{
				{ToUserAccount: "creator", Amount: 5000},
			},
		},
	}
	idx := events.NewIndex(evts)

	sale := idx.LatestSale("m1")
	require.NotNil(t, sale)
	assert.Equal(t, "m1", sale.Mint)
	assert.Equal(t, int64(42), sale.Timestamp)
	assert.Equal(t, int64(100000), sale.Amount)
	assert.Len(t, sale.NativeTransfers, 1)

	assert.Nil(t, idx.LatestSale("m2"))

	var nilIdx *events.Index
	assert.Nil(t, nilIdx.Latest("m1", domain.EventTypeSale))
}
