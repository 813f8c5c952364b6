package delisting_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/royaltyguard/royalty-checker/internal/delisting"
	"github.com/royaltyguard/royalty-checker/internal/domain"
	"github.com/royaltyguard/royalty-checker/internal/events"
	"github.com/royaltyguard/royalty-checker/internal/mocks"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(days int) *domain.MarketEvent {
	return &domain.MarketEvent{Timestamp: now.Add(-time.Duration(days) * 24 * time.Hour).Unix()}
}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name     string
		events   delisting.Events
		days     float64
		expected bool
	}{
		{
			name:     "never listed",
			events:   delisting.Events{},
			days:     30,
			expected: true,
		},
		{
			name:     "never listed even with a recent sale",
			events:   delisting.Events{Sale: daysAgo(1)},
			days:     30,
			expected: true,
		},
		{
			name:     "old listing without cancel or sale stays listed",
			events:   delisting.Events{Listing: daysAgo(40)},
			days:     30,
			expected: false,
		},
		{
			name:     "cancel and sale, old cancel",
			events:   delisting.Events{Listing: daysAgo(60), Cancel: daysAgo(40), Sale: daysAgo(5)},
			days:     30,
			expected: true,
		},
		{
			name:     "cancel and sale, old sale",
			events:   delisting.Events{Listing: daysAgo(60), Cancel: daysAgo(5), Sale: daysAgo(40)},
			days:     30,
			expected: true,
		},
		{
			name:     "cancel and sale, both recent",
			events:   delisting.Events{Listing: daysAgo(60), Cancel: daysAgo(5), Sale: daysAgo(10)},
			days:     30,
			expected: false,
		},
		{
			name:     "only old cancel",
			events:   delisting.Events{Listing: daysAgo(60), Cancel: daysAgo(31)},
			days:     30,
			expected: true,
		},
		{
			name:     "only recent cancel",
			events:   delisting.Events{Listing: daysAgo(60), Cancel: daysAgo(29)},
			days:     30,
			expected: false,
		},
		{
			name:     "cancel exactly at cutoff",
			events:   delisting.Events{Listing: daysAgo(60), Cancel: daysAgo(30)},
			days:     30,
			expected: true,
		},
		{
			name:     "only old sale",
			events:   delisting.Events{Listing: daysAgo(60), Sale: daysAgo(45)},
			days:     30,
			expected: true,
		},
		{
			name:     "only recent sale",
			events:   delisting.Events{Listing: daysAgo(60), Sale: daysAgo(2)},
			days:     30,
			expected: false,
		},
		{
			name:     "zero threshold",
			events:   delisting.Events{Listing: daysAgo(2), Sale: daysAgo(1)},
			days:     0,
			expected: true,
		},
		{
			name:     "fractional days",
			events:   delisting.Events{Listing: daysAgo(2), Cancel: daysAgo(1)},
			days:     1.5,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			clock := mocks.NewMockClock(ctrl)
			clock.EXPECT().Now().Return(now)

			got := delisting.NewClassifier(clock).Classify(context.Background(), "mint", tt.events, tt.days)
			assert.Equal(t, domain.UnlistedClassification{Mint: "mint", Unlisted: tt.expected}, got)
		})
	}
}

func TestClassifier_Cutoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now)

	assert.Equal(t, now.UnixMilli()-30*86400000, delisting.NewClassifier(clock).Cutoff(30))
}

func TestEventsFromIndex(t *testing.T) {
	idx := events.NewIndex([]domain.MarketEvent{
		{Signature: "l", Type: domain.EventTypeListing, Timestamp: 10, Mints: []string{"m"}},
		{Signature: "c", Type: domain.EventTypeCancelListing, Timestamp: 20, Mints: []string{"m"}},
		{Signature: "s", Type: domain.EventTypeSale, Timestamp: 30, Mints: []string{"other"}},
	})

	evts := delisting.EventsFromIndex(idx, "m")
	assert.Equal(t, "l", evts.Listing.Signature)
	assert.Equal(t, "c", evts.Cancel.Signature)
	assert.Nil(t, evts.Sale)
}
