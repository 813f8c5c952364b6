package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royaltyguard/royalty-checker/internal/domain"
	"github.com/royaltyguard/royalty-checker/internal/mocks"
	"github.com/royaltyguard/royalty-checker/internal/providers/helius"
	"github.com/royaltyguard/royalty-checker/internal/report"
)

var (
	programID = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	now       = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
)

const day = int64(domain.SECONDS_PER_DAY)

type fixture struct {
	client   *mocks.MockHeliusClient
	reporter *report.Reporter
}

func setup(t *testing.T, days int) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	client := mocks.NewMockHeliusClient(ctrl)
	return fixture{
		client:   client,
		reporter: report.NewReporter(client, clock, programID, days, 750),
	}
}

func TestReporter_Breakdown(t *testing.T) {
	f := setup(t, 2)
	ctx := context.Background()
	end := now.Unix()
	start := end - 2*day

	filter := report.CollectionFilter{VerifiedCollectionAddresses: []string{"collection"}}

	sales := []domain.MarketEvent{
		{
			Signature: "s1",
			Type:      domain.EventTypeSale,
			Timestamp: end - 100,
			Amount:    1_000_000_000,
			Mints:     []string{"m1"},
			NativeTransfers: []domain.NativeTransfer{
				{ToUserAccount: "seller", Amount: 900_000_000},
				{ToUserAccount: "wallet", Amount: 50_000_000},
			},
		},
		{
			Signature: "s2",
			Type:      domain.EventTypeSale,
			Timestamp: end - day - 100,
			Amount:    2_000_000_000,
			Mints:     []string{"m2"},
		},
	}

	f.client.EXPECT().
		FetchEvents(gomock.Any(), helius.EventQuery{
			Types:                       []domain.EventType{domain.EventTypeSale},
			StartTime:                   start,
			EndTime:                     end,
			VerifiedCollectionAddresses: []string{"collection"},
		}).
		Return(sales, nil)
	f.client.EXPECT().
		FetchMetadata(gomock.Any(), []string{"m1"}).
		Return(map[string]domain.RoyaltyConfig{
			"m1": {
				Mint:                 "m1",
				SellerFeeBasisPoints: 500,
				Creators:             []domain.Creator{{Address: "vault", Share: 0}, {Address: "wallet", Share: 100}},
			},
		}, nil)
	f.client.EXPECT().
		FetchTransactionsSince(gomock.Any(), programID.String(), start).
		Return([]domain.MarketEvent{
			{Signature: "r1", Timestamp: end - day - 50, NativeTransfers: []domain.NativeTransfer{{ToUserAccount: "wallet", Amount: 100_000_000}}},
			{Signature: "r2", Timestamp: end - 10, NativeTransfers: []domain.NativeTransfer{{ToUserAccount: "someone-else", Amount: 7}}},
		}, nil)

	out, err := f.reporter.Breakdown(ctx, filter)
	require.NoError(t, err)
	require.Len(t, out.MetricsByDay, 2)

	today := out.MetricsByDay[0]
	assert.Equal(t, "2024-01-10", today.Date)
	assert.Equal(t, 1, today.Sales)
	assert.InDelta(t, 1.0, today.SalesVolume, 1e-9)
	assert.InDelta(t, 0.05, today.RoyaltiesPaid, 1e-9)
	assert.InDelta(t, 0.0, today.Redemptions, 1e-9)
	assert.InDelta(t, 0.025, today.OutstandingRoyalties, 1e-9)
	require.NotNil(t, today.PercentagePaid)
	assert.InDelta(t, 66.6666, *today.PercentagePaid, 1e-3)
	assert.InDelta(t, 66.6666, *today.PercentageWithRedemptions, 1e-3)

	yesterday := out.MetricsByDay[1]
	assert.Equal(t, "2024-01-09", yesterday.Date)
	assert.Equal(t, 1, yesterday.Sales)
	assert.InDelta(t, 2.0, yesterday.SalesVolume, 1e-9)
	assert.InDelta(t, 0.0, yesterday.RoyaltiesPaid, 1e-9)
	assert.InDelta(t, 0.1, yesterday.Redemptions, 1e-9)
	// 0.15 owed at 750 bps minus the 0.1 redemption
	assert.InDelta(t, 0.05, yesterday.OutstandingRoyalties, 1e-9)
	assert.InDelta(t, 0.0, *yesterday.PercentagePaid, 1e-9)
	assert.InDelta(t, 66.6666, *yesterday.PercentageWithRedemptions, 1e-3)

	assert.Equal(t, 2, out.Total.TotalSales)
	assert.InDelta(t, 3.0, out.Total.TotalSalesVolume, 1e-9)
	assert.InDelta(t, 0.05, out.Total.TotalRoyaltiesPaid, 1e-9)
	assert.InDelta(t, 0.075, out.Total.TotalOutstandingRoyalties, 1e-9)
	assert.InDelta(t, 0.1, out.Total.TotalRedemptions, 1e-9)
	assert.InDelta(t, 40.0, *out.Total.TotalPercentagePaid, 1e-9)
	assert.InDelta(t, 120.0, *out.Total.TotalPercentageWithRedemptions, 1e-9)
}

func TestReporter_Breakdown_InexactPaymentNotCounted(t *testing.T) {
	f := setup(t, 1)
	end := now.Unix()

	f.client.EXPECT().FetchEvents(gomock.Any(), gomock.Any()).Return([]domain.MarketEvent{
		{
			Type:            domain.EventTypeSale,
			Timestamp:       end - 1,
			Amount:          1_000_000_000,
			Mints:           []string{"m1"},
			NativeTransfers: []domain.NativeTransfer{{ToUserAccount: "wallet", Amount: 49_999_999}},
		},
	}, nil)
	f.client.EXPECT().FetchMetadata(gomock.Any(), []string{"m1"}).Return(map[string]domain.RoyaltyConfig{
		"m1": {SellerFeeBasisPoints: 500, Creators: []domain.Creator{{Address: "wallet", Share: 100}}},
	}, nil)
	f.client.EXPECT().FetchTransactionsSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	out, err := f.reporter.Breakdown(context.Background(), report.CollectionFilter{FirstVerifiedCreators: []string{"creator"}})
	require.NoError(t, err)
	require.Len(t, out.MetricsByDay, 1)

	assert.InDelta(t, 0.0, out.MetricsByDay[0].RoyaltiesPaid, 1e-9)
	assert.InDelta(t, 0.025000001, out.MetricsByDay[0].OutstandingRoyalties, 1e-12)
}

func TestReporter_Breakdown_NoSales(t *testing.T) {
	f := setup(t, 3)

	f.client.EXPECT().FetchEvents(gomock.Any(), gomock.Any()).Return(nil, nil)

	out, err := f.reporter.Breakdown(context.Background(), report.CollectionFilter{VerifiedCollectionAddresses: []string{"c"}})
	require.NoError(t, err)
	require.Len(t, out.MetricsByDay, 3)
	for _, d := range out.MetricsByDay {
		assert.Zero(t, d.Sales)
		assert.Nil(t, d.PercentagePaid)
		assert.Nil(t, d.PercentageWithRedemptions)
	}
	assert.Nil(t, out.Total.TotalPercentagePaid)
	assert.Equal(t, "2024-01-08", out.MetricsByDay[2].Date)
}

func TestReporter_Breakdown_Errors(t *testing.T) {
	filter := report.CollectionFilter{VerifiedCollectionAddresses: []string{"c"}}
	sale := []domain.MarketEvent{{Type: domain.EventTypeSale, Timestamp: now.Unix() - 1, Mints: []string{"m1"}}}

	t.Run("no filter", func(t *testing.T) {
		f := setup(t, 1)
		_, err := f.reporter.Breakdown(context.Background(), report.CollectionFilter{})
		assert.ErrorIs(t, err, report.ErrNoCollectionFilter)
	})

	t.Run("events fetch failure", func(t *testing.T) {
		f := setup(t, 1)
		f.client.EXPECT().FetchEvents(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
		_, err := f.reporter.Breakdown(context.Background(), filter)
		assert.ErrorContains(t, err, "failed to fetch collection sales")
	})

	t.Run("metadata missing", func(t *testing.T) {
		f := setup(t, 1)
		f.client.EXPECT().FetchEvents(gomock.Any(), gomock.Any()).Return(sale, nil)
		f.client.EXPECT().FetchMetadata(gomock.Any(), []string{"m1"}).Return(map[string]domain.RoyaltyConfig{}, nil)
		_, err := f.reporter.Breakdown(context.Background(), filter)
		assert.ErrorIs(t, err, domain.ErrMetadataNotFound)
	})

	t.Run("repayment history failure", func(t *testing.T) {
		f := setup(t, 1)
		f.client.EXPECT().FetchEvents(gomock.Any(), gomock.Any()).Return(sale, nil)
		f.client.EXPECT().FetchMetadata(gomock.Any(), []string{"m1"}).Return(map[string]domain.RoyaltyConfig{
			"m1": {Creators: []domain.Creator{{Address: "wallet", Share: 100}}},
		}, nil)
		f.client.EXPECT().FetchTransactionsSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
		_, err := f.reporter.Breakdown(context.Background(), filter)
		assert.ErrorContains(t, err, "failed to fetch repayment history")
	})
}
