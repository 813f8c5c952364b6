package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/royaltyguard/royalty-checker/internal/adapter"
	"github.com/royaltyguard/royalty-checker/internal/domain"
	"github.com/royaltyguard/royalty-checker/internal/logger"
	"github.com/royaltyguard/royalty-checker/internal/providers/helius"
	"github.com/royaltyguard/royalty-checker/internal/royalty"
)

// DATE_FORMAT is the layout of DayMetrics.Date, always in UTC
const DATE_FORMAT = "2006-01-02"

// ErrNoCollectionFilter is returned when neither collection filter is set
var ErrNoCollectionFilter = errors.New("collectionVerifiedAddresses or collectionVerifiedCreators is required")

var (
	lamportsPerSol         = decimal.NewFromInt(domain.LAMPORTS_PER_SOL)
	basisPointsDenominator = decimal.NewFromInt(domain.MAX_BASIS_POINTS)
	hundred                = decimal.NewFromInt(100)
)

// CollectionFilter selects the collection by verified collection address or first
// verified creator
type CollectionFilter struct {
	VerifiedCollectionAddresses []string
	FirstVerifiedCreators       []string
}

// CollectionData is the royalty setup shared by every token of a collection
type CollectionData struct {
	SellerFeeBasisPoints int
	RoyaltyWallet        string
	WalletPercentage     decimal.Decimal // receiver share as a fraction, 0-1
}

// DayMetrics are the royalty figures of one 24h bucket. Amounts are in SOL.
type DayMetrics struct {
	Date                      string   `json:"date"`
	Sales                     int      `json:"sales"`
	SalesVolume               float64  `json:"salesVolume"`
	RoyaltiesPaid             float64  `json:"royaltiesPaid"`
	Redemptions               float64  `json:"redemptions"`
	OutstandingRoyalties      float64  `json:"outstandingRoyalties"`
	PercentagePaid            *float64 `json:"percentagePaid"`
	PercentageWithRedemptions *float64 `json:"percentageWithRedemptions"`
}

// Totals aggregate DayMetrics over the whole window
type Totals struct {
	TotalSales                     int      `json:"totalSales"`
	TotalSalesVolume               float64  `json:"totalSalesVolume"`
	TotalRoyaltiesPaid             float64  `json:"totalRoyaltiesPaid"`
	TotalOutstandingRoyalties      float64  `json:"totalOutstandingRoyalties"`
	TotalRedemptions               float64  `json:"totalRedemptions"`
	TotalPercentagePaid            *float64 `json:"totalPercentagePaid"`
	TotalPercentageWithRedemptions *float64 `json:"totalPercentageWithRedemptions"`
}

// Breakdown is the royalty compliance time series of a collection, newest day first
type Breakdown struct {
	MetricsByDay []DayMetrics `json:"metricsByDay"`
	Total        Totals       `json:"total"`
}

// Reporter builds royalty breakdowns from sales events and repayment tool history
type Reporter struct {
	client         helius.Client
	clock          adapter.Clock
	policy         royalty.ReceiverPolicy
	programID      solana.PublicKey
	days           int
	outstandingBps int
}

// NewReporter creates a Reporter covering the last days days. Outstanding royalties
// are computed at outstandingBps regardless of the collection's own rate.
func NewReporter(client helius.Client, clock adapter.Clock, programID solana.PublicKey, days int, outstandingBps int) *Reporter {
	return &Reporter{
		client:         client,
		clock:          clock,
		policy:         royalty.FirstNonZeroShareReceiver,
		programID:      programID,
		days:           days,
		outstandingBps: outstandingBps,
	}
}

// Breakdown computes per-day and total royalty metrics for the collection
func (r *Reporter) Breakdown(ctx context.Context, filter CollectionFilter) (*Breakdown, error) {
	if len(filter.VerifiedCollectionAddresses) == 0 && len(filter.FirstVerifiedCreators) == 0 {
		return nil, ErrNoCollectionFilter
	}

	end := r.clock.Now().Unix()
	start := end - int64(r.days)*domain.SECONDS_PER_DAY

	sales, err := r.client.FetchEvents(ctx, helius.EventQuery{
		Types:                       []domain.EventType{domain.EventTypeSale},
		StartTime:                   start,
		EndTime:                     end,
		VerifiedCollectionAddresses: filter.VerifiedCollectionAddresses,
		FirstVerifiedCreators:       filter.FirstVerifiedCreators,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collection sales: %w", err)
	}

	collection, err := r.CollectionData(ctx, sales)
	if err != nil {
		return nil, err
	}

	redemptions, err := r.Redemptions(ctx, collection.RoyaltyWallet, start)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Building royalty breakdown",
		zap.Int("sales", len(sales)),
		zap.Int("redemptions", len(redemptions)),
		zap.String("royalty_wallet", collection.RoyaltyWallet),
		zap.Int("seller_fee_basis_points", collection.SellerFeeBasisPoints),
	)

	return r.build(sales, redemptions, collection, start, end), nil
}

// CollectionData reads the royalty setup from the metadata of the first sold token.
// A window without sales yields the zero CollectionData.
func (r *Reporter) CollectionData(ctx context.Context, sales []domain.MarketEvent) (CollectionData, error) {
	var mint string
	for _, s := range sales {
		if len(s.Mints) > 0 {
			mint = s.Mints[0]
			break
		}
	}
	if mint == "" {
		return CollectionData{WalletPercentage: decimal.Zero}, nil
	}

	configs, err := r.client.FetchMetadata(ctx, []string{mint})
	if err != nil {
		return CollectionData{}, fmt.Errorf("failed to fetch collection metadata: %w", err)
	}
	cfg, ok := configs[mint]
	if !ok {
		return CollectionData{}, fmt.Errorf("%w: %s", domain.ErrMetadataNotFound, mint)
	}

	data := CollectionData{SellerFeeBasisPoints: cfg.SellerFeeBasisPoints, WalletPercentage: decimal.Zero}
	if receiver, ok := r.policy(cfg.Creators); ok {
		data.RoyaltyWallet = receiver.Address
		data.WalletPercentage = decimal.NewFromInt(int64(receiver.Share)).Div(hundred)
	}
	return data, nil
}

// Redemptions returns the repayment tool settlements paid to wallet since the given
// unix time
func (r *Reporter) Redemptions(ctx context.Context, wallet string, since int64) ([]domain.Redemption, error) {
	if wallet == "" {
		return nil, nil
	}

	txs, err := r.client.FetchTransactionsSince(ctx, r.programID.String(), since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repayment history: %w", err)
	}

	var out []domain.Redemption
	for _, tx := range txs {
		amount := royalty.SumTransfersTo(tx.NativeTransfers, wallet)
		if amount == 0 {
			continue
		}
		out = append(out, domain.Redemption{
			Signature: tx.Signature,
			Timestamp: tx.Timestamp,
			Amount:    amount,
		})
	}
	return out, nil
}

type totals struct {
	sales       int
	volume      decimal.Decimal
	paid        decimal.Decimal
	outstanding decimal.Decimal
	redemptions decimal.Decimal
}

func (r *Reporter) build(sales []domain.MarketEvent, redemptions []domain.Redemption, collection CollectionData, start, end int64) *Breakdown {
	out := &Breakdown{MetricsByDay: []DayMetrics{}}
	sum := totals{
		volume:      decimal.Zero,
		paid:        decimal.Zero,
		outstanding: decimal.Zero,
		redemptions: decimal.Zero,
	}

	for dayEnd := end; dayEnd > start; dayEnd -= domain.SECONDS_PER_DAY {
		dayStart := dayEnd - domain.SECONDS_PER_DAY
		day := r.day(sales, redemptions, collection, dayStart, dayEnd)

		paid := toSol(day.paid)
		red := toSol(day.redemptions)
		outstanding := toSol(day.outstanding).Sub(red)
		volume := toSol(day.volume)

		out.MetricsByDay = append(out.MetricsByDay, DayMetrics{
			Date:                      time.Unix(dayEnd, 0).UTC().Format(DATE_FORMAT),
			Sales:                     day.sales,
			SalesVolume:               volume.InexactFloat64(),
			RoyaltiesPaid:             paid.InexactFloat64(),
			Redemptions:               red.InexactFloat64(),
			OutstandingRoyalties:      outstanding.InexactFloat64(),
			PercentagePaid:            percentage(day.paid, day.paid.Add(day.outstanding)),
			PercentageWithRedemptions: percentage(day.paid.Add(day.redemptions), day.paid.Add(day.outstanding)),
		})

		sum.sales += day.sales
		sum.volume = sum.volume.Add(volume)
		sum.paid = sum.paid.Add(paid)
		sum.outstanding = sum.outstanding.Add(outstanding)
		sum.redemptions = sum.redemptions.Add(red)
	}

	out.Total = Totals{
		TotalSales:                     sum.sales,
		TotalSalesVolume:               sum.volume.InexactFloat64(),
		TotalRoyaltiesPaid:             sum.paid.InexactFloat64(),
		TotalOutstandingRoyalties:      sum.outstanding.InexactFloat64(),
		TotalRedemptions:               sum.redemptions.InexactFloat64(),
		TotalPercentagePaid:            percentage(sum.paid, sum.paid.Add(sum.outstanding)),
		TotalPercentageWithRedemptions: percentage(sum.paid.Add(sum.redemptions), sum.paid.Add(sum.outstanding)),
	}
	return out
}

// day sums one [dayStart, dayEnd) bucket in lamports. Outstanding is not yet
// reduced by redemptions.
func (r *Reporter) day(sales []domain.MarketEvent, redemptions []domain.Redemption, collection CollectionData, dayStart, dayEnd int64) totals {
	t := totals{
		volume:      decimal.Zero,
		paid:        decimal.Zero,
		outstanding: decimal.Zero,
		redemptions: decimal.Zero,
	}
	expectedRate := decimal.NewFromInt(int64(collection.SellerFeeBasisPoints)).Mul(collection.WalletPercentage)

	for _, sale := range sales {
		if sale.Type != domain.EventTypeSale || sale.Timestamp < dayStart || sale.Timestamp >= dayEnd {
			continue
		}
		amount := decimal.NewFromInt(sale.Amount)
		t.sales++
		t.volume = t.volume.Add(amount)

		// counted only on an exact match with the receiver's cut
		transfer, ok := royalty.FindTransferTo(sale.NativeTransfers, collection.RoyaltyWallet)
		if ok && collection.RoyaltyWallet != "" {
			expected := amount.Mul(expectedRate).Div(basisPointsDenominator)
			if decimal.NewFromInt(transfer.Amount).Equal(expected) {
				t.paid = t.paid.Add(royalty.OwedRoyalty(sale.Amount, collection.SellerFeeBasisPoints))
			}
		}

		var received int64
		if collection.RoyaltyWallet != "" {
			received = royalty.SumTransfersTo(sale.NativeTransfers, collection.RoyaltyWallet)
		}
		t.outstanding = t.outstanding.
			Add(royalty.OwedRoyalty(sale.Amount, r.outstandingBps)).
			Sub(decimal.NewFromInt(received))
	}

	for _, red := range redemptions {
		if red.Timestamp < dayStart || red.Timestamp >= dayEnd {
			continue
		}
		t.redemptions = t.redemptions.Add(decimal.NewFromInt(red.Amount))
	}
	return t
}

func toSol(lamports decimal.Decimal) decimal.Decimal {
	return lamports.Div(lamportsPerSol)
}

// percentage returns num/den*100, or nil when den is zero
func percentage(num, den decimal.Decimal) *float64 {
	if den.IsZero() {
		return nil
	}
	p := num.Div(den).Mul(hundred).InexactFloat64()
	return &p
}
