package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/royaltyguard/royalty-checker/internal/api/shared/dto"
	apierrors "github.com/royaltyguard/royalty-checker/internal/api/shared/errors"
	"github.com/royaltyguard/royalty-checker/internal/config"
	"github.com/royaltyguard/royalty-checker/internal/delisting"
	"github.com/royaltyguard/royalty-checker/internal/domain"
	"github.com/royaltyguard/royalty-checker/internal/events"
	"github.com/royaltyguard/royalty-checker/internal/logger"
	"github.com/royaltyguard/royalty-checker/internal/pagination"
	"github.com/royaltyguard/royalty-checker/internal/providers/helius"
	"github.com/royaltyguard/royalty-checker/internal/reconcile"
	"github.com/royaltyguard/royalty-checker/internal/report"
)

var listingEventTypes = []domain.EventType{
	domain.EventTypeListing,
	domain.EventTypeCancelListing,
	domain.EventTypeSale,
}

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CheckNfts classifies the royalty payment of every mint, in request order
	CheckNfts(ctx context.Context, mints []string) ([]domain.PaymentClassification, error)

	// CheckNftsPage classifies the page of mints following paginationToken
	CheckNftsPage(ctx context.Context, mints []string, paginationToken string) (*dto.CheckNftsPageResponse, error)

	// CheckUnlisted classifies whether every mint has been off the market for unlistedDays
	CheckUnlisted(ctx context.Context, mints []string, unlistedDays float64) ([]domain.UnlistedClassification, error)

	// CheckUnlistedPage classifies the page of mints following paginationToken
	CheckUnlistedPage(ctx context.Context, mints []string, unlistedDays float64, paginationToken string) (*dto.CheckUnlistedPageResponse, error)

	// RoyaltyBreakdown builds the royalty compliance time series of a collection
	RoyaltyBreakdown(ctx context.Context, req dto.RoyaltyBreakdownRequest) (*report.Breakdown, error)

	// Close waits for running lookups and stops the worker pool
	Close()
}

type executor struct {
	helius     helius.Client
	engine     *reconcile.Engine
	classifier *delisting.Classifier
	codec      *pagination.Codec
	reporter   *report.Reporter
	pool       pond.Pool
	config     config.CheckerConfig
}

func NewExecutor(
	heliusClient helius.Client,
	engine *reconcile.Engine,
	classifier *delisting.Classifier,
	codec *pagination.Codec,
	reporter *report.Reporter,
	cfg config.CheckerConfig,
) Executor {
	return &executor{
		helius:     heliusClient,
		engine:     engine,
		classifier: classifier,
		codec:      codec,
		reporter:   reporter,
		pool:       pond.NewPool(max(cfg.Concurrency, 1)),
		config:     cfg,
	}
}

func (e *executor) Close() {
	e.pool.StopAndWait()
}

func (e *executor) CheckNfts(ctx context.Context, mints []string) ([]domain.PaymentClassification, error) {
	results := make([]domain.PaymentClassification, 0, len(mints))
	for _, batch := range chunk(mints, e.config.BatchSize) {
		results = append(results, e.engine.ClassifyBatch(ctx, e.batchInputs(ctx, batch))...)
	}
	return results, nil
}

// batchInputs loads sales and royalty configs of one batch in two upstream calls.
// Any failure marks the whole batch as unavailable.
func (e *executor) batchInputs(ctx context.Context, mints []string) []reconcile.Input {
	inputs := make([]reconcile.Input, len(mints))

	sales, err := e.helius.FetchEvents(ctx, helius.EventQuery{
		Accounts: mints,
		Types:    []domain.EventType{domain.EventTypeSale},
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch sales for batch", zap.Int("mints", len(mints)), zap.Error(err))
		return failedInputs(mints, err)
	}

	configs, err := e.helius.FetchMetadata(ctx, mints)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch metadata for batch", zap.Int("mints", len(mints)), zap.Error(err))
		return failedInputs(mints, err)
	}

	idx := events.NewIndex(sales)
	for i, mint := range mints {
		inputs[i] = withConfig(reconcile.Input{Mint: mint, Sale: idx.LatestSale(mint)}, configs)
	}
	return inputs
}

func (e *executor) CheckNftsPage(ctx context.Context, mints []string, paginationToken string) (*dto.CheckNftsPageResponse, error) {
	limit := e.config.CheckPageSize
	page, err := e.codec.Paginate(mints, paginationToken, limit)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Invalid pagination token")
	}

	inputs := make([]reconcile.Input, len(page.Mints))
	configs, metaErr := e.helius.FetchMetadata(ctx, page.Mints)
	if metaErr != nil {
		logger.WarnCtx(ctx, "Failed to fetch metadata for page", zap.Int("mints", len(page.Mints)), zap.Error(metaErr))
	}

	group := e.pool.NewGroup()
	for i, mint := range page.Mints {
		group.Submit(func() {
			defer func() {
				if r := recover(); r != nil {
					inputs[i] = reconcile.Input{Mint: mint, Err: fmt.Errorf("panic while loading sale: %v", r)}
					logger.ErrorCtx(ctx, inputs[i].Err, zap.String("mint", mint))
				}
			}()
			if metaErr != nil {
				inputs[i] = reconcile.Input{Mint: mint, Err: metaErr}
				return
			}
			sale, err := e.helius.FetchLatestSale(ctx, mint)
			if err != nil {
				logger.WarnCtx(ctx, "Failed to fetch latest sale", zap.String("mint", mint), zap.Error(err))
				inputs[i] = reconcile.Input{Mint: mint, Err: err}
				return
			}
			inputs[i] = withConfig(reconcile.Input{Mint: mint, Sale: sale}, configs)
		})
	}
	if err := group.Wait(); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to load page sales: %w", err))
	}

	classified := e.engine.ClassifyBatch(ctx, inputs)

	checked := make([]string, len(classified))
	for i, c := range classified {
		checked[i] = c.Mint
	}
	next, err := e.codec.Next(page, checked, limit, len(mints))
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to encode pagination token", err.Error())
	}

	return &dto.CheckNftsPageResponse{CheckedNfts: classified, PaginationToken: next}, nil
}

func (e *executor) CheckUnlisted(ctx context.Context, mints []string, unlistedDays float64) ([]domain.UnlistedClassification, error) {
	results := make([]domain.UnlistedClassification, 0, len(mints))
	for _, batch := range chunk(mints, e.config.BatchSize) {
		classified, err := e.classifyUnlisted(ctx, batch, unlistedDays)
		if err != nil {
			return nil, err
		}
		results = append(results, classified...)
	}
	return results, nil
}

func (e *executor) CheckUnlistedPage(ctx context.Context, mints []string, unlistedDays float64, paginationToken string) (*dto.CheckUnlistedPageResponse, error) {
	limit := e.config.UnlistedPageSize
	page, err := e.codec.Paginate(mints, paginationToken, limit)
	if err != nil {
		return nil, apierrors.FromDomain(err, "Invalid pagination token")
	}

	classified, err := e.classifyUnlisted(ctx, page.Mints, unlistedDays)
	if err != nil {
		return nil, err
	}

	checked := make([]string, len(classified))
	for i, c := range classified {
		checked[i] = c.Mint
	}
	next, err := e.codec.Next(page, checked, limit, len(mints))
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to encode pagination token", err.Error())
	}

	return &dto.CheckUnlistedPageResponse{CheckedNfts: classified, PaginationToken: next}, nil
}

func (e *executor) classifyUnlisted(ctx context.Context, mints []string, unlistedDays float64) ([]domain.UnlistedClassification, error) {
	if len(mints) == 0 {
		return []domain.UnlistedClassification{}, nil
	}

	evts, err := e.helius.FetchEvents(ctx, helius.EventQuery{
		Accounts: mints,
		Types:    listingEventTypes,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch listing events", zap.Int("mints", len(mints)), zap.Error(err))
		return nil, apierrors.FromDomain(err, "Failed to fetch listing events")
	}

	idx := events.NewIndex(evts)
	out := make([]domain.UnlistedClassification, len(mints))
	for i, mint := range mints {
		out[i] = e.classifier.Classify(ctx, mint, delisting.EventsFromIndex(idx, mint), unlistedDays)
	}
	return out, nil
}

func (e *executor) RoyaltyBreakdown(ctx context.Context, req dto.RoyaltyBreakdownRequest) (*report.Breakdown, error) {
	breakdown, err := e.reporter.Breakdown(ctx, report.CollectionFilter{
		VerifiedCollectionAddresses: req.CollectionVerifiedAddresses,
		FirstVerifiedCreators:       req.CollectionVerifiedCreators,
	})
	switch {
	case err == nil:
		return breakdown, nil
	case errors.Is(err, report.ErrNoCollectionFilter):
		return nil, apierrors.NewValidationError(err.Error())
	case errors.Is(err, domain.ErrMetadataNotFound):
		return nil, apierrors.FromDomain(err, "Collection metadata not found")
	default:
		logger.WarnCtx(ctx, "Failed to build royalty breakdown", zap.Error(err))
		return nil, apierrors.FromDomain(err, "Failed to build royalty breakdown")
	}
}

func withConfig(in reconcile.Input, configs map[string]domain.RoyaltyConfig) reconcile.Input {
	cfg, ok := configs[in.Mint]
	if !ok {
		in.Err = fmt.Errorf("%w: %s", domain.ErrMetadataNotFound, in.Mint)
		return in
	}
	in.Config = &cfg
	return in
}

func failedInputs(mints []string, err error) []reconcile.Input {
	inputs := make([]reconcile.Input, len(mints))
	for i, mint := range mints {
		inputs[i] = reconcile.Input{Mint: mint, Err: err}
	}
	return inputs
}

func chunk(mints []string, size int) [][]string {
	if size <= 0 {
		size = len(mints)
	}
	var out [][]string
	for start := 0; start < len(mints); start += size {
		out = append(out, mints[start:min(start+size, len(mints))])
	}
	return out
}
