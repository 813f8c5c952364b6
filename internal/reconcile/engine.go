package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/royaltyguard/royalty-checker/internal/domain"
	"github.com/royaltyguard/royalty-checker/internal/logger"
	"github.com/royaltyguard/royalty-checker/internal/metrics"
	"github.com/royaltyguard/royalty-checker/internal/repayment"
	"github.com/royaltyguard/royalty-checker/internal/royalty"
)

// ErrConfigUnavailable marks an Input whose royalty config could not be loaded
var ErrConfigUnavailable = errors.New("royalty config unavailable")

// Input is everything needed to classify one mint. A nil Config or a non-nil Err
// means the royalty config failed to load; a nil Sale means the mint never sold.
type Input struct {
	Mint   string
	Config *domain.RoyaltyConfig
	Sale   *domain.SaleEvent
	Err    error
}

// Engine classifies the royalty payment of a mint's latest sale
type Engine struct {
	resolver repayment.Resolver
	policy   royalty.ReceiverPolicy
	pool     pond.Pool
}

// Option configures an Engine
type Option func(*Engine)

// WithReceiverPolicy replaces the FirstNonZeroShareReceiver default
func WithReceiverPolicy(policy royalty.ReceiverPolicy) Option {
	return func(e *Engine) {
		e.policy = policy
	}
}

// NewEngine creates an engine evaluating up to concurrency mints at a time
func NewEngine(resolver repayment.Resolver, concurrency int, opts ...Option) *Engine {
	if concurrency <= 0 {
		concurrency = 1
	}
	e := &Engine{
		resolver: resolver,
		policy:   royalty.FirstNonZeroShareReceiver,
		pool:     pond.NewPool(concurrency),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Close waits for running evaluations and stops the worker pool
func (e *Engine) Close() {
	e.pool.StopAndWait()
}

// ClassifyBatch classifies every input concurrently. The result at index i belongs to inputs[i].
func (e *Engine) ClassifyBatch(ctx context.Context, inputs []Input) []domain.PaymentClassification {
	results := make([]domain.PaymentClassification, len(inputs))
	group := e.pool.NewGroup()
	for i := range inputs {
		group.Submit(func() {
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorCtx(ctx, fmt.Errorf("panic while classifying: %v", r), zap.String("mint", inputs[i].Mint))
					results[i] = domain.ErrorClassification(inputs[i].Mint)
				}
			}()
			results[i] = e.Classify(ctx, inputs[i])
		})
	}
	if err := group.Wait(); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("classification batch failed: %w", err))
	}
	return results
}

// Classify runs the payment decision tree for one mint
func (e *Engine) Classify(ctx context.Context, in Input) domain.PaymentClassification {
	c := e.classify(ctx, in)
	metrics.Default().ObserveClassification(string(c.Status))
	logger.DebugCtx(ctx, "Classified royalty payment",
		zap.String("mint", c.Mint),
		zap.String("status", string(c.Status)),
		zap.Bool("royalties_paid", c.RoyaltiesPaid),
		zap.Float64("royalties_to_pay", c.RoyaltiesToPay),
		zap.Float64("royalties_paid_amount", c.RoyaltiesPaidAmount),
	)
	return c
}

func (e *Engine) classify(ctx context.Context, in Input) domain.PaymentClassification {
	if in.Err != nil || in.Config == nil {
		return domain.ErrorClassification(in.Mint)
	}
	if err := in.Config.Validate(); err != nil {
		logger.WarnCtx(ctx, "Invalid royalty config", zap.String("mint", in.Mint), zap.Error(err))
		return domain.ErrorClassification(in.Mint)
	}

	receiver, ok := e.policy(in.Config.Creators)
	if !ok {
		return settled(in.Mint, domain.PaymentStatusNone)
	}

	if in.Sale == nil {
		return settled(in.Mint, domain.PaymentStatusNeverSold)
	}

	owed := royalty.OwedRoyalty(in.Sale.Amount, in.Config.SellerFeeBasisPoints)
	if owed.IsZero() {
		return settled(in.Mint, domain.PaymentStatusNone)
	}

	transfer, found := royalty.FindTransferTo(in.Sale.NativeTransfers, receiver.Address)
	if !found {
		if res := e.resolver.Resolve(ctx, in.Mint, in.Sale.Timestamp); res.Paid {
			return paidWithTool(in.Mint, owed, res)
		}
		return domain.PaymentClassification{
			Mint:           in.Mint,
			RoyaltiesPaid:  false,
			RoyaltiesToPay: owed.InexactFloat64(),
			Status:         domain.PaymentStatusNone,
		}
	}

	normalized, err := royalty.NormalizeReceivedAmount(transfer.Amount, receiver.Share)
	if err != nil {
		logger.WarnCtx(ctx, "Cannot normalize royalty transfer", zap.String("mint", in.Mint), zap.Error(err))
		return domain.ErrorClassification(in.Mint)
	}

	if royalty.IsFullPayment(owed, normalized) {
		return domain.PaymentClassification{
			Mint:                in.Mint,
			RoyaltiesPaid:       true,
			RoyaltiesPaidAmount: owed.InexactFloat64(),
			Status:              domain.PaymentStatusPaidAtSale,
		}
	}

	// a repayment upgrades a partial payment only when it covers the whole sale
	if res := e.resolver.Resolve(ctx, in.Mint, in.Sale.Timestamp); res.Paid {
		return paidWithTool(in.Mint, owed, res)
	}

	return domain.PaymentClassification{
		Mint:                in.Mint,
		RoyaltiesPaid:       false,
		RoyaltiesToPay:      owed.Sub(normalized).InexactFloat64(),
		RoyaltiesPaidAmount: normalized.InexactFloat64(),
		Status:              domain.PaymentStatusPartial,
	}
}

func settled(mint string, status domain.PaymentStatus) domain.PaymentClassification {
	return domain.PaymentClassification{
		Mint:          mint,
		RoyaltiesPaid: true,
		Status:        status,
	}
}

func paidWithTool(mint string, owed decimal.Decimal, res repayment.Resolution) domain.PaymentClassification {
	return domain.PaymentClassification{
		Mint:                mint,
		RoyaltiesPaid:       true,
		RoyaltiesPaidAmount: owed.InexactFloat64(),
		Status:              domain.PaymentStatusPaidWithTool,
		RedemptionTimestamp: res.RepayTimestamp,
	}
}
