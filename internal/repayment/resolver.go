package repayment

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/royaltyguard/royalty-checker/internal/domain"
	"github.com/royaltyguard/royalty-checker/internal/logger"
	"github.com/royaltyguard/royalty-checker/internal/providers/royaltystate"
)

// Resolution is the outcome of a repayment lookup
type Resolution struct {
	Paid           bool
	RepayTimestamp *int64 // set only when Paid
}

// Resolver decides whether a sale's royalties were settled through the repayment tool
//
//go:generate mockgen -source=resolver.go -destination=../mocks/repayment_resolver.go -package=mocks -mock_names=Resolver=MockRepaymentResolver
type Resolver interface {
	// Resolve never fails; lookup problems resolve to unpaid
	Resolve(ctx context.Context, mint string, saleTimestamp int64) Resolution
}

// DeriveStateAddress derives the NftState address for mint under programID
func DeriveStateAddress(programID solana.PublicKey, mint string) (solana.PublicKey, error) {
	mintKey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %s", domain.ErrInvalidMint, mint)
	}
	addr, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(domain.NFT_STATE_SEED), mintKey.Bytes()},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive nft state address: %w", err)
	}
	return addr, nil
}

type resolver struct {
	client    royaltystate.Client
	programID solana.PublicKey
}

// NewResolver creates a Resolver backed by the on-chain royalty state
func NewResolver(client royaltystate.Client, programID solana.PublicKey) Resolver {
	return &resolver{
		client:    client,
		programID: programID,
	}
}

func (r *resolver) Resolve(ctx context.Context, mint string, saleTimestamp int64) Resolution {
	addr, err := DeriveStateAddress(r.programID, mint)
	if err != nil {
		logger.WarnCtx(ctx, "Cannot derive repayment address", zap.String("mint", mint), zap.Error(err))
		return Resolution{}
	}

	record, err := r.client.GetRepaymentRecord(ctx, addr)
	if err != nil {
		logger.WarnCtx(ctx, "Repayment record lookup failed",
			zap.String("mint", mint),
			zap.String("address", addr.String()),
			zap.Error(err),
		)
		return Resolution{}
	}
	if record == nil {
		logger.DebugCtx(ctx, "No repayment record", zap.String("mint", mint))
		return Resolution{}
	}

	if record.RepayTimestamp < saleTimestamp {
		logger.DebugCtx(ctx, "Repayment predates latest sale",
			zap.String("mint", mint),
			zap.Int64("repay_timestamp", record.RepayTimestamp),
			zap.Int64("sale_timestamp", saleTimestamp),
		)
		return Resolution{}
	}

	ts := record.RepayTimestamp
	return Resolution{Paid: true, RepayTimestamp: &ts}
}
