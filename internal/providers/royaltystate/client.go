package royaltystate

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/royaltyguard/royalty-checker/internal/adapter"
	"github.com/royaltyguard/royalty-checker/internal/config"
	"github.com/royaltyguard/royalty-checker/internal/domain"
	"github.com/royaltyguard/royalty-checker/internal/logger"
	"github.com/royaltyguard/royalty-checker/internal/ratelimit"
)

// Client reads repayment records written by the royalty repayment program
//
//go:generate mockgen -source=client.go -destination=../../mocks/royaltystate_client.go -package=mocks -mock_names=Client=MockRoyaltyStateClient
type Client interface {
	// GetRepaymentRecord fetches the NftState account at address.
	// Returns nil, nil when the account does not exist.
	GetRepaymentRecord(ctx context.Context, address solana.PublicKey) (*domain.RepaymentRecord, error)
}

type client struct {
	rpc       adapter.SolanaClient
	proxy     ratelimit.Proxy
	programID solana.PublicKey
}

// NewClient creates a repayment record client; requests go through the solana-rpc limit
func NewClient(rpc adapter.SolanaClient, proxy ratelimit.Proxy, programID solana.PublicKey) Client {
	return &client{
		rpc:       rpc,
		proxy:     proxy,
		programID: programID,
	}
}

func (c *client) GetRepaymentRecord(ctx context.Context, address solana.PublicKey) (*domain.RepaymentRecord, error) {
	info, err := ratelimit.Request(ctx, c.proxy, config.SOLANA_RPC_PROVIDER, func(ctx context.Context) (*adapter.AccountInfo, error) {
		info, err := c.rpc.GetAccountInfo(ctx, address)
		if errors.Is(err, adapter.ErrAccountNotFound) {
			return nil, nil
		}
		return info, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nft state %s: %w", address, err)
	}
	if info == nil {
		logger.DebugCtx(ctx, "No nft state account", zap.String("address", address.String()))
		return nil, nil
	}

	if !info.Owner.Equals(c.programID) {
		return nil, fmt.Errorf("nft state %s owned by %s, expected %s", address, info.Owner, c.programID)
	}

	state, err := DecodeNftState(info.Data)
	if err != nil {
		return nil, err
	}

	return &domain.RepaymentRecord{
		Address:        address.String(),
		Mint:           state.Mint.String(),
		RepayTimestamp: state.RepayTimestamp,
	}, nil
}
