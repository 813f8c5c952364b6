package adapter

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// ErrAccountNotFound is returned when the requested account does not exist on chain
var ErrAccountNotFound = errors.New("account not found")

// AccountInfo is the subset of an on-chain account the checker reads
type AccountInfo struct {
	Owner    solana.PublicKey
	Lamports uint64
	Data     []byte
}

// SolanaClient defines an interface for Solana JSON-RPC operations to enable mocking
//
//go:generate mockgen -source=solana.go -destination=../mocks/solana.go -package=mocks -mock_names=SolanaClient=MockSolanaClient
type SolanaClient interface {
	// GetAccountInfo fetches an account with base64 encoded data.
	// Returns ErrAccountNotFound if the account does not exist.
	GetAccountInfo(ctx context.Context, account solana.PublicKey) (*AccountInfo, error)

	// Close releases the underlying RPC transport
	Close() error
}

// RealSolanaClient implements SolanaClient on top of solana-go's rpc client
type RealSolanaClient struct {
	client *rpc.Client
}

// NewSolanaClient creates a JSON-RPC client for the given endpoint
func NewSolanaClient(rpcURL string) SolanaClient {
	return &RealSolanaClient{
		client: rpc.New(rpcURL),
	}
}

func (c *RealSolanaClient) GetAccountInfo(ctx context.Context, account solana.PublicKey) (*AccountInfo, error) {
	out, err := c.client.GetAccountInfo(ctx, account)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if out == nil || out.Value == nil {
		return nil, ErrAccountNotFound
	}

	info := &AccountInfo{
		Owner:    out.Value.Owner,
		Lamports: out.Value.Lamports,
	}
	if out.Value.Data != nil {
		info.Data = out.Value.Data.GetBinary()
	}
	return info, nil
}

func (c *RealSolanaClient) Close() error {
	return c.client.Close()
}
