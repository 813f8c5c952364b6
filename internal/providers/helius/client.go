package helius

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/royaltyguard/royalty-checker/internal/adapter"
	"github.com/royaltyguard/royalty-checker/internal/config"
	"github.com/royaltyguard/royalty-checker/internal/domain"
	"github.com/royaltyguard/royalty-checker/internal/logger"
	"github.com/royaltyguard/royalty-checker/internal/ratelimit"
)

const (
	// MAX_EVENT_PAGES bounds how many paginationToken hops a single events query follows
	MAX_EVENT_PAGES = 20
	// MAX_TRANSACTION_PAGES bounds how far back address history is walked
	MAX_TRANSACTION_PAGES = 20
	// EVENTS_PAGE_LIMIT is the page size requested from /v1/nft-events
	EVENTS_PAGE_LIMIT = 100
)

var ErrNoAPIKey = errors.New("no helius API key provided")

// EventQuery selects marketplace events. Zero values leave a filter unset.
type EventQuery struct {
	Accounts                    []string
	Types                       []domain.EventType
	StartTime                   int64 // unix seconds
	EndTime                     int64 // unix seconds
	VerifiedCollectionAddresses []string
	FirstVerifiedCreators       []string
}

// Client is the sales/events and metadata data source
//
//go:generate mockgen -source=client.go -destination=../../mocks/helius_client.go -package=mocks -mock_names=Client=MockHeliusClient
type Client interface {
	// FetchEvents returns every event matching query, following pagination tokens
	FetchEvents(ctx context.Context, query EventQuery) ([]domain.MarketEvent, error)

	// FetchMetadata returns the royalty config of each mint that has on-chain metadata.
	// Mints without metadata are absent from the result.
	FetchMetadata(ctx context.Context, mints []string) (map[string]domain.RoyaltyConfig, error)

	// FetchLatestSale returns the most recent sale of mint, or nil if it never sold
	FetchLatestSale(ctx context.Context, mint string) (*domain.SaleEvent, error)

	// FetchTransactionsSince returns the address's transactions with timestamp >= since, newest first
	FetchTransactionsSince(ctx context.Context, address string, since int64) ([]domain.MarketEvent, error)
}

// HeliusClient implements Client against the Helius REST API
type HeliusClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	json           adapter.JSON
}

// NewClient creates a new Helius client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, apiKey string, json adapter.JSON) Client {
	return &HeliusClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		apiKey:         apiKey,
		json:           json,
	}
}

func (c *HeliusClient) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api-key", c.apiKey)
	return fmt.Sprintf("%s%s?%s", c.apiURL, path, params.Encode())
}

func (c *HeliusClient) post(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	payload, err := c.json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, config.HELIUS_PROVIDER, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.PostJSON(ctx, endpoint, nil, payload)
	})
	if err != nil {
		return fmt.Errorf("failed to call Helius API: %w", err)
	}

	if err := c.json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal Helius response: %w", err)
	}
	return nil
}

func (c *HeliusClient) get(ctx context.Context, endpoint string, out interface{}) error {
	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, config.HELIUS_PROVIDER, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, endpoint, nil)
	})
	if err != nil {
		return fmt.Errorf("failed to call Helius API: %w", err)
	}

	if err := c.json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal Helius response: %w", err)
	}
	return nil
}

// FetchEvents returns every event matching query
func (c *HeliusClient) FetchEvents(ctx context.Context, query EventQuery) ([]domain.MarketEvent, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	req := eventsRequest{
		Query: eventsQuery{
			Accounts:  query.Accounts,
			StartTime: query.StartTime,
			EndTime:   query.EndTime,
		},
		Options: &eventsOptions{Limit: EVENTS_PAGE_LIMIT},
	}
	for _, t := range query.Types {
		req.Query.Types = append(req.Query.Types, string(t))
	}
	if len(query.VerifiedCollectionAddresses) > 0 || len(query.FirstVerifiedCreators) > 0 {
		req.Query.NFTCollectionFilters = &collectionFilters{
			VerifiedCollectionAddress: query.VerifiedCollectionAddresses,
			FirstVerifiedCreator:      query.FirstVerifiedCreators,
		}
	}

	endpoint := c.endpoint("/v1/nft-events", nil)

	var events []domain.MarketEvent
	for page := 0; page < MAX_EVENT_PAGES; page++ {
		var resp nftEventsResponse
		if err := c.post(ctx, endpoint, req, &resp); err != nil {
			return nil, err
		}
		for _, e := range resp.Result {
			events = append(events, e.toDomain())
		}

		if resp.PaginationToken == "" || len(resp.Result) == 0 {
			return events, nil
		}
		req.Options.PaginationToken = resp.PaginationToken
	}

	logger.WarnCtx(ctx, "Event pagination truncated",
		zap.Int("pages", MAX_EVENT_PAGES),
		zap.Int("events", len(events)),
	)
	return events, nil
}

// FetchMetadata returns royalty configs keyed by mint
func (c *HeliusClient) FetchMetadata(ctx context.Context, mints []string) (map[string]domain.RoyaltyConfig, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if len(mints) == 0 {
		return map[string]domain.RoyaltyConfig{}, nil
	}

	var resp []tokenMetadata
	req := metadataRequest{MintAccounts: mints, IncludeOffChainData: false}
	if err := c.post(ctx, c.endpoint("/v0/token-metadata", nil), req, &resp); err != nil {
		return nil, err
	}

	configs := make(map[string]domain.RoyaltyConfig, len(resp))
	for _, m := range resp {
		if m.OnChainMetadata == nil || m.OnChainMetadata.Metadata == nil {
			logger.DebugCtx(ctx, "No on-chain metadata", zap.String("mint", m.Account))
			continue
		}
		cfg := m.OnChainMetadata.Metadata.toDomain()
		if cfg.Mint == "" {
			cfg.Mint = m.Account
		}
		configs[cfg.Mint] = cfg
	}
	return configs, nil
}

// FetchLatestSale returns the newest NFT_SALE transaction of mint
func (c *HeliusClient) FetchLatestSale(ctx context.Context, mint string) (*domain.SaleEvent, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	params := url.Values{}
	params.Set("type", string(domain.EventTypeSale))
	params.Set("limit", "1")

	var txs []enhancedTransaction
	if err := c.get(ctx, c.endpoint("/v0/addresses/"+url.PathEscape(mint)+"/transactions", params), &txs); err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, nil
	}

	e := txs[0].toDomain()
	return domain.SaleFromEvent(mint, &e), nil
}

// FetchTransactionsSince walks the address history backwards until since
func (c *HeliusClient) FetchTransactionsSince(ctx context.Context, address string, since int64) ([]domain.MarketEvent, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	var out []domain.MarketEvent
	before := ""
	for page := 0; page < MAX_TRANSACTION_PAGES; page++ {
		params := url.Values{}
		if before != "" {
			params.Set("before", before)
		}

		var txs []enhancedTransaction
		if err := c.get(ctx, c.endpoint("/v0/addresses/"+url.PathEscape(address)+"/transactions", params), &txs); err != nil {
			return nil, err
		}
		if len(txs) == 0 {
			return out, nil
		}

		for _, tx := range txs {
			if tx.Timestamp < since {
				return out, nil
			}
			out = append(out, tx.toDomain())
		}
		before = txs[len(txs)-1].Signature
	}

	logger.WarnCtx(ctx, "Transaction history truncated",
		zap.String("address", address),
		zap.Int("pages", MAX_TRANSACTION_PAGES),
	)
	return out, nil
}
