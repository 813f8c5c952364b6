package helius

import "github.com/royaltyguard/royalty-checker/internal/domain"

type nftRef struct {
	Mint          string `json:"mint"`
	TokenStandard string `json:"tokenStandard"`
}

type nativeTransfer struct {
	FromUserAccount string `json:"fromUserAccount"`
	ToUserAccount   string `json:"toUserAccount"`
	Amount          int64  `json:"amount"`
}

// nftEvent is a record of the /v1/nft-events endpoint
type nftEvent struct {
	Description     string           `json:"description"`
	Type            string           `json:"type"`
	Source          string           `json:"source"`
	Amount          int64            `json:"amount"`
	Fee             int64            `json:"fee"`
	Signature       string           `json:"signature"`
	Slot            uint64           `json:"slot"`
	Timestamp       int64            `json:"timestamp"`
	SaleType        string           `json:"saleType"`
	Buyer           string           `json:"buyer"`
	Seller          string           `json:"seller"`
	NFTs            []nftRef         `json:"nfts"`
	NativeTransfers []nativeTransfer `json:"nativeTransfers"`
}

type nftEventsResponse struct {
	Result          []nftEvent `json:"result"`
	PaginationToken string     `json:"paginationToken"`
}

type collectionFilters struct {
	VerifiedCollectionAddress []string `json:"verifiedCollectionAddress,omitempty"`
	FirstVerifiedCreator      []string `json:"firstVerifiedCreator,omitempty"`
}

type eventsQuery struct {
	Accounts             []string           `json:"accounts,omitempty"`
	Types                []string           `json:"types,omitempty"`
	StartTime            int64              `json:"startTime,omitempty"`
	EndTime              int64              `json:"endTime,omitempty"`
	NFTCollectionFilters *collectionFilters `json:"nftCollectionFilters,omitempty"`
}

type eventsOptions struct {
	Limit           int    `json:"limit,omitempty"`
	PaginationToken string `json:"paginationToken,omitempty"`
}

type eventsRequest struct {
	Query   eventsQuery    `json:"query"`
	Options *eventsOptions `json:"options,omitempty"`
}

type metadataRequest struct {
	MintAccounts        []string `json:"mintAccounts"`
	IncludeOffChainData bool     `json:"includeOffChainData"`
}

type onChainCreator struct {
	Address  string `json:"address"`
	Share    int    `json:"share"`
	Verified bool   `json:"verified"`
}

type onChainMetadata struct {
	Mint string `json:"mint"`
	Data struct {
		Name                 string           `json:"name"`
		SellerFeeBasisPoints int              `json:"sellerFeeBasisPoints"`
		Creators             []onChainCreator `json:"creators"`
	} `json:"data"`
}

type tokenMetadata struct {
	Account         string `json:"account"`
	OnChainMetadata *struct {
		Metadata *onChainMetadata `json:"metadata"`
	} `json:"onChainMetadata"`
}

// enhancedTransaction is a record of the /v0/addresses/{address}/transactions endpoint
type enhancedTransaction struct {
	Signature       string           `json:"signature"`
	Type            string           `json:"type"`
	Source          string           `json:"source"`
	Timestamp       int64            `json:"timestamp"`
	NativeTransfers []nativeTransfer `json:"nativeTransfers"`
	Events          struct {
		NFT *struct {
			Type   string   `json:"type"`
			Amount int64    `json:"amount"`
			NFTs   []nftRef `json:"nfts"`
		} `json:"nft"`
	} `json:"events"`
}

func toNativeTransfers(in []nativeTransfer) []domain.NativeTransfer {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.NativeTransfer, len(in))
	for i, t := range in {
		out[i] = domain.NativeTransfer{
			FromUserAccount: t.FromUserAccount,
			ToUserAccount:   t.ToUserAccount,
			Amount:          t.Amount,
		}
	}
	return out
}

func (e nftEvent) toDomain() domain.MarketEvent {
	mints := make([]string, 0, len(e.NFTs))
	for _, n := range e.NFTs {
		mints = append(mints, n.Mint)
	}
	return domain.MarketEvent{
		Signature:       e.Signature,
		Type:            domain.EventType(e.Type),
		Source:          e.Source,
		Timestamp:       e.Timestamp,
		Amount:          e.Amount,
		Mints:           mints,
		NativeTransfers: toNativeTransfers(e.NativeTransfers),
	}
}

func (t enhancedTransaction) toDomain() domain.MarketEvent {
	e := domain.MarketEvent{
		Signature:       t.Signature,
		Type:            domain.EventType(t.Type),
		Source:          t.Source,
		Timestamp:       t.Timestamp,
		NativeTransfers: toNativeTransfers(t.NativeTransfers),
	}
	if t.Events.NFT != nil {
		e.Amount = t.Events.NFT.Amount
		for _, n := range t.Events.NFT.NFTs {
			e.Mints = append(e.Mints, n.Mint)
		}
	}
	return e
}

func (m onChainMetadata) toDomain() domain.RoyaltyConfig {
	creators := make([]domain.Creator, len(m.Data.Creators))
	for i, c := range m.Data.Creators {
		creators[i] = domain.Creator{Address: c.Address, Share: c.Share, Verified: c.Verified}
	}
	return domain.RoyaltyConfig{
		Mint:                 m.Mint,
		SellerFeeBasisPoints: m.Data.SellerFeeBasisPoints,
		Creators:             creators,
	}
}
