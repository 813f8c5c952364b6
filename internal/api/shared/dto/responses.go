package dto

import "github.com/royaltyguard/royalty-checker/internal/domain"

// CheckNftsPageResponse is one page of royalty payment classifications
type CheckNftsPageResponse struct {
	CheckedNfts     []domain.PaymentClassification `json:"checkedNfts"`
	PaginationToken *string                        `json:"paginationToken"`
}

// CheckUnlistedPageResponse is one page of delisting classifications
type CheckUnlistedPageResponse struct {
	CheckedNfts     []domain.UnlistedClassification `json:"checkedNfts"`
	PaginationToken *string                         `json:"paginationToken"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
