package dto

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/royaltyguard/royalty-checker/internal/api/shared/constants"
	apierrors "github.com/royaltyguard/royalty-checker/internal/api/shared/errors"
)

// CheckNftsRequest represents the request body of the royalty payment check endpoints
type CheckNftsRequest struct {
	Mints           []string `json:"mints"`
	PaginationToken string   `json:"paginationToken,omitempty"`
}

// Validate validates the request body
func (r *CheckNftsRequest) Validate() error {
	return validateMints(r.Mints)
}

// CheckUnlistedRequest represents the request body of the delisting check endpoints
type CheckUnlistedRequest struct {
	Mints           []string `json:"mints"`
	UnlistedValue   *float64 `json:"unlistedValue"` // days
	PaginationToken string   `json:"paginationToken,omitempty"`
}

// Validate validates the request body
func (r *CheckUnlistedRequest) Validate() error {
	if err := validateMints(r.Mints); err != nil {
		return err
	}
	if r.UnlistedValue != nil && (*r.UnlistedValue < 0 || *r.UnlistedValue > constants.MAX_UNLISTED_DAYS) {
		return apierrors.NewValidationError(fmt.Sprintf("unlistedValue must be between 0 and %d days", constants.MAX_UNLISTED_DAYS))
	}
	return nil
}

// Days returns the unlisted threshold, defaulting when unset
func (r *CheckUnlistedRequest) Days() float64 {
	if r.UnlistedValue == nil {
		return constants.DEFAULT_UNLISTED_VALUE_DAYS
	}
	return *r.UnlistedValue
}

// RoyaltyBreakdownRequest represents the request body of the royalty breakdown endpoint
type RoyaltyBreakdownRequest struct {
	CollectionVerifiedAddresses []string `json:"collectionVerifiedAddresses,omitempty"`
	CollectionVerifiedCreators  []string `json:"collectionVerifiedCreators,omitempty"`
}

// Validate validates the request body
func (r *RoyaltyBreakdownRequest) Validate() error {
	if len(r.CollectionVerifiedAddresses) == 0 && len(r.CollectionVerifiedCreators) == 0 {
		return apierrors.NewValidationError("collectionVerifiedAddresses or collectionVerifiedCreators is required")
	}
	if len(r.CollectionVerifiedAddresses)+len(r.CollectionVerifiedCreators) > constants.MAX_COLLECTION_FILTERS {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d collection filters allowed", constants.MAX_COLLECTION_FILTERS))
	}
	for _, addr := range append(append([]string{}, r.CollectionVerifiedAddresses...), r.CollectionVerifiedCreators...) {
		if _, err := solana.PublicKeyFromBase58(addr); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("invalid address: %s", addr))
		}
	}
	return nil
}

func validateMints(mints []string) error {
	if len(mints) == 0 {
		return apierrors.NewValidationError("mints is required")
	}
	if len(mints) > constants.MAX_MINTS_PER_REQUEST {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d mints allowed", constants.MAX_MINTS_PER_REQUEST))
	}
	for _, mint := range mints {
		if _, err := solana.PublicKeyFromBase58(mint); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("invalid mint: %s", mint))
		}
	}
	return nil
}
