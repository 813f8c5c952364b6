package domain

import "errors"

var (
	// ErrZeroShare is returned when a payment is normalized against a zero share
	ErrZeroShare = errors.New("receiver share percent must be nonzero")

	// ErrInvalidRoyaltyConfig is returned when on-chain royalty data is out of range
	ErrInvalidRoyaltyConfig = errors.New("invalid royalty config")

	// ErrInvalidMint is returned when a mint is not a valid base58 public key
	ErrInvalidMint = errors.New("invalid mint address")

	// ErrMetadataNotFound is returned when the metadata source has no entry for a mint
	ErrMetadataNotFound = errors.New("no metadata found")

	// ErrInvalidPaginationToken is returned when a cursor cannot be decoded or resumed
	ErrInvalidPaginationToken = errors.New("invalid pagination token")
)
