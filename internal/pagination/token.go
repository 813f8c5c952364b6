package pagination

import (
	"fmt"

	"github.com/royaltyguard/royalty-checker/internal/adapter"
	"github.com/royaltyguard/royalty-checker/internal/domain"
)

// Token is the resume position of a paginated classification: the last classified
// mint and its index in the original request array
type Token struct {
	Mint  string `json:"mint"`
	Index int    `json:"index"`
}

// Page is the slice of request mints to classify in one call
type Page struct {
	Mints  []string
	Offset int // absolute index of Mints[0] in the request
}

// Codec encodes and decodes opaque pagination tokens. Tokens are not signed.
type Codec struct {
	json   adapter.JSON
	base64 adapter.Base64
}

// NewCodec creates a token codec
func NewCodec(json adapter.JSON, base64 adapter.Base64) *Codec {
	return &Codec{json: json, base64: base64}
}

// Encode returns the opaque form of t
func (c *Codec) Encode(t Token) (string, error) {
	raw, err := c.json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("failed to encode pagination token: %w", err)
	}
	return c.base64.Encode(raw), nil
}

// Decode recovers the token encoded by Encode
func (c *Codec) Decode(s string) (Token, error) {
	raw, err := c.base64.Decode(s)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %v", domain.ErrInvalidPaginationToken, err)
	}
	var t Token
	if err := c.json.Unmarshal(raw, &t); err != nil {
		return Token{}, fmt.Errorf("%w: %v", domain.ErrInvalidPaginationToken, err)
	}
	if t.Mint == "" || t.Index < 0 {
		return Token{}, fmt.Errorf("%w: missing mint or index", domain.ErrInvalidPaginationToken)
	}
	return t, nil
}

// Paginate selects the page of mints following token (or the first page when token
// is empty). The token must point at the mint it names in the request.
func (c *Codec) Paginate(mints []string, token string, limit int) (Page, error) {
	if token == "" {
		return Page{Mints: mints[:min(limit, len(mints))], Offset: 0}, nil
	}

	t, err := c.Decode(token)
	if err != nil {
		return Page{}, err
	}
	if t.Index >= len(mints) || mints[t.Index] != t.Mint {
		return Page{}, fmt.Errorf("%w: token does not match request mints", domain.ErrInvalidPaginationToken)
	}

	start := t.Index + 1
	end := min(start+limit, len(mints))
	return Page{Mints: mints[start:end], Offset: start}, nil
}

// Next returns the token continuing after page, or nil when the request is exhausted
// or the page came back short
func (c *Codec) Next(page Page, classified []string, limit int, total int) (*string, error) {
	if len(classified) == 0 || len(classified) < limit {
		return nil, nil
	}
	lastIndex := page.Offset + len(classified) - 1
	if lastIndex >= total-1 {
		return nil, nil
	}
	s, err := c.Encode(Token{Mint: classified[len(classified)-1], Index: lastIndex})
	if err != nil {
		return nil, err
	}
	return &s, nil
}
