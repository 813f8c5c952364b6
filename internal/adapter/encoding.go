package adapter

import "encoding/base64"

// Base64 defines an interface for the URL-safe base64 codec used by opaque cursors
//
//go:generate mockgen -source=encoding.go -destination=../mocks/encoding.go -package=mocks -mock_names=Base64=MockBase64
type Base64 interface {
	Encode(data []byte) string
	Decode(data string) ([]byte, error)
}

type RealBase64 struct{}

func NewBase64() Base64 {
	return &RealBase64{}
}

// Encode uses unpadded URL encoding so tokens survive query strings untouched
func (b *RealBase64) Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func (b *RealBase64) Decode(data string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(data)
}
