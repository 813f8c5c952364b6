package royaltystate

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// NftStateDiscriminator prefixes every NftState account written by the repayment program
var NftStateDiscriminator = accountDiscriminator("NftState")

// NftState is the per-mint account the repayment program writes when royalties are repaid
type NftState struct {
	Discriminator  [8]byte
	Mint           solana.PublicKey
	RepayTimestamp int64 // unix seconds
	Bump           uint8
}

func accountDiscriminator(name string) [8]byte {
	var d [8]byte
	sum := sha256.Sum256([]byte("account:" + name))
	copy(d[:], sum[:8])
	return d
}

// DecodeNftState decodes Borsh account data and checks the discriminator
func DecodeNftState(data []byte) (*NftState, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("nft state account too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:8], NftStateDiscriminator[:]) {
		return nil, fmt.Errorf("unexpected account discriminator %x", data[:8])
	}

	var state NftState
	if err := bin.NewBorshDecoder(data).Decode(&state); err != nil {
		return nil, fmt.Errorf("failed to decode nft state: %w", err)
	}
	return &state, nil
}

// EncodeNftState serializes state with the NftState discriminator
func EncodeNftState(state NftState) ([]byte, error) {
	state.Discriminator = NftStateDiscriminator

	var buf bytes.Buffer
	if err := bin.NewBorshEncoder(&buf).Encode(&state); err != nil {
		return nil, fmt.Errorf("failed to encode nft state: %w", err)
	}
	return buf.Bytes(), nil
}
