package royaltystate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royaltyguard/royalty-checker/internal/adapter"
	"github.com/royaltyguard/royalty-checker/internal/mocks"
	"github.com/royaltyguard/royalty-checker/internal/providers/royaltystate"
)

var (
	programID = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	mint      = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	stateAddr = solana.MustPublicKeyFromBase58("SysvarRent111111111111111111111111111111111")
)

func encodedState(t *testing.T, repayTimestamp int64) []byte {
	data, err := royaltystate.EncodeNftState(royaltystate.NftState{
		Mint:           mint,
		RepayTimestamp: repayTimestamp,
		Bump:           254,
	})
	require.NoError(t, err)
	return data
}

func TestNftState_RoundTrip(t *testing.T) {
	data := encodedState(t, 1700000000)
	assert.Len(t, data, 8+32+8+1)

	state, err := royaltystate.DecodeNftState(data)
	require.NoError(t, err)
	assert.Equal(t, mint, state.Mint)
	assert.Equal(t, int64(1700000000), state.RepayTimestamp)
	assert.Equal(t, uint8(254), state.Bump)
}

func TestDecodeNftState_Invalid(t *testing.T) {
	_, err := royaltystate.DecodeNftState([]byte{1, 2, 3})
	assert.ErrorContains(t, err, "too short")

	data := encodedState(t, 1)
	data[0] ^= 0xff
	_, err = royaltystate.DecodeNftState(data)
	assert.ErrorContains(t, err, "unexpected account discriminator")
}

func TestClient_GetRepaymentRecord(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*mocks.MockSolanaClient)
		expectedErr string
		expected    *int64
	}{
		{
			name: "record exists",
			setupMock: func(m *mocks.MockSolanaClient) {
				m.EXPECT().
					GetAccountInfo(gomock.Any(), stateAddr).
					Return(&adapter.AccountInfo{Owner: programID, Data: encodedState(t, 1700000500)}, nil)
			},
			expected: func() *int64 { v := int64(1700000500); return &v }(),
		},
		{
			name: "account not found",
			setupMock: func(m *mocks.MockSolanaClient) {
				m.EXPECT().
					GetAccountInfo(gomock.Any(), stateAddr).
					Return(nil, adapter.ErrAccountNotFound)
			},
		},
		{
			name: "rpc failure",
			setupMock: func(m *mocks.MockSolanaClient) {
				m.EXPECT().
					GetAccountInfo(gomock.Any(), stateAddr).
					Return(nil, errors.New("connection reset"))
			},
			expectedErr: "failed to fetch nft state",
		},
		{
			name: "wrong owner",
			setupMock: func(m *mocks.MockSolanaClient) {
				m.EXPECT().
					GetAccountInfo(gomock.Any(), stateAddr).
					Return(&adapter.AccountInfo{Owner: solana.SystemProgramID, Data: encodedState(t, 1)}, nil)
			},
			expectedErr: "expected " + programID.String(),
		},
		{
			name: "garbage data",
			setupMock: func(m *mocks.MockSolanaClient) {
				m.EXPECT().
					GetAccountInfo(gomock.Any(), stateAddr).
					Return(&adapter.AccountInfo{Owner: programID, Data: make([]byte, 49)}, nil)
			},
			expectedErr: "unexpected account discriminator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rpc := mocks.NewMockSolanaClient(ctrl)
			tt.setupMock(rpc)

			client := royaltystate.NewClient(rpc, nil, programID)
			record, err := client.GetRepaymentRecord(context.Background(), stateAddr)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, record)
				return
			}
			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, record)
				return
			}
			require.NotNil(t, record)
			assert.Equal(t, *tt.expected, record.RepayTimestamp)
			assert.Equal(t, mint.String(), record.Mint)
			assert.Equal(t, stateAddr.String(), record.Address)
		})
	}
}
