package receive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/receive-wallet/internal/chain"
	"github.com/AlexZinkM/receive-wallet/internal/route"
)

func TestDecodeSendTarget(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)

	tests := []struct {
		name       string
		chainID    string
		link       string
		wantValid  bool
		wantReason string
	}{
		{
			name:      "valid transparent",
			chainID:   "testnet",
			link:      "https://wallet.example/token/send/0/NAM/" + testnetAddress,
			wantValid: true,
		},
		{
			name:      "valid shielded bare route",
			chainID:   "testnet",
			link:      "/token/send/0/NAM/" + shieldedAddr,
			wantValid: true,
		},
		{
			name:      "no chain check",
			link:      "https://wallet.example/token/send/9/BTC/whatever",
			wantValid: true,
		},
		{
			name:       "other chain",
			chainID:    "testnet",
			link:       "https://wallet.example/token/send/7/NAM/" + testnetAddress,
			wantReason: "account index does not match chain",
		},
		{
			name:       "bad target",
			chainID:    "testnet",
			link:       "https://wallet.example/token/send/0/NAM/cosmos1qqqqqqqq",
			wantReason: "invalid address",
		},
		{
			name:       "corrupted checksum",
			chainID:    "testnet",
			link:       "https://wallet.example/token/send/0/NAM/" + testnetAddress[:len(testnetAddress)-1] + "q",
			wantReason: "invalid checksum",
		},
		{
			name:       "empty target",
			chainID:    "testnet",
			link:       "https://wallet.example/token/send/0/NAM/",
			wantReason: "address is empty",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			target, err := svc.DecodeSendTarget(tc.chainID, tc.link)
			require.NoError(t, err)
			assert.Equal(t, tc.wantValid, target.Valid)
			assert.Equal(t, tc.chainID, target.ChainID)
			if tc.wantReason != "" {
				assert.Contains(t, target.Reason, tc.wantReason)
			} else {
				assert.Empty(t, target.Reason)
			}
		})
	}
}

func TestDecodeSendTarget_Errors(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)

	_, err := svc.DecodeSendTarget("testnet", "https://wallet.example/wallet")
	require.ErrorIs(t, err, route.ErrMalformedRoute)

	_, err = svc.DecodeSendTarget("ghost", "/token/send/0/NAM/x")
	require.ErrorIs(t, err, chain.ErrUnknownChain)
}
