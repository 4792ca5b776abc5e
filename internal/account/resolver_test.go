package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/AlexZinkM/receive-wallet/internal/model"
)

func TestResolveAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		account model.Account
		want    string
		wantOK  bool
	}{
		{
			name:    "transparent",
			account: model.Account{ID: "a1", Key: model.TransparentKey{Address: "t1"}},
			want:    "t1",
			wantOK:  true,
		},
		{
			name:    "shielded",
			account: model.Account{ID: "a2", Key: model.ShieldedKeys{PaymentAddress: "s1"}},
			want:    "s1",
			wantOK:  true,
		},
		{
			name:    "no key",
			account: model.Account{ID: "a3"},
		},
		{
			name:    "empty transparent address",
			account: model.Account{ID: "a4", Key: model.TransparentKey{}},
		},
		{
			name:    "empty payment address",
			account: model.Account{ID: "a5", Key: model.ShieldedKeys{}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ResolveAddress(tc.account)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestResolver_LogsMalformedAccount(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	r := NewResolver(zap.New(core))

	assert.Empty(t, r.Resolve(model.Account{ID: "broken"}))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "account has no receive address", entries[0].Message)
	assert.Equal(t, "broken", entries[0].ContextMap()["account_id"])
}

func TestResolver_WellFormedDoesNotLog(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	r := NewResolver(zap.New(core))

	assert.Equal(t, "tnam1q", r.Resolve(transparent("a1", "tnam1q")))
	assert.Equal(t, "znam1q", r.Resolve(shielded("s1", "znam1q")))
	assert.Zero(t, logs.Len())
}

func TestNewResolver_NilLogger(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil)
	assert.NotPanics(t, func() {
		assert.Empty(t, r.Resolve(model.Account{}))
	})
}
