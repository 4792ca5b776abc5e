package account

import (
	"github.com/AlexZinkM/receive-wallet/internal/model"

	"go.uber.org/zap"
)

// ResolveAddress returns the address funds should be sent to for acc:
// the transparent address of a transparent account, the payment address of
// a shielded one. ok is false when the account carries no address.
func ResolveAddress(acc model.Account) (address string, ok bool) {
	switch key := acc.Key.(type) {
	case model.TransparentKey:
		address = key.Address
	case model.ShieldedKeys:
		address = key.PaymentAddress
	}
	return address, address != ""
}

// Resolver resolves receive addresses and reports malformed accounts
type Resolver struct {
	log *zap.Logger
}

// NewResolver creates a resolver logging to log (nil disables logging)
func NewResolver(log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{log: log}
}

// Resolve returns the receive address of acc, or "" for a malformed account
func (r *Resolver) Resolve(acc model.Account) string {
	address, ok := ResolveAddress(acc)
	if !ok {
		r.log.Warn("account has no receive address",
			zap.String("account_id", acc.ID),
			zap.Stringer("privacy_mode", acc.PrivacyMode()),
		)
	}
	return address
}
