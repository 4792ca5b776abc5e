package model

import "fmt"

// PrivacyMode tells whether an account receives to a plain or a shielded address
type PrivacyMode int

const (
	PrivacyTransparent PrivacyMode = iota
	PrivacyShielded
)

func (m PrivacyMode) String() string {
	if m == PrivacyShielded {
		return "Shielded"
	}
	return "Transparent"
}

// ReceiveKey is the address payload of an account. The concrete type is the
// privacy mode, so an account carries exactly one kind of receive address.
type ReceiveKey interface {
	Mode() PrivacyMode
	isReceiveKey()
}

// TransparentKey holds the plain (established) address of a derived account
type TransparentKey struct {
	Address string `json:"address"`
}

func (TransparentKey) Mode() PrivacyMode { return PrivacyTransparent }
func (TransparentKey) isReceiveKey()     {}

// ShieldedKeys is the public part of a shielded account's keys.
// Viewing and spending keys never enter the receive flow.
type ShieldedKeys struct {
	PaymentAddress string `json:"paymentAddress"`
}

func (ShieldedKeys) Mode() PrivacyMode { return PrivacyShielded }
func (ShieldedKeys) isReceiveKey()     {}

// Account represents one wallet account on a chain
type Account struct {
	ID        string
	Alias     string
	Balance   string
	TokenType string
	Key       ReceiveKey
}

// PrivacyMode returns the account privacy mode. Accounts without a key are
// reported as transparent.
func (a Account) PrivacyMode() PrivacyMode {
	if a.Key == nil {
		return PrivacyTransparent
	}
	return a.Key.Mode()
}

// IsShielded reports whether the account receives to a shielded payment address
func (a Account) IsShielded() bool {
	return a.PrivacyMode() == PrivacyShielded
}

// Label is the text shown for the account in the account picker
func (a Account) Label() string {
	return fmt.Sprintf("%s (%s %s) - %s", a.Alias, a.Balance, a.TokenType, a.PrivacyMode())
}

// AccountOption is one entry of the account picker
type AccountOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
