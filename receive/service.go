// Package receive implements the wallet receive screen: it picks the account
// to receive on, resolves its address and builds the shareable send link.
package receive

import (
	"fmt"

	"github.com/AlexZinkM/receive-wallet/internal/account"
	"github.com/AlexZinkM/receive-wallet/internal/chain"
	"github.com/AlexZinkM/receive-wallet/internal/model"
	"github.com/AlexZinkM/receive-wallet/internal/route"

	"go.uber.org/zap"
)

const defaultLinkWorkers = 8

// Request describes one render of the receive screen
type Request struct {
	ChainID string
	Origin  model.Origin
}

// Service builds receive responses from the chain table and the account book.
// It holds no per-user state and is safe for concurrent use.
type Service struct {
	chains   *chain.Store
	book     *account.Book
	codec    *route.Codec
	resolver *account.Resolver
	log      *zap.Logger
	workers  int
}

// NewService creates a new receive service
func NewService(chains *chain.Store, book *account.Book, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	for _, id := range book.ChainIDs() {
		if _, err := chains.Get(id); err != nil {
			log.Warn("accounts for unknown chain are ignored", zap.String("chain_id", id))
		}
	}
	return &Service{
		chains:   chains,
		book:     book,
		codec:    route.NewCodec(chains),
		resolver: account.NewResolver(log),
		log:      log,
		workers:  defaultLinkWorkers,
	}
}

// Chains returns the configured chains
func (s *Service) Chains() []model.ChainConfig {
	return s.chains.All()
}

// Accounts returns the account picker entries of chainID
func (s *Service) Accounts(chainID string) ([]model.AccountOption, error) {
	if _, err := s.chains.Get(chainID); err != nil {
		return nil, err
	}
	return s.book.Registry(chainID).Options(), nil
}

// Receive resolves the receive address and link for the account chosen by sel.
// sel is updated to the account actually shown. A chain without accounts
// yields a response with no address and no link.
func (s *Service) Receive(sel *account.Selector, req Request) (*model.ReceiveResponse, error) {
	cfg, err := s.chains.Get(req.ChainID)
	if err != nil {
		return nil, err
	}

	reg := s.book.Registry(req.ChainID)
	resp := &model.ReceiveResponse{
		ChainID:  req.ChainID,
		Accounts: reg.Options(),
	}

	id, ok := sel.EnsureSelection(reg)
	if !ok {
		s.log.Debug("no accounts available", zap.String("chain_id", req.ChainID))
		return resp, nil
	}
	acc, _ := reg.Get(id)

	address := s.resolver.Resolve(acc)
	link, err := s.codec.Build(req.ChainID, acc.TokenType, address, req.Origin)
	if err != nil {
		return nil, fmt.Errorf("failed to build receive link: %w", err)
	}

	resp.SelectedAccountID = id
	resp.Address = address
	resp.Link = link
	resp.Request = &model.PaymentRequest{
		AccountIndex: cfg.AccountIndex,
		TokenType:    acc.TokenType,
		Target:       address,
	}
	return resp, nil
}
