package receive

import (
	"context"

	"github.com/AlexZinkM/receive-wallet/internal/model"
	"github.com/AlexZinkM/receive-wallet/internal/route"

	"golang.org/x/sync/errgroup"
)

// Links builds the receive link of every account of chainID.
// Links are returned in account picker order.
func (s *Service) Links(ctx context.Context, chainID string, origin model.Origin) ([]model.ReceiveLink, error) {
	cfg, err := s.chains.Get(chainID)
	if err != nil {
		return nil, err
	}

	accounts := s.book.Registry(chainID).Accounts()
	links := make([]model.ReceiveLink, len(accounts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, acc := range accounts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			address := s.resolver.Resolve(acc)
			links[i] = model.ReceiveLink{
				AccountID: acc.ID,
				Address:   address,
				Link:      route.Build(cfg, acc.TokenType, address, origin),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return links, nil
}
