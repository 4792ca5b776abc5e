package receive

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/receive-wallet/internal/common"
	"github.com/AlexZinkM/receive-wallet/internal/model"
)

// ErrChainMismatch is reported when a link was built for another chain
var ErrChainMismatch = errors.New("account index does not match chain")

// DecodeSendTarget decodes a receive link the way the send flow does.
// When chainID is set the request is checked against that chain: the account
// index must match and the target must be a valid address of the chain.
// Check failures are reported through Valid and Reason, not as errors.
func (s *Service) DecodeSendTarget(chainID, link string) (*model.SendTarget, error) {
	req, err := s.codec.Parse(link)
	if err != nil {
		return nil, err
	}

	target := &model.SendTarget{
		ChainID: chainID,
		Request: req,
		Valid:   true,
	}
	if chainID == "" {
		return target, nil
	}

	cfg, err := s.chains.Get(chainID)
	if err != nil {
		return nil, err
	}

	if cfg.AccountIndex != req.AccountIndex {
		target.Valid = false
		target.Reason = fmt.Sprintf("%v: got %q, want %q", ErrChainMismatch, req.AccountIndex, cfg.AccountIndex)
		return target, nil
	}
	if err := common.ValidateAddress(cfg, req.Target); err != nil {
		target.Valid = false
		target.Reason = err.Error()
	}

	return target, nil
}
