// Package route encodes payment requests into the shareable send-target
// route and decodes them back. The route layout is shared with the send flow
// and must not change.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/AlexZinkM/receive-wallet/internal/model"
)

// SendTarget is the route the send flow opens a payment request on
const SendTarget = "/token/send/:accountIndex/:tokenType/:target"

// Route parameter names
const (
	ParamAccountIndex = "accountIndex"
	ParamTokenType    = "tokenType"
	ParamTarget       = "target"
)

var (
	// ErrConfigNotFound is returned when the chain of a request has no configuration
	ErrConfigNotFound = errors.New("chain config not found")
	// ErrMalformedRoute is returned for strings that are not a send-target route
	ErrMalformedRoute = errors.New("malformed payment request route")
)

// ChainLookup resolves the configuration of a chain
type ChainLookup interface {
	Get(chainID string) (model.ChainConfig, error)
}

// Format substitutes every ":name" segment of template with the
// path-escaped value of params[name]
func Format(template string, params map[string]string) (string, error) {
	segments := strings.Split(template, "/")
	for i, seg := range segments {
		name, ok := strings.CutPrefix(seg, ":")
		if !ok {
			continue
		}
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("missing route parameter %q", name)
		}
		segments[i] = url.PathEscape(value)
	}
	return strings.Join(segments, "/"), nil
}

// Match is the inverse of Format. path must be escaped the way Format escapes it.
func Match(template, path string) (map[string]string, error) {
	want := strings.Split(template, "/")
	got := strings.Split(path, "/")
	if len(want) != len(got) {
		return nil, fmt.Errorf("%w: expected %d segments, got %d", ErrMalformedRoute, len(want), len(got))
	}

	params := make(map[string]string)
	for i, seg := range want {
		name, ok := strings.CutPrefix(seg, ":")
		if !ok {
			if got[i] != seg {
				return nil, fmt.Errorf("%w: unexpected segment %q", ErrMalformedRoute, got[i])
			}
			continue
		}
		value, err := url.PathUnescape(got[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedRoute, name, err)
		}
		params[name] = value
	}
	return params, nil
}

// BuildRoute encodes a payment request for the chain described by cfg
func BuildRoute(cfg model.ChainConfig, tokenType, target string) string {
	// All template parameters are supplied, Format cannot fail here
	r, _ := Format(SendTarget, map[string]string{
		ParamAccountIndex: cfg.AccountIndex,
		ParamTokenType:    tokenType,
		ParamTarget:       target,
	})
	return r
}

// Build returns the full shareable link "{protocol}//{host}{route}".
// Without an origin host the bare route is returned.
func Build(cfg model.ChainConfig, tokenType, target string, origin model.Origin) string {
	return origin.String() + BuildRoute(cfg, tokenType, target)
}

// Parse decodes a link or a bare route produced by Build
func Parse(link string) (model.PaymentRequest, error) {
	u, err := url.Parse(link)
	if err != nil {
		return model.PaymentRequest{}, fmt.Errorf("%w: %v", ErrMalformedRoute, err)
	}
	if u.Opaque != "" || u.RawQuery != "" || u.ForceQuery || u.Fragment != "" || u.User != nil {
		return model.PaymentRequest{}, fmt.Errorf("%w: unexpected URL components", ErrMalformedRoute)
	}
	if u.Scheme != "" && u.Host == "" {
		return model.PaymentRequest{}, fmt.Errorf("%w: missing host", ErrMalformedRoute)
	}

	params, err := Match(SendTarget, u.EscapedPath())
	if err != nil {
		return model.PaymentRequest{}, err
	}

	return model.PaymentRequest{
		AccountIndex: params[ParamAccountIndex],
		TokenType:    params[ParamTokenType],
		Target:       params[ParamTarget],
	}, nil
}

// Codec builds links for chains looked up by id
type Codec struct {
	chains ChainLookup
}

// NewCodec creates a codec resolving chain configuration through chains
func NewCodec(chains ChainLookup) *Codec {
	return &Codec{chains: chains}
}

// Build returns the shareable link of a payment request on chainID
func (c *Codec) Build(chainID, tokenType, target string, origin model.Origin) (string, error) {
	cfg, err := c.chains.Get(chainID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfigNotFound, err)
	}
	return Build(cfg, tokenType, target, origin), nil
}

// Parse decodes a link produced by Build
func (c *Codec) Parse(link string) (model.PaymentRequest, error) {
	return Parse(link)
}
