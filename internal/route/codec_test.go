package route

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/receive-wallet/internal/chain"
	"github.com/AlexZinkM/receive-wallet/internal/model"
)

var (
	testnet = model.ChainConfig{ChainID: "testnet", AccountIndex: "0"}
	origin  = model.Origin{Protocol: "https:", Host: "wallet.example"}
)

func TestBuild_Scenario(t *testing.T) {
	t.Parallel()

	link := Build(testnet, "NAM", "tnam1q...", origin)
	assert.Equal(t, "https://wallet.example/token/send/0/NAM/tnam1q...", link)

	req, err := Parse(link)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentRequest{AccountIndex: "0", TokenType: "NAM", Target: "tnam1q..."}, req)
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	first := Build(testnet, "NAM", "znam1qxyz", origin)
	for range 10 {
		assert.Equal(t, first, Build(testnet, "NAM", "znam1qxyz", origin))
	}
}

func TestBuild_Origin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		origin model.Origin
		want   string
	}{
		{"browser protocol", model.Origin{Protocol: "http:", Host: "localhost:8080"}, "http://localhost:8080/token/send/0/NAM/t1"},
		{"protocol without colon", model.Origin{Protocol: "https", Host: "wallet.example"}, "https://wallet.example/token/send/0/NAM/t1"},
		{"no protocol", model.Origin{Host: "wallet.example"}, "https://wallet.example/token/send/0/NAM/t1"},
		{"no host", model.Origin{Protocol: "https:"}, "/token/send/0/NAM/t1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Build(testnet, "NAM", "t1", tc.origin))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		accountIndex string
		tokenType    string
		target       string
	}{
		{"0", "NAM", "tnam1qxgz0p5hzcz3kvq5pr5pplzqmvnpryn4zvckmajg"},
		{"1", "BTC", "znam1qpljmuse0g3r8yz0s4sdsf62vmzyz4rhz4lqn4rqsnmnee"},
		{"42", "", ""},
		{"0", "wrapped/ETH", "a/b"},
		{"0", "NAM", "with space?and#hash"},
		{"0", "NAM", "percent%20literal"},
		{"idx:1", "ünïcode", "tnam1ü"},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s/%s/%s", tc.accountIndex, tc.tokenType, tc.target), func(t *testing.T) {
			t.Parallel()

			cfg := model.ChainConfig{ChainID: "c", AccountIndex: tc.accountIndex}
			want := model.PaymentRequest{AccountIndex: tc.accountIndex, TokenType: tc.tokenType, Target: tc.target}

			got, err := Parse(Build(cfg, tc.tokenType, tc.target, origin))
			require.NoError(t, err)
			assert.Equal(t, want, got)

			got, err = Parse(BuildRoute(cfg, tc.tokenType, tc.target))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		link string
	}{
		{"empty", ""},
		{"wrong prefix", "https://wallet.example/token/receive/0/NAM/t1"},
		{"missing segment", "https://wallet.example/token/send/0/NAM"},
		{"extra segment", "https://wallet.example/token/send/0/NAM/t1/extra"},
		{"query string", "https://wallet.example/token/send/0/NAM/t1?amount=5"},
		{"empty query", "https://wallet.example/token/send/0/NAM/t1?"},
		{"fragment", "https://wallet.example/token/send/0/NAM/t1#x"},
		{"opaque", "namada:token/send/0/NAM/t1"},
		{"scheme without host", "https:///token/send/0/NAM/t1"},
		{"user info", "https://user@wallet.example/token/send/0/NAM/t1"},
		{"relative", "token/send/0/NAM/t1"},
		{"trailing slash", "/token/send/0/NAM/t1/"},
		{"plain address", "tnam1qxgz0p5hzcz3kvq5pr5pplzqmvnpryn4zvckmajg"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tc.link)
			require.ErrorIs(t, err, ErrMalformedRoute)
		})
	}
}

func TestParse_BadEscape(t *testing.T) {
	t.Parallel()

	_, err := Match(SendTarget, "/token/send/0/NAM/%zz")
	require.ErrorIs(t, err, ErrMalformedRoute)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	got, err := Format("/a/:x/b/:y", map[string]string{"x": "1", "y": "two words"})
	require.NoError(t, err)
	assert.Equal(t, "/a/1/b/two%20words", got)

	_, err = Format("/a/:x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	params, err := Match("/a/:x/b/:y", "/a/1/b/two%20words")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"x": "1", "y": "two words"}, params)

	_, err = Match("/a/:x", "/b/1")
	require.ErrorIs(t, err, ErrMalformedRoute)
}

func TestCodec_Build(t *testing.T) {
	t.Parallel()

	store, err := chain.NewStore([]model.ChainConfig{testnet})
	require.NoError(t, err)
	codec := NewCodec(store)

	link, err := codec.Build("testnet", "NAM", "tnam1q", origin)
	require.NoError(t, err)
	assert.Equal(t, Build(testnet, "NAM", "tnam1q", origin), link)

	req, err := codec.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "tnam1q", req.Target)
}

func TestCodec_Build_ConfigNotFound(t *testing.T) {
	t.Parallel()

	store, err := chain.NewStore(nil)
	require.NoError(t, err)

	_, err = NewCodec(store).Build("mainnet", "NAM", "tnam1q", origin)
	require.ErrorIs(t, err, ErrConfigNotFound)
	require.ErrorIs(t, err, chain.ErrUnknownChain)
}
