package model

import (
	"fmt"
	"net/url"
	"strings"
)

// PaymentRequest is the decoded form of a shareable receive link
type PaymentRequest struct {
	AccountIndex string `json:"accountIndex"`
	TokenType    string `json:"tokenType"`
	Target       string `json:"target"`
}

// Origin is the protocol and host the receive link is served from,
// e.g. {Protocol: "https:", Host: "wallet.example"}
type Origin struct {
	Protocol string `json:"protocol"`
	Host     string `json:"host"`
}

// String returns "protocol//host", or "" when no host is set.
// Protocol is accepted with or without the trailing colon.
func (o Origin) String() string {
	if o.Host == "" {
		return ""
	}
	protocol := strings.TrimSuffix(o.Protocol, ":")
	if protocol == "" {
		protocol = "https"
	}
	return protocol + "://" + o.Host
}

// ParseOrigin parses "scheme://host" into an Origin
func ParseOrigin(s string) (Origin, error) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Origin{}, fmt.Errorf("invalid origin %q: want scheme://host", s)
	}
	return Origin{Protocol: u.Scheme + ":", Host: u.Host}, nil
}
