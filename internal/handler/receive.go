package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AlexZinkM/receive-wallet/internal/account"
	"github.com/AlexZinkM/receive-wallet/internal/chain"
	"github.com/AlexZinkM/receive-wallet/internal/model"
	"github.com/AlexZinkM/receive-wallet/internal/route"
	"github.com/AlexZinkM/receive-wallet/receive"

	"go.uber.org/zap"
)

// ReceiveHandler serves the receive screen and the send-target decoder
type ReceiveHandler struct {
	service        *receive.Service
	defaultChainID string
	publicOrigin   *model.Origin
	trustProxy     bool
	qrSize         int
	log            *zap.Logger
}

// NewReceiveHandler creates a new ReceiveHandler.
// publicOrigin ("https://wallet.example") pins the origin of built links;
// when empty the origin is taken from each request, and X-Forwarded-Proto is
// only honoured with trustProxy.
func NewReceiveHandler(service *receive.Service, defaultChainID, publicOrigin string, trustProxy bool, qrSize int, log *zap.Logger) (*ReceiveHandler, error) {
	if service == nil {
		return nil, errors.New("receive service not set")
	}
	if log == nil {
		log = zap.NewNop()
	}

	h := &ReceiveHandler{
		service:        service,
		defaultChainID: defaultChainID,
		trustProxy:     trustProxy,
		qrSize:         qrSize,
		log:            log,
	}

	if publicOrigin != "" {
		origin, err := model.ParseOrigin(publicOrigin)
		if err != nil {
			return nil, fmt.Errorf("public origin: %w", err)
		}
		h.publicOrigin = &origin
	}

	return h, nil
}

// Receive handles GET /receive
// @Summary      Receive screen
// @Description  Selects an account, resolves its receive address and builds the shareable send link with its QR code
// @Tags         receive
// @Produce      json
// @Param        chainId    query     string  false  "Chain id (defaults to DEFAULT_CHAIN_ID)"
// @Param        accountId  query     string  false  "Selected account id (defaults to the first account)"
// @Success      200  {object}  model.ReceiveResponse
// @Failure      404  {object}  model.ErrorResponse
// @Router       /receive [get]
func (h *ReceiveHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.receive(r)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if resp.Link != "" {
		qr, err := receive.GenerateQRCode(resp.Link, h.qrSize)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		resp.QR = qr
	}

	writeJSON(w, http.StatusOK, resp)
}

// ReceiveQR handles GET /receive/qr
// @Summary      Receive link QR code
// @Description  Renders the receive link of the selected account as a PNG QR code
// @Tags         receive
// @Produce      png
// @Param        chainId    query     string  false  "Chain id (defaults to DEFAULT_CHAIN_ID)"
// @Param        accountId  query     string  false  "Selected account id (defaults to the first account)"
// @Success      200
// @Failure      404  {object}  model.ErrorResponse
// @Router       /receive/qr [get]
func (h *ReceiveHandler) ReceiveQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	resp, err := h.receive(r)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if resp.Link == "" {
		writeError(w, http.StatusNotFound, model.CodeNoAccounts, "no accounts available on chain "+resp.ChainID)
		return
	}

	png, err := receive.QRCodePNG(resp.Link, h.qrSize)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// Links handles GET /receive/links
// @Summary      Receive links of all accounts
// @Description  Builds the receive link of every account of a chain
// @Tags         receive
// @Produce      json
// @Param        chainId  query     string  false  "Chain id (defaults to DEFAULT_CHAIN_ID)"
// @Success      200  {array}   model.ReceiveLink
// @Failure      404  {object}  model.ErrorResponse
// @Router       /receive/links [get]
func (h *ReceiveHandler) Links(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	links, err := h.service.Links(r.Context(), h.chainID(r), h.origin(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, links)
}

// SendTarget handles GET /send/target
// @Summary      Decode a receive link
// @Description  Decodes a receive link into the payment request the send flow opens, optionally checking it against a chain
// @Tags         send
// @Produce      json
// @Param        link     query     string  true   "Receive link or route"
// @Param        chainId  query     string  false  "Chain id to check the request against"
// @Success      200  {object}  model.SendTarget
// @Failure      400  {object}  model.ErrorResponse
// @Router       /send/target [get]
func (h *ReceiveHandler) SendTarget(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	link := r.URL.Query().Get("link")
	if link == "" {
		writeError(w, http.StatusBadRequest, model.CodeBadRequest, "link is required")
		return
	}

	target, err := h.service.DecodeSendTarget(r.URL.Query().Get("chainId"), link)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, target)
}

// Chains handles GET /chains
// @Summary      Supported chains
// @Tags         chains
// @Produce      json
// @Success      200  {array}  model.ChainConfig
// @Router       /chains [get]
func (h *ReceiveHandler) Chains(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Chains())
}

func (h *ReceiveHandler) receive(r *http.Request) (*model.ReceiveResponse, error) {
	sel := account.NewSelector(r.URL.Query().Get("accountId"))
	return h.service.Receive(sel, receive.Request{
		ChainID: h.chainID(r),
		Origin:  h.origin(r),
	})
}

func (h *ReceiveHandler) chainID(r *http.Request) string {
	if id := r.URL.Query().Get("chainId"); id != "" {
		return id
	}
	return h.defaultChainID
}

// origin returns the origin links are built for: the configured public
// origin, otherwise the scheme and host the request came in on
func (h *ReceiveHandler) origin(r *http.Request) model.Origin {
	if h.publicOrigin != nil {
		return *h.publicOrigin
	}

	protocol := "http:"
	if r.TLS != nil {
		protocol = "https:"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" && h.trustProxy {
		p, _, _ = strings.Cut(p, ",")
		protocol = strings.TrimSpace(p) + ":"
	}

	return model.Origin{Protocol: protocol, Host: r.Host}
}

func (h *ReceiveHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chain.ErrUnknownChain), errors.Is(err, route.ErrConfigNotFound):
		writeError(w, http.StatusNotFound, model.CodeUnknownChain, err.Error())
	case errors.Is(err, route.ErrMalformedRoute):
		writeError(w, http.StatusBadRequest, model.CodeMalformedRoute, err.Error())
	default:
		h.log.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, model.CodeInternal, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg, Code: code})
}
