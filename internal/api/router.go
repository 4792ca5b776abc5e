package api

import (
	"net/http"

	_ "github.com/AlexZinkM/receive-wallet/docs"
	"github.com/AlexZinkM/receive-wallet/internal/config"
	"github.com/AlexZinkM/receive-wallet/internal/handler"
	"github.com/AlexZinkM/receive-wallet/receive"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// SetupRouter sets up router with handlers
func SetupRouter(service *receive.Service, log *zap.Logger) (http.Handler, error) {
	receiveHandler, err := handler.NewReceiveHandler(
		service,
		config.GetDefaultChainID(),
		config.GetPublicOrigin(),
		config.GetTrustProxy(),
		config.GetQRSize(),
		log,
	)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Receive endpoints
	mux.HandleFunc("/chains", receiveHandler.Chains)
	mux.HandleFunc("/receive", receiveHandler.Receive)
	mux.HandleFunc("/receive/qr", receiveHandler.ReceiveQR)
	mux.HandleFunc("/receive/links", receiveHandler.Links)

	// Send flow counterpart
	mux.HandleFunc("/send/target", receiveHandler.SendTarget)

	return mux, nil
}
