package cli

import (
	"net/http"
	"time"

	"github.com/AlexZinkM/receive-wallet/internal/api"
	"github.com/AlexZinkM/receive-wallet/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the receive API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}

			router, err := api.SetupRouter(service, a.log)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              ":" + config.GetPort(),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			a.log.Info("server listening",
				zap.String("addr", srv.Addr),
				zap.Strings("chains", chainIDs(service.Chains())),
			)
			return srv.ListenAndServe()
		},
	}
}
