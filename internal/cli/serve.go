package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carson-networks/porquinho-server/api"
	"github.com/carson-networks/porquinho-server/internal/operator"
)

func (app *App) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := app.bootstrap(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := rt.Close(); err != nil {
					rt.logger.WithError(err).Warn("Serve.close")
				}
			}()

			rt.logger.WithField("version", app.version).Info("porquinho-server starting")

			delegator := operator.NewOperatorDelegator(rt.service.Record, rt.cfg.OperatorWorkers, rt.cfg.OperatorQueueSize)
			delegator.Start()
			defer delegator.Stop()

			httpRest := api.Rest{
				Logger:   rt.logger,
				Port:     rt.cfg.Port,
				Storage:  rt.store,
				Service:  rt.service,
				Operator: delegator,
			}
			return httpRest.Serve(ctx)
		},
	}
}
