package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/carson-networks/porquinho-server/internal/operator"
	"github.com/carson-networks/porquinho-server/internal/operator/actions"
)

func (app *App) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push every local record to the remote database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := app.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			delegator := operator.NewOperatorDelegator(rt.service.Record, 1, 1)
			delegator.Start()
			defer delegator.Stop()

			action := &actions.SyncRecords{}
			if err := delegator.Process(cmd.Context(), action); err != nil {
				return err
			}

			if action.Result.Failed > 0 {
				pterm.Warning.Printfln("%d registros enviados, %d falharam", action.Result.Pushed, action.Result.Failed)
				return nil
			}
			pterm.Success.Printfln("%d registros enviados", action.Result.Pushed)
			return nil
		},
	}
}
