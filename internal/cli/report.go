package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/carson-networks/porquinho-server/internal/report"
	"github.com/carson-networks/porquinho-server/internal/service"
)

type reportFlags struct {
	out string
	projectFlags
}

func (app *App) reportCommand() *cobra.Command {
	flags := reportFlags{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export records, summary and a projection to PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.validate(); err != nil {
				return err
			}

			rt, err := app.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := cmd.Context()
			records, _, err := rt.service.Record.List(ctx)
			if err != nil {
				return err
			}
			summary, err := rt.service.Dashboard.Summary(ctx)
			if err != nil {
				return err
			}
			projection, err := rt.service.Projection.Simulate(ctx, flags.contribution, flags.months)
			if err != nil {
				return err
			}

			file, err := os.Create(flags.out)
			if err != nil {
				return fmt.Errorf("create %s: %w", flags.out, err)
			}
			err = report.WritePDF(file, report.Data{
				GeneratedAt: time.Now(),
				Records:     records,
				Summary:     summary,
				Projection:  projection,
			})
			if closeErr := file.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", flags.out, err)
			}

			pterm.Success.Printfln("Relatório salvo em %s", flags.out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "porquinho.pdf", "Output PDF path")
	cmd.Flags().Float64Var(&flags.contribution, "contribution", 0, "Monthly contribution in BRL")
	cmd.Flags().IntVar(&flags.months, "months", service.DefaultProjectionMonths, "Number of months to project")
	return cmd
}
