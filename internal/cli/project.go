package cli

import (
	"fmt"
	"math"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/carson-networks/porquinho-server/internal/money"
	"github.com/carson-networks/porquinho-server/internal/service"
)

type projectFlags struct {
	contribution float64
	months       int
	initial      float64
}

func (app *App) projectCommand() *cobra.Command {
	flags := projectFlags{}

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Simulate compound growth of the savings balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.validate(); err != nil {
				return err
			}

			rt, err := app.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			var result *service.Projection
			if cmd.Flags().Changed("initial") {
				result = rt.service.Projection.SimulateFrom(flags.initial, flags.contribution, flags.months)
			} else {
				result, err = rt.service.Projection.Simulate(cmd.Context(), flags.contribution, flags.months)
				if err != nil {
					return err
				}
			}

			return printProjection(result)
		},
	}

	cmd.Flags().Float64Var(&flags.contribution, "contribution", 0, "Monthly contribution in BRL")
	cmd.Flags().IntVar(&flags.months, "months", service.DefaultProjectionMonths, "Number of months to project")
	cmd.Flags().Float64Var(&flags.initial, "initial", 0, "Starting amount (default: latest recorded savings balance)")
	return cmd
}

func (f projectFlags) validate() error {
	if !finite(f.contribution) || f.contribution < 0 || f.contribution > service.MaxMonthlyContribution {
		return fmt.Errorf("--contribution must be between 0 and %d", service.MaxMonthlyContribution)
	}
	if f.months < 0 || f.months > service.MaxProjectionMonths {
		return fmt.Errorf("--months must be between 0 and %d", service.MaxProjectionMonths)
	}
	if !finite(f.initial) || f.initial < 0 {
		return fmt.Errorf("--initial must be a non-negative number")
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func projectionTableData(p *service.Projection) pterm.TableData {
	data := pterm.TableData{{"Mês", "Saldo", "Rendimento", "Total investido"}}
	for _, pt := range p.Points {
		data = append(data, []string{
			fmt.Sprintf("%d", pt.Month),
			money.FormatBRL(decimal.NewFromFloat(pt.Amount)),
			money.FormatBRL(decimal.NewFromFloat(pt.YieldEarned)),
			money.FormatBRL(decimal.NewFromFloat(pt.TotalInvested)),
		})
	}
	return data
}

func printProjection(p *service.Projection) error {
	if p.BalanceMonth != "" {
		pterm.Info.Printfln("Saldo inicial %s (registro de %s, %s)", money.FormatBRLFloat(p.InitialAmount), p.BalanceMonth, p.Source)
	} else {
		pterm.Info.Printfln("Saldo inicial %s", money.FormatBRLFloat(p.InitialAmount))
	}
	pterm.Info.Printfln("Taxa mensal equivalente: %s a.m.", money.FormatPercent(p.MonthlyRate))

	if len(p.Points) > 0 {
		if err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(projectionTableData(p)).Render(); err != nil {
			return err
		}
	}

	pterm.Success.Printfln("Total projetado: %s", money.FormatBRLFloat(p.ProjectedTotal))
	pterm.Success.Printfln("Rendimento total: %s", money.FormatBRLFloat(p.TotalYield))
	return nil
}
