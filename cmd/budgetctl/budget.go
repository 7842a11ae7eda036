package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/budgetly/internal/money"
	"github.com/MrJamesThe3rd/budgetly/internal/overview"
)

func (a *app) budgetCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Print the reconciled budget of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ownerID, err := a.ownerID()
			if err != nil {
				return err
			}

			p, err := a.period(month, year)
			if err != nil {
				return err
			}

			return a.withOverview(cmd.Context(), func(svc *overview.Service) error {
				view, err := svc.GetBudgetView(cmd.Context(), ownerID, p)
				if err != nil {
					return err
				}

				table, err := renderBudget(view)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", heading("Budget "+p.String()), table)

				return err
			})
		},
	}

	addPeriodFlags(cmd, &month, &year)

	return cmd
}

func renderBudget(view *overview.BudgetView) (string, error) {
	data := pterm.TableData{{"Category", "Planned", "Actual", "Difference"}}

	for _, row := range view.Rows {
		label := row.Label()
		if row.Synthesized {
			label += " *"
		}

		data = append(data, []string{label, money.Format(row.Planned), money.Format(row.Actual), difference(row.Difference())})
	}

	data = append(data, []string{
		pterm.Bold.Sprint("Total"),
		money.Format(view.Totals.Planned),
		money.Format(view.Totals.Actual),
		difference(view.Totals.Difference()),
	})

	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(data).
		Srender()
}

// difference is red when over budget and green when under.
func difference(d decimal.Decimal) string {
	switch {
	case d.IsNegative():
		return pterm.FgRed.Sprint(money.Format(d))
	case d.IsPositive():
		return pterm.FgGreen.Sprint(money.Format(d))
	default:
		return money.Format(d)
	}
}
