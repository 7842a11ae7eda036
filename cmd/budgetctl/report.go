package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/budgetly/internal/overview"
	"github.com/MrJamesThe3rd/budgetly/internal/report"
)

func (a *app) reportCmd() *cobra.Command {
	var (
		month, year int
		format, out string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the budget of a month as PDF or CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

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

				path := out
				if path == "" {
					path = f.Filename(view)
				}

				if err := writeReport(path, f, view); err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), success("wrote "+path))

				return err
			})
		},
	}

	addPeriodFlags(cmd, &month, &year)
	cmd.Flags().StringVar(&format, "format", "pdf", "pdf or csv")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (defaults to budget-YYYY-MM.<format>)")

	return cmd
}

func writeReport(path string, f report.Format, view *overview.BudgetView) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	if err := report.Write(file, f, view); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing report file: %w", err)
	}

	return nil
}
