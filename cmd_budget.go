package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rshep3087/fintui/dashboard"
)

func newBudgetCmd(deps *cliDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show or set the monthly budget",
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the budget, spending and what is left",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			p, err := periodFromFlags(cmd, deps.now())
			if err != nil {
				return err
			}

			backend, err := deps.requireSession()
			if err != nil {
				return err
			}

			data, err := dashboard.RefreshBudget(cmd.Context(), backend, p)
			if err != nil {
				return deps.guard(err)
			}

			return render(cmd.OutOrStdout(), format, newBudgetReport(p, data.Status), func() fmt.Stringer {
				return budgetTable(p, data.Status, deps.currencyCode())
			})
		},
	}
	addPeriodFlags(getCmd)
	addOutputFlag(getCmd)

	setCmd := &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the budget for a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := periodFromFlags(cmd, deps.now())
			if err != nil {
				return err
			}

			// invalid amounts never reach the backend
			if _, err := dashboard.ParseBudgetAmount(args[0]); err != nil {
				return err
			}

			backend, err := deps.requireSession()
			if err != nil {
				return err
			}

			b, err := dashboard.SaveBudget(cmd.Context(), backend, p, args[0])
			if err != nil {
				return deps.guard(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s set to %s\n", p, dashboard.FormatAmount(b.Amount, deps.currencyCode()))
			return nil
		},
	}
	addPeriodFlags(setCmd)

	cmd.AddCommand(getCmd, setCmd)
	return cmd
}

// budgetReport is the machine-readable output of budget get.
type budgetReport struct {
	Month     int      `json:"month" yaml:"month"`
	Year      int      `json:"year" yaml:"year"`
	Budget    *float64 `json:"budget" yaml:"budget"`
	Expenses  float64  `json:"expenses" yaml:"expenses"`
	Remaining float64  `json:"remaining" yaml:"remaining"`
	Progress  float64  `json:"progress" yaml:"progress"`
	Over      bool     `json:"over_budget" yaml:"over_budget"`
}

func newBudgetReport(p dashboard.Period, s dashboard.BudgetStatus) budgetReport {
	r := budgetReport{
		Month:     p.MonthNumber(),
		Year:      p.Year,
		Expenses:  s.Expenses,
		Remaining: s.Remaining,
		Progress:  s.Progress,
		Over:      s.OverBudget(),
	}
	if s.HasBudget {
		r.Budget = &s.Amount
	}
	return r
}

func budgetTable(p dashboard.Period, s dashboard.BudgetStatus, currency string) fmt.Stringer {
	budget := "not set"
	if s.HasBudget {
		budget = dashboard.FormatAmount(s.Amount, currency)
	}

	progress := fmt.Sprintf("%.1f%%", s.Progress)
	if s.OverBudget() {
		progress += " (over budget)"
	}

	return createStyledTable("PERIOD", "BUDGET", "SPENT", "REMAINING", "PROGRESS").Row(
		p.String(),
		budget,
		dashboard.FormatAmount(s.Expenses, currency),
		dashboard.FormatAmount(s.Remaining, currency),
		progress,
	)
}
