package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Rshep3087/fintui/charts"
	"github.com/Rshep3087/fintui/dashboard"
)

func addPeriodFlags(cmd *cobra.Command) {
	cmd.Flags().Int("month", 0, "month 1-12 (default current month)")
	cmd.Flags().Int("year", 0, "year (default current year)")
}

// periodFromFlags returns the period named by --month and --year, defaulting
// each to the current one.
func periodFromFlags(cmd *cobra.Command, now time.Time) (dashboard.Period, error) {
	current := dashboard.PeriodOf(now)

	month, _ := cmd.Flags().GetInt("month")
	year, _ := cmd.Flags().GetInt("year")
	if month == 0 {
		month = current.MonthNumber()
	}
	if year == 0 {
		year = current.Year
	}

	return dashboard.NewPeriod(month, year)
}

func newSummaryCmd(deps *cliDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income, expenses and balance for a month",
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

			s, err := backend.GetSummary(cmd.Context(), p.MonthNumber(), p.Year)
			if err != nil {
				return deps.guard(fmt.Errorf("failed to fetch summary: %w", err))
			}
			s.Month, s.Year = p.MonthNumber(), p.Year

			cur := deps.currencyCode()
			return render(cmd.OutOrStdout(), format, s, func() fmt.Stringer {
				return createStyledTable("PERIOD", "INCOME", "EXPENSES", "BALANCE").Row(
					p.String(),
					dashboard.FormatAmount(s.Income, cur),
					dashboard.FormatAmount(s.Expenses, cur),
					dashboard.FormatAmount(s.Balance, cur),
				)
			})
		},
	}
	addPeriodFlags(cmd)
	addOutputFlag(cmd)

	return cmd
}

func newCategoriesCmd(deps *cliDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show spending per category for a month",
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

			points, err := backend.GetCategoryExpenses(cmd.Context(), p.MonthNumber(), p.Year)
			if err != nil {
				return deps.guard(fmt.Errorf("failed to fetch category expenses: %w", err))
			}

			cur := deps.currencyCode()
			caser := cases.Title(language.English)
			return render(cmd.OutOrStdout(), format, points, func() fmt.Stringer {
				t := createStyledTable("CATEGORY", "AMOUNT")
				for _, c := range points {
					t.Row(caser.String(c.Category), dashboard.FormatAmount(c.Amount, cur))
				}
				return t
			})
		},
	}
	addPeriodFlags(cmd)
	addOutputFlag(cmd)

	return cmd
}

func newTrendCmd(deps *cliDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show total spending per year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			backend, err := deps.requireSession()
			if err != nil {
				return err
			}

			points, err := backend.GetYearlySpendingTrend(cmd.Context())
			if err != nil {
				return deps.guard(fmt.Errorf("failed to fetch spending trend: %w", err))
			}

			if len(points) == 0 && format == tableOutputFormat {
				fmt.Fprintln(cmd.OutOrStdout(), charts.NoData)
				return nil
			}

			cur := deps.currencyCode()
			return render(cmd.OutOrStdout(), format, points, func() fmt.Stringer {
				t := createStyledTable("YEAR", "SPENT")
				for _, y := range points {
					t.Row(strconv.Itoa(y.Year), dashboard.FormatAmount(y.Amount, cur))
				}
				return t
			})
		},
	}
	addOutputFlag(cmd)

	return cmd
}
