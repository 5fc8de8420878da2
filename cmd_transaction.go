package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/Rshep3087/fintui/api"
	"github.com/Rshep3087/fintui/dashboard"
	"github.com/Rshep3087/fintui/history"
)

func newTransactionCmd(deps *cliDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "List, add and delete ledger records",
	}

	list := transactionListCommand{deps: deps}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE:  list.run,
	}
	listCmd.Flags().StringP("match", "m", "", "only show transactions fuzzy matching this text")
	listCmd.Flags().IntP("limit", "n", 0, "show at most this many transactions")
	addOutputFlag(listCmd)

	add := transactionAddCommand{deps: deps}
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense",
		Args:  cobra.NoArgs,
		RunE:  add.run,
	}
	addCmd.Flags().String("type", "expense", "expense or income")
	addCmd.Flags().String("date", "", "transaction date YYYY-MM-DD (default today)")
	addCmd.Flags().String("description", "", "what the money was for")
	addCmd.Flags().String("category", "", "expense category: "+strings.Join(dashboard.ExpenseCategories, ", "))
	addCmd.Flags().String("amount", "", "amount, greater than zero")
	addCmd.Flags().Bool("suggest-category", false, "ask the AI provider for a category when none is given")
	_ = addCmd.MarkFlagRequired("amount")

	del := transactionDeleteCommand{deps: deps, confirm: promptDeleteConfirmation}
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE:  del.run,
	}
	deleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	cmd.AddCommand(listCmd, addCmd, deleteCmd)
	return cmd
}

type transactionListCommand struct {
	deps *cliDeps
}

// matchTransactions keeps the transactions fuzzy matching query, best match
// first. Equally good matches keep their order.
func matchTransactions(ts []api.Transaction, query string) []api.Transaction {
	query = strings.TrimSpace(query)
	if query == "" {
		return ts
	}

	targets := make([]string, len(ts))
	for i, t := range ts {
		targets[i] = strings.Join([]string{t.Name, t.Description, t.Category}, " ")
	}

	ranks := fuzzy.RankFindFold(query, targets)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return a.OriginalIndex - b.OriginalIndex
	})

	matched := make([]api.Transaction, len(ranks))
	for i, r := range ranks {
		matched[i] = ts[r.OriginalIndex]
	}
	return matched
}

func (c *transactionListCommand) run(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	backend, err := c.deps.requireSession()
	if err != nil {
		return err
	}

	ts, err := dashboard.RefreshHistory(cmd.Context(), backend)
	if err != nil {
		return c.deps.guard(err)
	}

	match, _ := cmd.Flags().GetString("match")
	ts = matchTransactions(ts, match)

	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(ts) > limit {
		ts = ts[:limit]
	}

	rows := dashboard.LedgerRows(ts, c.deps.currencyCode())
	return render(cmd.OutOrStdout(), format, ts, func() fmt.Stringer {
		t := createStyledTable("ID", "DATE", "AMOUNT", "CATEGORY", "DESCRIPTION")
		if len(rows) == 0 {
			return t.Row("", "", "", "", history.Placeholder)
		}
		for _, r := range rows {
			t.Row(strconv.FormatInt(r.ID, 10), r.Date, r.Amount, r.Category, r.Description)
		}
		return t
	})
}

type transactionAddCommand struct {
	deps *cliDeps
}

func parseKind(s string) (dashboard.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense":
		return dashboard.Expense, nil
	case "income":
		return dashboard.Income, nil
	}
	return "", fmt.Errorf("invalid type %q: must be expense or income", s)
}

// matchCategory returns the expense category equal to s ignoring case, or s
// unchanged.
func matchCategory(s string) string {
	s = strings.TrimSpace(s)
	for _, c := range dashboard.ExpenseCategories {
		if strings.EqualFold(c, s) {
			return c
		}
	}
	return s
}

func (c *transactionAddCommand) run(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	kind, _ := flags.GetString("type")
	date, _ := flags.GetString("date")
	desc, _ := flags.GetString("description")
	category, _ := flags.GetString("category")
	amount, _ := flags.GetString("amount")
	suggest, _ := flags.GetBool("suggest-category")

	k, err := parseKind(kind)
	if err != nil {
		return err
	}

	if date == "" {
		date = c.deps.now().Format(api.DateLayout)
	}
	d, err := api.ParseDate(date)
	if err != nil {
		return err
	}

	draft := dashboard.Draft{
		Kind:        k,
		Date:        date,
		Description: desc,
		Category:    matchCategory(category),
		Amount:      amount,
	}

	backend, err := c.deps.requireSession()
	if err != nil {
		return err
	}

	if k == dashboard.Expense && draft.Category == "" && suggest {
		draft.Category, err = c.suggest(cmd, draft)
		if err != nil {
			return err
		}
	}

	// the CLI has no selected period, so the date picks its own
	p := dashboard.PeriodOf(d.Time)
	t, err := dashboard.CreateTransaction(cmd.Context(), backend, p, draft)
	if err != nil {
		return c.deps.guard(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created transaction #%d: %s %s\n",
		t.ID, t.Name, dashboard.FormatSigned(t.Amount(), t.IsIncome(), c.deps.currencyCode()))
	return nil
}

func (c *transactionAddCommand) suggest(cmd *cobra.Command, draft dashboard.Draft) (string, error) {
	r := NewAIRecommender(c.deps.ai)
	if !r.IsEnabled() {
		return "", errSuggestionsDisabled
	}

	amount, _ := dashboard.ParseAmount(draft.Amount)
	d, _ := api.ParseDate(draft.Date)
	rec, err := r.Recommend(cmd.Context(), api.Transaction{
		Date:        d,
		Name:        draft.Description,
		Description: draft.Description,
		Expenses:    amount,
	})
	if err != nil {
		return "", fmt.Errorf("failed to suggest a category: %w", err)
	}

	log.Info("category suggested", "category", rec.Category, "confidence", rec.Confidence, "reasoning", rec.Reasoning)
	return rec.Category, nil
}

type transactionDeleteCommand struct {
	deps    *cliDeps
	confirm func(id int64) (bool, error)
}

func promptDeleteConfirmation(id int64) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Delete transaction #%d?", id)).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run()
	return ok, err
}

func (c *transactionDeleteCommand) run(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid transaction id %q", args[0])
	}

	backend, err := c.deps.requireSession()
	if err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		ok, err := c.confirm(id)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("cancelled")
		}
	}

	if err := dashboard.DeleteTransaction(cmd.Context(), backend, id); err != nil {
		return c.deps.guard(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction #%d\n", id)
	return nil
}
