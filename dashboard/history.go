package dashboard

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Rshep3087/fintui/api"
)

// LedgerRow is one rendered row of the history table.
type LedgerRow struct {
	ID          int64
	Date        string
	Amount      string
	Income      bool
	Category    string
	Description string
}

// SortByDateDesc returns a copy of ts ordered newest first. Records on the
// same date keep their original order.
func SortByDateDesc(ts []api.Transaction) []api.Transaction {
	sorted := slices.Clone(ts)
	slices.SortStableFunc(sorted, func(a, b api.Transaction) int {
		return b.Date.Compare(a.Date.Time)
	})
	return sorted
}

// LedgerRows turns records into table rows in the order given.
func LedgerRows(ts []api.Transaction, currency string) []LedgerRow {
	rows := make([]LedgerRow, len(ts))
	for i, t := range ts {
		desc := strings.TrimSpace(t.Description)
		if desc == "" {
			desc = "-"
		}

		rows[i] = LedgerRow{
			ID:          t.ID,
			Date:        t.Date.String(),
			Amount:      FormatSigned(t.Amount(), t.IsIncome(), currency),
			Income:      t.IsIncome(),
			Category:    t.Category,
			Description: desc,
		}
	}
	return rows
}

// RefreshHistory fetches the ledger and returns it newest first.
func RefreshHistory(ctx context.Context, b Backend) ([]api.Transaction, error) {
	ts, err := b.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return SortByDateDesc(ts), nil
}
