package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rshep3087/fintui/api"
	"golang.org/x/sync/errgroup"
)

// HomeData is everything the Home section renders for one period.
type HomeData struct {
	Period     Period
	Summary    api.Summary
	Monthly    Result[[]api.MonthlyExpense]
	Categories Result[[]api.CategoryExpense]
	Trend      Result[[]api.YearlyTrend]
}

// RefreshHome fetches the summary and the three chart series for p.
//
// The summary is required: its failure fails the refresh. The chart series
// are best effort and each carries its own Result, so one failing chart
// never hides the others. A rejected session on any call fails the refresh
// with api.ErrUnauthorized.
func RefreshHome(ctx context.Context, b Backend, p Period) (HomeData, error) {
	summary, err := b.GetSummary(ctx, p.MonthNumber(), p.Year)
	if err != nil {
		return HomeData{}, fmt.Errorf("failed to fetch summary: %w", err)
	}

	data := HomeData{Period: p, Summary: *summary}

	var g errgroup.Group
	g.Go(func() error {
		data.Monthly = Capture(b.GetYearlyExpenses(ctx, p.Year))
		return nil
	})
	g.Go(func() error {
		data.Categories = Capture(b.GetCategoryExpenses(ctx, p.MonthNumber(), p.Year))
		return nil
	})
	g.Go(func() error {
		data.Trend = Capture(b.GetYearlySpendingTrend(ctx))
		return nil
	})
	_ = g.Wait()

	if unauthorized(data.Monthly.Err, data.Categories.Err, data.Trend.Err) {
		return HomeData{}, api.ErrUnauthorized
	}

	return data, nil
}

// HomeErrorMessage is the user-facing text for a failed Home refresh.
func HomeErrorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Error loading dashboard data: %s", apiErr.Error())
	}
	return fmt.Sprintf("Error loading dashboard data: %v. Please check that the backend server is running.", err)
}
