package reporting_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/reporting"
)

// fakeReportRepo serves canned aggregates and records which queries ran and
// with what window.
type fakeReportRepo struct {
	calls    []string
	lastFrom time.Time
	lastTo   time.Time
}

func (r *fakeReportRepo) record(name string, from, to time.Time) {
	r.calls = append(r.calls, name)
	r.lastFrom = from
	r.lastTo = to
}

func (r *fakeReportRepo) DailyOrders(_ context.Context, from, to time.Time) ([]reporting.DailyPoint, error) {
	r.record("daily_orders", from, to)
	return []reporting.DailyPoint{{Date: from, Orders: 2, RevenueCents: 500_00}}, nil
}

func (r *fakeReportRepo) TopArtworks(_ context.Context, from, to time.Time, _ int) ([]reporting.TopArtwork, error) {
	r.record("top_artworks", from, to)
	return []reporting.TopArtwork{{ArtworkID: 1, Title: "Best Seller", UnitsSold: 5}}, nil
}

func (r *fakeReportRepo) OrdersByStatus(_ context.Context, from, to time.Time) ([]reporting.StatusCount, error) {
	r.record("orders_by_status", from, to)
	return []reporting.StatusCount{{Status: "Paid", Count: 3}}, nil
}

func (r *fakeReportRepo) ArtworksByStatus(_ context.Context) ([]reporting.StatusCount, error) {
	r.calls = append(r.calls, "artworks_by_status")
	return []reporting.StatusCount{{Status: "Approved", Count: 9}}, nil
}

func (r *fakeReportRepo) SalesSummary(_ context.Context, from, to time.Time) (*reporting.SalesSummary, error) {
	r.record("sales_summary", from, to)
	return &reporting.SalesSummary{Orders: 4}, nil
}

func (r *fakeReportRepo) UserActivity(_ context.Context, from, to time.Time) (*reporting.UserActivity, error) {
	r.record("user_activity", from, to)
	return &reporting.UserActivity{NewUsers: 7}, nil
}

func (r *fakeReportRepo) AuctionResults(_ context.Context, from, to time.Time, _ int) ([]reporting.AuctionResult, error) {
	r.record("auction_results", from, to)
	return nil, nil
}

func (r *fakeReportRepo) RevenueByCategory(_ context.Context, from, to time.Time) ([]reporting.CategoryRevenue, error) {
	r.record("revenue_by_category", from, to)
	return []reporting.CategoryRevenue{{Category: "painting", RevenueCents: 900_00}}, nil
}

func (r *fakeReportRepo) InventoryStatus(_ context.Context) (*reporting.InventoryStatus, error) {
	r.calls = append(r.calls, "inventory_status")
	return &reporting.InventoryStatus{ListedArtworks: 12}, nil
}

func (r *fakeReportRepo) ArtistPerformance(_ context.Context, from, to time.Time, _ int) ([]reporting.ArtistPerformance, error) {
	r.record("artist_performance", from, to)
	return nil, nil
}

func newService(repo *fakeReportRepo) *reporting.Service {
	return reporting.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAnalytics(t *testing.T) {
	repo := &fakeReportRepo{}
	service := newService(repo)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	dashboard, err := service.Analytics(context.Background(), from, to)
	require.NoError(t, err)

	// 1. All four aggregates are assembled
	assert.Equal(t, []string{"daily_orders", "top_artworks", "orders_by_status", "artworks_by_status"}, repo.calls)
	assert.Len(t, dashboard.Daily, 1)
	assert.Len(t, dashboard.TopArtworks, 1)

	// 2. The window passes through unchanged
	assert.Equal(t, from, dashboard.From)
	assert.Equal(t, to, dashboard.To)
}

func TestAnalytics_WindowDefaults(t *testing.T) {
	repo := &fakeReportRepo{}
	service := newService(repo)

	// 1. Omitted window defaults to the last 30 days ending now
	_, err := service.Analytics(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), repo.lastTo, time.Minute)
	assert.WithinDuration(t, time.Now().Add(-30*24*time.Hour), repo.lastFrom, time.Minute)

	// 2. A single-day window (from == to) is valid
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = service.Analytics(context.Background(), day, day)
	require.NoError(t, err)
	assert.Equal(t, day, repo.lastFrom)
	assert.Equal(t, day, repo.lastTo)

	// 3. An inverted window is a validation error
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = service.Analytics(context.Background(), from, to)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
}

func TestBuild_Dispatch(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		reportType reporting.ReportType
		wantCalls  []string
	}{
		{reporting.ReportSalesSummary, []string{"sales_summary"}},
		{reporting.ReportUserActivity, []string{"user_activity"}},
		{reporting.ReportArtworkPerformance, []string{"top_artworks"}},
		{reporting.ReportAuctionResults, []string{"auction_results"}},
		{reporting.ReportRevenueAnalysis, []string{"daily_orders", "revenue_by_category"}},
		{reporting.ReportInventoryStatus, []string{"inventory_status"}},
		{reporting.ReportArtistPerformance, []string{"artist_performance"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.reportType), func(t *testing.T) {
			repo := &fakeReportRepo{}
			service := newService(repo)

			report, err := service.Build(context.Background(), tt.reportType, from, to)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCalls, repo.calls)
			assert.Equal(t, tt.reportType, report.Type)
			assert.NotNil(t, report.Data)
			assert.False(t, report.GeneratedAt.IsZero())
		})
	}
}

func TestBuild_UnknownType(t *testing.T) {
	repo := &fakeReportRepo{}
	service := newService(repo)

	_, err := service.Build(context.Background(), reporting.ReportType("profit_forecast"), time.Time{}, time.Time{})
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
	assert.Empty(t, repo.calls)
}
