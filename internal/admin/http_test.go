package admin_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yadawity/yadawity/internal/admin"
	"github.com/yadawity/yadawity/internal/platform/ctxutil"
	"github.com/yadawity/yadawity/internal/platform/sec"
	"github.com/yadawity/yadawity/internal/reporting"
)

// stubReportRepo serves empty aggregates; routing is what matters here.
type stubReportRepo struct{}

func (stubReportRepo) DailyOrders(_ context.Context, _, _ time.Time) ([]reporting.DailyPoint, error) {
	return nil, nil
}

func (stubReportRepo) TopArtworks(_ context.Context, _, _ time.Time, _ int) ([]reporting.TopArtwork, error) {
	return nil, nil
}

func (stubReportRepo) OrdersByStatus(_ context.Context, _, _ time.Time) ([]reporting.StatusCount, error) {
	return nil, nil
}

func (stubReportRepo) ArtworksByStatus(_ context.Context) ([]reporting.StatusCount, error) {
	return nil, nil
}

func (stubReportRepo) SalesSummary(_ context.Context, _, _ time.Time) (*reporting.SalesSummary, error) {
	return &reporting.SalesSummary{}, nil
}

func (stubReportRepo) UserActivity(_ context.Context, _, _ time.Time) (*reporting.UserActivity, error) {
	return &reporting.UserActivity{}, nil
}

func (stubReportRepo) AuctionResults(_ context.Context, _, _ time.Time, _ int) ([]reporting.AuctionResult, error) {
	return nil, nil
}

func (stubReportRepo) RevenueByCategory(_ context.Context, _, _ time.Time) ([]reporting.CategoryRevenue, error) {
	return nil, nil
}

func (stubReportRepo) InventoryStatus(_ context.Context) (*reporting.InventoryStatus, error) {
	return &reporting.InventoryStatus{}, nil
}

func (stubReportRepo) ArtistPerformance(_ context.Context, _, _ time.Time, _ int) ([]reporting.ArtistPerformance, error) {
	return nil, nil
}

/*
TestRoutes_AnalyticsAndReports verifies the dashboard and report builder are
served inside the admin subtree, at /analytics and /reports, behind the same
role gate as the rest of the console.
*/
func TestRoutes_AnalyticsAndReports(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	insights := reporting.NewHandler(reporting.NewService(stubReportRepo{}, logger))
	service := admin.NewService(newFakeAdminRepo(), &fakeInvalidator{}, logger)
	router := admin.NewHandler(service, nil, nil, insights).Routes()

	adminContext := ctxutil.WithAuthUser(context.Background(), &sec.AuthClaims{
		UserID: 1,
		Role:   string(sec.RoleAdmin),
	})

	for _, path := range []string{"/analytics", "/reports?type=sales_summary"} {
		// 1. Anonymous callers are rejected before any handler runs
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, path)

		// 2. Admins reach the reporting handlers at these exact paths
		recorder = httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, path, nil).WithContext(adminContext)
		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusOK, recorder.Code, path)
	}
}
