package reporting

import (
	"context"
	"log/slog"
	"time"

	"github.com/yadawity/yadawity/internal/platform/validate"
)

const (
	// defaultWindow is used when the caller omits the date range.
	defaultWindow = 30 * 24 * time.Hour

	topListLimit = 10
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// normalizeWindow fills in defaults and validates ordering. A zero "to" means
// now; a zero "from" means one default window back from "to". The bounds are
// inclusive, so from == to is a valid single-day window.
func normalizeWindow(from, to time.Time) (time.Time, time.Time, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.Add(-defaultWindow)
	}
	if from.After(to) {
		return from, to, validate.RequiredError(FieldFrom, "must not be after to")
	}
	return from, to, nil
}

// Analytics assembles the admin dashboard: daily order/revenue series, the
// best-seller ranking, and status breakdowns.
func (service *Service) Analytics(context context.Context, from, to time.Time) (*Analytics, error) {
	from, to, err := normalizeWindow(from, to)
	if err != nil {
		return nil, err
	}

	daily, err := service.repo.DailyOrders(context, from, to)
	if err != nil {
		return nil, err
	}

	topArtworks, err := service.repo.TopArtworks(context, from, to, topListLimit)
	if err != nil {
		return nil, err
	}

	ordersByStatus, err := service.repo.OrdersByStatus(context, from, to)
	if err != nil {
		return nil, err
	}

	artworksByStatus, err := service.repo.ArtworksByStatus(context)
	if err != nil {
		return nil, err
	}

	return &Analytics{
		From:            from,
		To:              to,
		Daily:           daily,
		TopArtworks:     topArtworks,
		OrdersByStatus:  ordersByStatus,
		ArtworksByState: artworksByStatus,
	}, nil
}

/*
Build assembles a canned report by type.

An unknown type is a validation error, not a server fault. Every report
shares the same envelope so clients can render them generically.
*/
func (service *Service) Build(context context.Context, reportType ReportType, from, to time.Time) (*Report, error) {
	if !reportType.Valid() {
		return nil, validate.RequiredError(FieldType, "is not a known report type")
	}

	from, to, err := normalizeWindow(from, to)
	if err != nil {
		return nil, err
	}

	var data any

	switch reportType {
	case ReportSalesSummary:
		data, err = service.repo.SalesSummary(context, from, to)
	case ReportUserActivity:
		data, err = service.repo.UserActivity(context, from, to)
	case ReportArtworkPerformance:
		data, err = service.repo.TopArtworks(context, from, to, topListLimit)
	case ReportAuctionResults:
		data, err = service.repo.AuctionResults(context, from, to, topListLimit)
	case ReportRevenueAnalysis:
		var daily []DailyPoint
		daily, err = service.repo.DailyOrders(context, from, to)
		if err == nil {
			var byCategory []CategoryRevenue
			byCategory, err = service.repo.RevenueByCategory(context, from, to)
			data = &RevenueAnalysis{Daily: daily, ByCategory: byCategory}
		}
	case ReportInventoryStatus:
		data, err = service.repo.InventoryStatus(context)
	case ReportArtistPerformance:
		data, err = service.repo.ArtistPerformance(context, from, to, topListLimit)
	}

	if err != nil {
		return nil, err
	}

	service.logger.Info("report_generated", slog.String("type", string(reportType)))

	return &Report{
		Type:        reportType,
		From:        from,
		To:          to,
		GeneratedAt: time.Now(),
		Data:        data,
	}, nil
}
