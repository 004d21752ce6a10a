package reporting

import (
	"context"
	"time"
)

// Cancelled orders are excluded from every revenue aggregate.
type Repository interface {
	DailyOrders(context context.Context, from, to time.Time) ([]DailyPoint, error)
	TopArtworks(context context.Context, from, to time.Time, limit int) ([]TopArtwork, error)
	OrdersByStatus(context context.Context, from, to time.Time) ([]StatusCount, error)
	ArtworksByStatus(context context.Context) ([]StatusCount, error)

	SalesSummary(context context.Context, from, to time.Time) (*SalesSummary, error)
	UserActivity(context context.Context, from, to time.Time) (*UserActivity, error)
	AuctionResults(context context.Context, from, to time.Time, limit int) ([]AuctionResult, error)
	RevenueByCategory(context context.Context, from, to time.Time) ([]CategoryRevenue, error)
	InventoryStatus(context context.Context) (*InventoryStatus, error)
	ArtistPerformance(context context.Context, from, to time.Time, limit int) ([]ArtistPerformance, error)
}
