package reporting

import "time"

// ReportType selects which canned report Build assembles.
type ReportType string

const (
	ReportSalesSummary       ReportType = "sales_summary"
	ReportUserActivity       ReportType = "user_activity"
	ReportArtworkPerformance ReportType = "artwork_performance"
	ReportAuctionResults     ReportType = "auction_results"
	ReportRevenueAnalysis    ReportType = "revenue_analysis"
	ReportInventoryStatus    ReportType = "inventory_status"
	ReportArtistPerformance  ReportType = "artist_performance"
)

// Valid reports whether t names a known report.
func (t ReportType) Valid() bool {
	switch t {
	case ReportSalesSummary, ReportUserActivity, ReportArtworkPerformance,
		ReportAuctionResults, ReportRevenueAnalysis, ReportInventoryStatus,
		ReportArtistPerformance:
		return true
	}
	return false
}

// Report is the envelope every report type shares.
type Report struct {
	Type        ReportType `json:"type"`
	From        time.Time  `json:"from"`
	To          time.Time  `json:"to"`
	GeneratedAt time.Time  `json:"generated_at"`
	Data        any        `json:"data"`
}

// DailyPoint is one day in a time series of order activity.
type DailyPoint struct {
	Date         time.Time `json:"date"`
	Orders       int       `json:"orders"`
	RevenueCents int64     `json:"revenue_cents"`
}

// TopArtwork is one row of the best-sellers ranking.
type TopArtwork struct {
	ArtworkID    int64  `json:"artwork_id"`
	Title        string `json:"title"`
	UnitsSold    int    `json:"units_sold"`
	RevenueCents int64  `json:"revenue_cents"`
}

// StatusCount is one slice of a status breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Analytics is the dashboard payload: daily series plus breakdowns.
type Analytics struct {
	From            time.Time     `json:"from"`
	To              time.Time     `json:"to"`
	Daily           []DailyPoint  `json:"daily"`
	TopArtworks     []TopArtwork  `json:"top_artworks"`
	OrdersByStatus  []StatusCount `json:"orders_by_status"`
	ArtworksByState []StatusCount `json:"artworks_by_status"`
}

// SalesSummary aggregates order activity over a window.
type SalesSummary struct {
	Orders            int   `json:"orders"`
	RevenueCents      int64 `json:"revenue_cents"`
	AverageOrderCents int64 `json:"average_order_cents"`
	UniqueBuyers      int   `json:"unique_buyers"`
}

// UserActivity aggregates account and session activity over a window.
type UserActivity struct {
	NewUsers   int `json:"new_users"`
	NewArtists int `json:"new_artists"`
	Logins     int `json:"logins"`
}

// AuctionResult is one concluded auction with its final standing.
type AuctionResult struct {
	AuctionID     int64     `json:"auction_id"`
	ArtworkID     int64     `json:"artwork_id"`
	Title         string    `json:"title"`
	FinalBidCents int64     `json:"final_bid_cents"`
	BidCount      int       `json:"bid_count"`
	EndedAt       time.Time `json:"ended_at"`
}

// CategoryRevenue is revenue attributed to one artwork category.
type CategoryRevenue struct {
	Category     string `json:"category"`
	UnitsSold    int    `json:"units_sold"`
	RevenueCents int64  `json:"revenue_cents"`
}

// RevenueAnalysis pairs the daily series with a category split.
type RevenueAnalysis struct {
	Daily      []DailyPoint      `json:"daily"`
	ByCategory []CategoryRevenue `json:"by_category"`
}

// InventoryStatus is a stock-level snapshot of the approved catalog.
type InventoryStatus struct {
	ListedArtworks int           `json:"listed_artworks"`
	OutOfStock     int           `json:"out_of_stock"`
	LowStock       int           `json:"low_stock"` // quantity 1-2
	ByCategory     []StatusCount `json:"by_category"`
}

// ArtistPerformance is one artist's sales standing.
type ArtistPerformance struct {
	ArtistID     int64  `json:"artist_id"`
	Name         string `json:"name"`
	UnitsSold    int    `json:"units_sold"`
	RevenueCents int64  `json:"revenue_cents"`
}

const (
	FieldType = "type"
	FieldFrom = "from"
	FieldTo   = "to"
)
