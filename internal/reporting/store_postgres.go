package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yadawity/yadawity/internal/platform/database/schema"
	"github.com/yadawity/yadawity/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// DailyOrders produces the dashboard time series. generate_series fills in
// zero-activity days so the chart has no gaps.
func (repository *PostgresRepository) DailyOrders(context context.Context, from, to time.Time) ([]DailyPoint, error) {
	t := schema.Order
	query := fmt.Sprintf(`
		SELECT day::date,
		       COALESCE(count(o.%s), 0),
		       COALESCE(sum(o.%s), 0)
		FROM generate_series($1::date, $2::date, '1 day') AS day
		LEFT JOIN %s o
		       ON o.%s::date = day
		      AND o.%s <> 'Cancelled'
		GROUP BY day
		ORDER BY day ASC
	`, t.ID, t.TotalCents, t.Table, t.CreatedAt, t.Status)

	rows, err := repository.db.Query(context, query, from, to)
	if err != nil {
		return nil, dberr.Wrap(err, "daily_orders")
	}
	defer rows.Close()

	var points []DailyPoint
	for rows.Next() {
		p := DailyPoint{}
		if err := rows.Scan(&p.Date, &p.Orders, &p.RevenueCents); err != nil {
			return nil, dberr.Wrap(err, "scan_daily_point")
		}
		points = append(points, p)
	}

	return points, nil
}

func (repository *PostgresRepository) TopArtworks(context context.Context, from, to time.Time, limit int) ([]TopArtwork, error) {
	orderTable := schema.Order
	itemTable := schema.OrderItem
	artworkTable := schema.Artwork

	query := fmt.Sprintf(`
		SELECT a.%s, a.%s,
		       sum(i.%s)::int,
		       sum(i.%s * i.%s)
		FROM %s i
		JOIN %s o ON o.%s = i.%s AND o.%s <> 'Cancelled'
		JOIN %s a ON a.%s = i.%s
		WHERE o.%s >= $1 AND o.%s < $2
		GROUP BY a.%s, a.%s
		ORDER BY sum(i.%s * i.%s) DESC
		LIMIT $3
	`,
		artworkTable.ID, artworkTable.Title,
		itemTable.Quantity,
		itemTable.Quantity, itemTable.UnitPriceCents,
		itemTable.Table,
		orderTable.Table, orderTable.ID, itemTable.OrderID, orderTable.Status,
		artworkTable.Table, artworkTable.ID, itemTable.ArtworkID,
		orderTable.CreatedAt, orderTable.CreatedAt,
		artworkTable.ID, artworkTable.Title,
		itemTable.Quantity, itemTable.UnitPriceCents,
	)

	rows, err := repository.db.Query(context, query, from, to, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "top_artworks")
	}
	defer rows.Close()

	var top []TopArtwork
	for rows.Next() {
		row := TopArtwork{}
		if err := rows.Scan(&row.ArtworkID, &row.Title, &row.UnitsSold, &row.RevenueCents); err != nil {
			return nil, dberr.Wrap(err, "scan_top_artwork")
		}
		top = append(top, row)
	}

	return top, nil
}

func (repository *PostgresRepository) OrdersByStatus(context context.Context, from, to time.Time) ([]StatusCount, error) {
	t := schema.Order
	query := fmt.Sprintf(`
		SELECT %s, count(*)::int
		FROM %s
		WHERE %s >= $1 AND %s < $2
		GROUP BY %s
		ORDER BY %s
	`, t.Status, t.Table, t.CreatedAt, t.CreatedAt, t.Status, t.Status)

	return repository.statusCounts(context, query, "orders_by_status", from, to)
}

func (repository *PostgresRepository) ArtworksByStatus(context context.Context) ([]StatusCount, error) {
	t := schema.Artwork
	query := fmt.Sprintf(`
		SELECT %s, count(*)::int
		FROM %s
		WHERE %s IS NULL
		GROUP BY %s
		ORDER BY %s
	`, t.Status, t.Table, t.DeletedAt, t.Status, t.Status)

	return repository.statusCounts(context, query, "artworks_by_status")
}

func (repository *PostgresRepository) statusCounts(context context.Context, query, action string, args ...any) ([]StatusCount, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	var counts []StatusCount
	for rows.Next() {
		c := StatusCount{}
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, dberr.Wrap(err, "scan_status_count")
		}
		counts = append(counts, c)
	}

	return counts, nil
}

func (repository *PostgresRepository) SalesSummary(context context.Context, from, to time.Time) (*SalesSummary, error) {
	t := schema.Order
	query := fmt.Sprintf(`
		SELECT count(*)::int,
		       COALESCE(sum(%s), 0),
		       COALESCE(avg(%s), 0)::bigint,
		       count(DISTINCT %s)::int
		FROM %s
		WHERE %s >= $1 AND %s < $2 AND %s <> 'Cancelled'
	`, t.TotalCents, t.TotalCents, t.BuyerID, t.Table, t.CreatedAt, t.CreatedAt, t.Status)

	summary := &SalesSummary{}
	err := repository.db.QueryRow(context, query, from, to).Scan(
		&summary.Orders, &summary.RevenueCents, &summary.AverageOrderCents, &summary.UniqueBuyers,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "sales_summary")
	}

	return summary, nil
}

func (repository *PostgresRepository) UserActivity(context context.Context, from, to time.Time) (*UserActivity, error) {
	accountTable := schema.UserAccount
	sessionTable := schema.UserSession

	query := fmt.Sprintf(`
		SELECT
			(SELECT count(*)::int FROM %s WHERE %s >= $1 AND %s < $2),
			(SELECT count(*)::int FROM %s WHERE %s >= $1 AND %s < $2 AND %s = 'artist'),
			(SELECT count(*)::int FROM %s WHERE %s >= $1 AND %s < $2)
	`,
		accountTable.Table, accountTable.CreatedAt, accountTable.CreatedAt,
		accountTable.Table, accountTable.CreatedAt, accountTable.CreatedAt, accountTable.Role,
		sessionTable.Table, sessionTable.LoginTime, sessionTable.LoginTime,
	)

	activity := &UserActivity{}
	err := repository.db.QueryRow(context, query, from, to).Scan(
		&activity.NewUsers, &activity.NewArtists, &activity.Logins,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "user_activity")
	}

	return activity, nil
}

func (repository *PostgresRepository) AuctionResults(context context.Context, from, to time.Time, limit int) ([]AuctionResult, error) {
	auctionTable := schema.Auction
	artworkTable := schema.Artwork

	query := fmt.Sprintf(`
		SELECT au.%s, au.%s, a.%s, au.%s, au.%s, au.%s
		FROM %s au
		JOIN %s a ON a.%s = au.%s
		WHERE au.%s = 'Ended' AND au.%s >= $1 AND au.%s < $2
		ORDER BY au.%s DESC
		LIMIT $3
	`,
		auctionTable.ID, auctionTable.ArtworkID, artworkTable.Title,
		auctionTable.CurrentBidCents, auctionTable.BidCount, auctionTable.EndsAt,
		auctionTable.Table,
		artworkTable.Table, artworkTable.ID, auctionTable.ArtworkID,
		auctionTable.Status, auctionTable.EndsAt, auctionTable.EndsAt,
		auctionTable.CurrentBidCents,
	)

	rows, err := repository.db.Query(context, query, from, to, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "auction_results")
	}
	defer rows.Close()

	var results []AuctionResult
	for rows.Next() {
		r := AuctionResult{}
		if err := rows.Scan(&r.AuctionID, &r.ArtworkID, &r.Title, &r.FinalBidCents, &r.BidCount, &r.EndedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_auction_result")
		}
		results = append(results, r)
	}

	return results, nil
}

func (repository *PostgresRepository) RevenueByCategory(context context.Context, from, to time.Time) ([]CategoryRevenue, error) {
	orderTable := schema.Order
	itemTable := schema.OrderItem
	artworkTable := schema.Artwork

	query := fmt.Sprintf(`
		SELECT a.%s,
		       sum(i.%s)::int,
		       sum(i.%s * i.%s)
		FROM %s i
		JOIN %s o ON o.%s = i.%s AND o.%s <> 'Cancelled'
		JOIN %s a ON a.%s = i.%s
		WHERE o.%s >= $1 AND o.%s < $2
		GROUP BY a.%s
		ORDER BY sum(i.%s * i.%s) DESC
	`,
		artworkTable.Category,
		itemTable.Quantity,
		itemTable.Quantity, itemTable.UnitPriceCents,
		itemTable.Table,
		orderTable.Table, orderTable.ID, itemTable.OrderID, orderTable.Status,
		artworkTable.Table, artworkTable.ID, itemTable.ArtworkID,
		orderTable.CreatedAt, orderTable.CreatedAt,
		artworkTable.Category,
		itemTable.Quantity, itemTable.UnitPriceCents,
	)

	rows, err := repository.db.Query(context, query, from, to)
	if err != nil {
		return nil, dberr.Wrap(err, "revenue_by_category")
	}
	defer rows.Close()

	var revenues []CategoryRevenue
	for rows.Next() {
		r := CategoryRevenue{}
		if err := rows.Scan(&r.Category, &r.UnitsSold, &r.RevenueCents); err != nil {
			return nil, dberr.Wrap(err, "scan_category_revenue")
		}
		revenues = append(revenues, r)
	}

	return revenues, nil
}

func (repository *PostgresRepository) InventoryStatus(context context.Context) (*InventoryStatus, error) {
	t := schema.Artwork

	query := fmt.Sprintf(`
		SELECT count(*)::int,
		       count(*) FILTER (WHERE %s = 0)::int,
		       count(*) FILTER (WHERE %s BETWEEN 1 AND 2)::int
		FROM %s
		WHERE %s IS NULL AND %s = 'Approved'
	`, t.Quantity, t.Quantity, t.Table, t.DeletedAt, t.Status)

	status := &InventoryStatus{}
	err := repository.db.QueryRow(context, query).Scan(
		&status.ListedArtworks, &status.OutOfStock, &status.LowStock,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "inventory_status")
	}

	categoryQuery := fmt.Sprintf(`
		SELECT %s, count(*)::int
		FROM %s
		WHERE %s IS NULL AND %s = 'Approved'
		GROUP BY %s
		ORDER BY %s
	`, t.Category, t.Table, t.DeletedAt, t.Status, t.Category, t.Category)

	byCategory, err := repository.statusCounts(context, categoryQuery, "inventory_by_category")
	if err != nil {
		return nil, err
	}
	status.ByCategory = byCategory

	return status, nil
}

func (repository *PostgresRepository) ArtistPerformance(context context.Context, from, to time.Time, limit int) ([]ArtistPerformance, error) {
	orderTable := schema.Order
	itemTable := schema.OrderItem
	artworkTable := schema.Artwork
	accountTable := schema.UserAccount

	query := fmt.Sprintf(`
		SELECT u.%s, u.%s,
		       sum(i.%s)::int,
		       sum(i.%s * i.%s)
		FROM %s i
		JOIN %s o ON o.%s = i.%s AND o.%s <> 'Cancelled'
		JOIN %s a ON a.%s = i.%s
		JOIN %s u ON u.%s = a.%s
		WHERE o.%s >= $1 AND o.%s < $2
		GROUP BY u.%s, u.%s
		ORDER BY sum(i.%s * i.%s) DESC
		LIMIT $3
	`,
		accountTable.ID, accountTable.Name,
		itemTable.Quantity,
		itemTable.Quantity, itemTable.UnitPriceCents,
		itemTable.Table,
		orderTable.Table, orderTable.ID, itemTable.OrderID, orderTable.Status,
		artworkTable.Table, artworkTable.ID, itemTable.ArtworkID,
		accountTable.Table, accountTable.ID, artworkTable.ArtistID,
		orderTable.CreatedAt, orderTable.CreatedAt,
		accountTable.ID, accountTable.Name,
		itemTable.Quantity, itemTable.UnitPriceCents,
	)

	rows, err := repository.db.Query(context, query, from, to, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "artist_performance")
	}
	defer rows.Close()

	var performances []ArtistPerformance
	for rows.Next() {
		p := ArtistPerformance{}
		if err := rows.Scan(&p.ArtistID, &p.Name, &p.UnitsSold, &p.RevenueCents); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_performance")
		}
		performances = append(performances, p)
	}

	return performances, nil
}
