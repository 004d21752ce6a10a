package auction

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/database/schema"
	"github.com/yadawity/yadawity/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func auctionColumns() string {
	t := schema.Auction
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.ArtworkID, t.StartingPriceCents, t.CurrentBidCents, t.BidCount,
		t.StartsAt, t.EndsAt, t.Status, t.CreatedAt, t.UpdatedAt,
	)
}

func scanAuction(row interface{ Scan(...any) error }) (*Auction, error) {
	a := &Auction{}
	err := row.Scan(
		&a.ID, &a.ArtworkID, &a.StartingPriceCents, &a.CurrentBidCents, &a.BidCount,
		&a.StartsAt, &a.EndsAt, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (repository *PostgresRepository) ListAuctions(context context.Context, f Filter, limit, offset int) ([]*Auction, int, error) {
	t := schema.Auction

	where := "TRUE"
	args := []any{}

	if f.Status != "" {
		args = append(args, string(f.Status))
		where += fmt.Sprintf(" AND %s = $%d", t.Status, len(args))
	}
	if f.ArtworkID != 0 {
		args = append(args, f.ArtworkID)
		where += fmt.Sprintf(" AND %s = $%d", t.ArtworkID, len(args))
	}

	countQuery := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", t.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_auctions")
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s
		ORDER BY %s ASC
		LIMIT $%d OFFSET $%d
	`, auctionColumns(), t.Table, where, t.EndsAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_auctions")
	}
	defer rows.Close()

	var auctions []*Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_auction")
		}
		auctions = append(auctions, a)
	}

	return auctions, total, nil
}

func (repository *PostgresRepository) GetAuction(context context.Context, id int64) (*Auction, error) {
	t := schema.Auction
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, auctionColumns(), t.Table, t.ID)

	a, err := scanAuction(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_auction")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateAuction(context context.Context, a *Auction) error {
	t := schema.Auction
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, 0, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.ArtworkID, t.StartingPriceCents, t.CurrentBidCents, t.BidCount,
		t.StartsAt, t.EndsAt, t.Status, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ArtworkID, a.StartingPriceCents, a.CurrentBidCents,
		a.StartsAt, a.EndsAt, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	return dberr.Wrap(err, "create_auction")
}

/*
PlaceBid records a bid and raises the auction price in one transaction.

The UPDATE carries the monotonicity guard in its predicate: it only matches
while currentbidcents is still below the offered amount. A concurrent bid that
landed first makes the predicate fail, the update affects zero rows, and this
bid loses with a Conflict instead of silently rewriting history.
*/
func (repository *PostgresRepository) PlaceBid(context context.Context, bid *Bid) error {
	auctionTable := schema.Auction
	bidTable := schema.Bid

	tx, err := repository.db.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return dberr.Wrap(err, "place_bid_begin")
	}
	defer tx.Rollback(context)

	raiseQuery := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = %s + 1, %s = NOW()
		WHERE %s = $1 AND %s < $2
	`,
		auctionTable.Table,
		auctionTable.CurrentBidCents, auctionTable.BidCount, auctionTable.BidCount, auctionTable.UpdatedAt,
		auctionTable.ID, auctionTable.CurrentBidCents,
	)

	cmd, err := tx.Exec(context, raiseQuery, bid.AuctionID, bid.AmountCents)
	if err != nil {
		return dberr.Wrap(err, "place_bid_raise")
	}
	if cmd.RowsAffected() == 0 {
		return apperr.Conflict("A higher bid was already placed")
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s, %s
	`,
		bidTable.Table, bidTable.AuctionID, bidTable.BidderID, bidTable.AmountCents, bidTable.CreatedAt,
		bidTable.ID, bidTable.CreatedAt,
	)

	err = tx.QueryRow(context, insertQuery, bid.AuctionID, bid.BidderID, bid.AmountCents).Scan(&bid.ID, &bid.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "place_bid_insert")
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "place_bid_commit")
	}
	return nil
}

func (repository *PostgresRepository) ListBids(context context.Context, auctionID int64, limit, offset int) ([]*Bid, int, error) {
	t := schema.Bid

	countQuery := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s = $1", t.Table, t.AuctionID)

	var total int
	if err := repository.db.QueryRow(context, countQuery, auctionID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_bids")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`,
		t.ID, t.AuctionID, t.BidderID, t.AmountCents, t.CreatedAt,
		t.Table, t.AuctionID, t.AmountCents,
	)

	rows, err := repository.db.Query(context, query, auctionID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_bids")
	}
	defer rows.Close()

	var bids []*Bid
	for rows.Next() {
		b := &Bid{}
		if err := rows.Scan(&b.ID, &b.AuctionID, &b.BidderID, &b.AmountCents, &b.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_bid")
		}
		bids = append(bids, b)
	}

	return bids, total, nil
}

func (repository *PostgresRepository) CloseExpired(context context.Context) (int64, error) {
	t := schema.Auction
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = NOW()
		WHERE %s IN ($2, $3) AND %s <= NOW()
	`, t.Table, t.Status, t.UpdatedAt, t.Status, t.EndsAt)

	cmd, err := repository.db.Exec(context, query,
		string(StatusEnded), string(StatusScheduled), string(StatusLive),
	)
	if err != nil {
		return 0, dberr.Wrap(err, "close_expired_auctions")
	}

	return cmd.RowsAffected(), nil
}
