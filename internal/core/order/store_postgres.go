package order

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

/*
Checkout persists the order, its items, and the stock decrements in a single
transaction.

The decrement UPDATE guards availability in its predicate (quantity >= wanted);
zero rows affected means another checkout drained the stock first, and the
whole transaction rolls back with a client-safe Unprocessable error.
*/
func (repository *PostgresRepository) Checkout(context context.Context, order *Order) error {
	orderTable := schema.Order
	itemTable := schema.OrderItem
	artworkTable := schema.Artwork

	tx, err := repository.db.BeginTx(context, pgx.TxOptions{})
	if err != nil {
		return dberr.Wrap(err, "checkout_begin")
	}
	defer tx.Rollback(context)

	insertOrder := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		orderTable.Table, orderTable.BuyerID, orderTable.TotalCents, orderTable.Status,
		orderTable.CreatedAt, orderTable.UpdatedAt,
		orderTable.ID, orderTable.CreatedAt, orderTable.UpdatedAt,
	)

	err = tx.QueryRow(context, insertOrder, order.BuyerID, order.TotalCents, string(order.Status)).
		Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "checkout_insert_order")
	}

	decrementStock := fmt.Sprintf(`
		UPDATE %s SET %s = %s - $2, %s = NOW()
		WHERE %s = $1 AND %s IS NULL AND %s >= $2
	`,
		artworkTable.Table, artworkTable.Quantity, artworkTable.Quantity, artworkTable.UpdatedAt,
		artworkTable.ID, artworkTable.DeletedAt, artworkTable.Quantity,
	)

	insertItem := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		itemTable.Table, itemTable.OrderID, itemTable.ArtworkID, itemTable.Quantity, itemTable.UnitPriceCents,
		itemTable.ID,
	)

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID

		cmd, err := tx.Exec(context, decrementStock, item.ArtworkID, item.Quantity)
		if err != nil {
			return dberr.Wrap(err, "checkout_decrement_stock")
		}
		if cmd.RowsAffected() == 0 {
			return apperr.Unprocessable("An item in your cart is no longer available")
		}

		err = tx.QueryRow(context, insertItem, item.OrderID, item.ArtworkID, item.Quantity, item.UnitPriceCents).
			Scan(&item.ID)
		if err != nil {
			return dberr.Wrap(err, "checkout_insert_item")
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "checkout_commit")
	}
	return nil
}

func (repository *PostgresRepository) ListOrders(context context.Context, f Filter, limit, offset int) ([]*Order, int, error) {
	t := schema.Order

	where := "TRUE"
	args := []any{}

	if f.BuyerID != 0 {
		args = append(args, f.BuyerID)
		where += fmt.Sprintf(" AND %s = $%d", t.BuyerID, len(args))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		where += fmt.Sprintf(" AND %s = $%d", t.Status, len(args))
	}

	countQuery := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", t.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_orders")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d
	`,
		t.ID, t.BuyerID, t.TotalCents, t.Status, t.CreatedAt, t.UpdatedAt,
		t.Table, where, t.CreatedAt, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_orders")
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.TotalCents, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_order")
		}
		orders = append(orders, o)
	}

	return orders, total, nil
}

func (repository *PostgresRepository) ListSales(context context.Context, artistID int64, limit, offset int) ([]*Order, int, error) {
	orderTable := schema.Order
	itemTable := schema.OrderItem
	artworkTable := schema.Artwork

	// DISTINCT because one order can hold several of the artist's pieces.
	salesPredicate := fmt.Sprintf(`
		%s IN (
			SELECT DISTINCT i.%s
			FROM %s i
			JOIN %s a ON a.%s = i.%s
			WHERE a.%s = $1
		)
	`,
		orderTable.ID,
		itemTable.OrderID,
		itemTable.Table,
		artworkTable.Table, artworkTable.ID, itemTable.ArtworkID,
		artworkTable.ArtistID,
	)

	countQuery := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", orderTable.Table, salesPredicate)

	var total int
	if err := repository.db.QueryRow(context, countQuery, artistID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_sales")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`,
		orderTable.ID, orderTable.BuyerID, orderTable.TotalCents, orderTable.Status,
		orderTable.CreatedAt, orderTable.UpdatedAt,
		orderTable.Table, salesPredicate, orderTable.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, artistID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_sales")
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.TotalCents, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_sale")
		}
		orders = append(orders, o)
	}

	return orders, total, nil
}

func (repository *PostgresRepository) GetOrder(context context.Context, id int64) (*Order, error) {
	orderTable := schema.Order
	itemTable := schema.OrderItem

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		orderTable.ID, orderTable.BuyerID, orderTable.TotalCents, orderTable.Status,
		orderTable.CreatedAt, orderTable.UpdatedAt,
		orderTable.Table, orderTable.ID,
	)

	o := &Order{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&o.ID, &o.BuyerID, &o.TotalCents, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_order")
	}

	itemsQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		itemTable.ID, itemTable.OrderID, itemTable.ArtworkID, itemTable.Quantity, itemTable.UnitPriceCents,
		itemTable.Table, itemTable.OrderID, itemTable.ID,
	)

	rows, err := repository.db.Query(context, itemsQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_order_items")
	}
	defer rows.Close()

	for rows.Next() {
		item := Item{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ArtworkID, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, dberr.Wrap(err, "scan_order_item")
		}
		o.Items = append(o.Items, item)
	}

	return o, nil
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id int64, status Status) error {
	t := schema.Order
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, t.Status, t.UpdatedAt, t.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, string(status))
	if err != nil {
		return dberr.Wrap(err, "update_order_status")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
