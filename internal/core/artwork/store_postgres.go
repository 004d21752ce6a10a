package artwork

import (
	"context"
	"fmt"
	"strconv"

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

func artworkColumns() string {
	t := schema.Artwork
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.ArtistID, t.Title, t.Slug, t.Description, t.Category,
		t.PriceCents, t.Quantity, t.Status, t.IsAuction, t.CreatedAt, t.UpdatedAt,
	)
}

func scanArtwork(row interface{ Scan(...any) error }) (*Artwork, error) {
	a := &Artwork{}
	err := row.Scan(
		&a.ID, &a.ArtistID, &a.Title, &a.Slug, &a.Description, &a.Category,
		&a.PriceCents, &a.Quantity, &a.Status, &a.IsAuction, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (repository *PostgresRepository) ListArtworks(context context.Context, f Filter, limit, offset int) ([]*Artwork, int, error) {
	t := schema.Artwork

	where := fmt.Sprintf("%s IS NULL", t.DeletedAt)
	args := []any{}

	addClause := func(clause string, value any) {
		args = append(args, value)
		where += fmt.Sprintf(" AND %s $%d", clause, len(args))
	}

	if f.Status != "" {
		addClause(t.Status+" =", string(f.Status))
	}
	if f.Category != "" {
		addClause(t.Category+" =", f.Category)
	}
	if f.ArtistID != 0 {
		addClause(t.ArtistID+" =", f.ArtistID)
	}
	if f.IsAuction != nil {
		addClause(t.IsAuction+" =", *f.IsAuction)
	}
	if f.MinPriceCents > 0 {
		addClause(t.PriceCents+" >=", f.MinPriceCents)
	}
	if f.MaxPriceCents > 0 {
		addClause(t.PriceCents+" <=", f.MaxPriceCents)
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := strconv.Itoa(len(args))
		where += fmt.Sprintf(" AND (%s ILIKE $%s OR %s ILIKE $%s)", t.Title, n, t.Description, n)
	}

	countQuery := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", t.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_artworks")
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d
	`, artworkColumns(), t.Table, where, t.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_artworks")
	}
	defer rows.Close()

	var artworks []*Artwork
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_artwork")
		}
		artworks = append(artworks, a)
	}

	return artworks, total, nil
}

func (repository *PostgresRepository) GetArtwork(context context.Context, id int64) (*Artwork, error) {
	t := schema.Artwork
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		artworkColumns(), t.Table, t.ID, t.DeletedAt,
	)

	a, err := scanArtwork(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_artwork")
	}
	return a, nil
}

func (repository *PostgresRepository) GetArtworkBySlug(context context.Context, slug string) (*Artwork, error) {
	t := schema.Artwork
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		artworkColumns(), t.Table, t.Slug, t.DeletedAt,
	)

	a, err := scanArtwork(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_artwork_by_slug")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateArtwork(context context.Context, a *Artwork) error {
	t := schema.Artwork
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.ArtistID, t.Title, t.Slug, t.Description, t.Category,
		t.PriceCents, t.Quantity, t.Status, t.IsAuction, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ArtistID, a.Title, a.Slug, a.Description, a.Category,
		a.PriceCents, a.Quantity, a.Status, a.IsAuction,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	return dberr.Wrap(err, "create_artwork")
}

func (repository *PostgresRepository) UpdateArtwork(context context.Context, a *Artwork) error {
	t := schema.Artwork
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		t.Table, t.Title, t.Slug, t.Description, t.Category, t.PriceCents,
		t.Quantity, t.Status, t.IsAuction, t.UpdatedAt,
		t.ID, t.DeletedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Title, a.Slug, a.Description, a.Category, a.PriceCents,
		a.Quantity, a.Status, a.IsAuction,
	).Scan(&a.UpdatedAt)

	return dberr.Wrap(err, "update_artwork")
}

func (repository *PostgresRepository) UpdateStatus(context context.Context, id int64, status Status) error {
	t := schema.Artwork
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.Status, t.UpdatedAt, t.ID, t.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id, string(status))
	if err != nil {
		return dberr.Wrap(err, "update_artwork_status")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteArtwork(context context.Context, artistID, id int64) error {
	// Ownership lives in the predicate; admins pass artistID 0 to bypass it.
	t := schema.Artwork
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.DeletedAt, t.ID, t.DeletedAt,
	)
	args := []any{id}

	if artistID != 0 {
		query += fmt.Sprintf(` AND %s = $2`, t.ArtistID)
		args = append(args, artistID)
	}

	cmd, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, "delete_artwork")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
