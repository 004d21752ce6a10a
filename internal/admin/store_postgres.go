package admin

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

func managedUserColumns() string {
	t := schema.UserAccount
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Email, t.Name, t.Role, t.IsVerified, t.IsActive,
		t.Specialty, t.YearsOfExperience, t.CreatedAt, t.UpdatedAt,
	)
}

func scanManagedUser(row interface{ Scan(...any) error }) (*ManagedUser, error) {
	u := &ManagedUser{}
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.IsVerified, &u.IsActive,
		&u.Specialty, &u.YearsOfExperience, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (repository *PostgresRepository) ListUsers(context context.Context, f UserFilter, limit, offset int) ([]*ManagedUser, int, error) {
	t := schema.UserAccount

	where := "TRUE"
	args := []any{}

	switch f.Status {
	case StatusActive:
		where += fmt.Sprintf(" AND %s = TRUE", t.IsActive)
	case StatusInactive:
		where += fmt.Sprintf(" AND %s = FALSE", t.IsActive)
	}

	if f.Role != "" {
		args = append(args, f.Role)
		where += fmt.Sprintf(" AND %s = $%d", t.Role, len(args))
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := strconv.Itoa(len(args))
		where += fmt.Sprintf(" AND (%s ILIKE $%s OR %s ILIKE $%s)", t.Name, n, t.Email, n)
	}

	countQuery := fmt.Sprintf("SELECT count(*) FROM %s WHERE %s", t.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d
	`, managedUserColumns(), t.Table, where, t.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*ManagedUser
	for rows.Next() {
		u, err := scanManagedUser(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	return users, total, nil
}

// GetUser intentionally skips the isactive filter; moderation needs to see
// disabled accounts too.
func (repository *PostgresRepository) GetUser(context context.Context, id int64) (*ManagedUser, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, managedUserColumns(), t.Table, t.ID)

	u, err := scanManagedUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user")
	}
	return u, nil
}

func (repository *PostgresRepository) SetArtistStatus(context context.Context, artistID int64, verified, active bool) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = NOW() WHERE %s = $1`,
		t.Table, t.IsVerified, t.IsActive, t.UpdatedAt, t.ID,
	)

	cmd, err := repository.db.Exec(context, query, artistID, verified, active)
	if err != nil {
		return dberr.Wrap(err, "set_artist_status")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// SetUserRole clears the verification flag alongside the role change so a
// demoted artist does not keep a stale verified badge.
func (repository *PostgresRepository) SetUserRole(context context.Context, userID int64, role string) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = FALSE, %s = NOW() WHERE %s = $1`,
		t.Table, t.Role, t.IsVerified, t.UpdatedAt, t.ID,
	)

	cmd, err := repository.db.Exec(context, query, userID, role)
	if err != nil {
		return dberr.Wrap(err, "set_user_role")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetUserActive(context context.Context, userID int64, active bool) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		t.Table, t.IsActive, t.UpdatedAt, t.ID,
	)

	cmd, err := repository.db.Exec(context, query, userID, active)
	if err != nil {
		return dberr.Wrap(err, "set_user_active")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
