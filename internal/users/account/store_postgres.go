package account

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) GetProfile(context context.Context, userID int64) (*Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = TRUE
	`,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Role,
		schema.UserAccount.IsVerified, schema.UserAccount.Bio, schema.UserAccount.Specialty,
		schema.UserAccount.YearsOfExperience, schema.UserAccount.CreatedAt,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.UserAccount.IsActive,
	)

	profile := &Profile{}
	err := repository.db.QueryRow(context, query, userID).Scan(
		&profile.ID, &profile.Name, &profile.Role, &profile.IsVerified,
		&profile.Bio, &profile.Specialty, &profile.YearsOfExperience, &profile.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_profile")
	}

	return profile, nil
}

func (repository *PostgresRepository) UpdateProfile(context context.Context, userID int64, input UpdateProfileInput) (*Profile, error) {
	// COALESCE keeps unsupplied fields untouched without building dynamic SQL.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s),
		    %s = COALESCE($5, %s),
		    %s = NOW()
		WHERE %s = $1 AND %s = TRUE
		RETURNING %s, %s, %s, %s, %s, %s, %s, %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Name, schema.UserAccount.Name,
		schema.UserAccount.Bio, schema.UserAccount.Bio,
		schema.UserAccount.Specialty, schema.UserAccount.Specialty,
		schema.UserAccount.YearsOfExperience, schema.UserAccount.YearsOfExperience,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID, schema.UserAccount.IsActive,
		schema.UserAccount.ID, schema.UserAccount.Name, schema.UserAccount.Role,
		schema.UserAccount.IsVerified, schema.UserAccount.Bio, schema.UserAccount.Specialty,
		schema.UserAccount.YearsOfExperience, schema.UserAccount.CreatedAt,
	)

	profile := &Profile{}
	err := repository.db.QueryRow(context, query,
		userID, input.Name, input.Bio, input.Specialty, input.YearsOfExperience,
	).Scan(
		&profile.ID, &profile.Name, &profile.Role, &profile.IsVerified,
		&profile.Bio, &profile.Specialty, &profile.YearsOfExperience, &profile.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_profile")
	}

	return profile, nil
}

func (repository *PostgresRepository) ListAchievements(context context.Context, userID int64) ([]Achievement, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC
	`,
		schema.UserAchievement.ID, schema.UserAchievement.UserID, schema.UserAchievement.Title,
		schema.UserAchievement.Year, schema.UserAchievement.CreatedAt,
		schema.UserAchievement.Table, schema.UserAchievement.UserID,
		schema.UserAchievement.Year, schema.UserAchievement.ID,
	)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_achievements")
	}
	defer rows.Close()

	achievements := []Achievement{}
	for rows.Next() {
		a := Achievement{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Year, &a.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_achievement")
		}
		achievements = append(achievements, a)
	}

	return achievements, nil
}

func (repository *PostgresRepository) AddAchievement(context context.Context, achievement *Achievement) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s, %s
	`,
		schema.UserAchievement.Table, schema.UserAchievement.UserID, schema.UserAchievement.Title,
		schema.UserAchievement.Year, schema.UserAchievement.CreatedAt,
		schema.UserAchievement.ID, schema.UserAchievement.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		achievement.UserID, achievement.Title, achievement.Year,
	).Scan(&achievement.ID, &achievement.CreatedAt)

	return dberr.Wrap(err, "add_achievement")
}

func (repository *PostgresRepository) DeleteAchievement(context context.Context, userID, achievementID int64) error {
	// Ownership is part of the predicate: deleting someone else's milestone
	// is indistinguishable from deleting a missing one.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.UserAchievement.Table, schema.UserAchievement.ID, schema.UserAchievement.UserID,
	)

	cmd, err := repository.db.Exec(context, query, achievementID, userID)
	if err != nil {
		return dberr.Wrap(err, "delete_achievement")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
