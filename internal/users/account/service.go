package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/sec"
	"github.com/yadawity/yadawity/internal/platform/validate"
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

// GetProfile returns the caller's own profile. Artist profiles are returned
// with achievements attached.
func (service *Service) GetProfile(context context.Context, userID int64) (*Profile, error) {
	profile, err := service.repo.GetProfile(context, userID)
	if err != nil {
		return nil, err
	}

	if profile.Role == string(sec.RoleArtist) {
		achievements, err := service.repo.ListAchievements(context, userID)
		if err != nil {
			return nil, err
		}
		profile.Achievements = achievements
	}

	return profile, nil
}

// GetArtistProfile returns a public artist page. Non-artist accounts are
// hidden behind a NotFound so buyer profiles cannot be enumerated.
func (service *Service) GetArtistProfile(context context.Context, artistID int64) (*Profile, error) {
	profile, err := service.repo.GetProfile(context, artistID)
	if err != nil {
		return nil, err
	}

	if profile.Role != string(sec.RoleArtist) {
		return nil, apperr.NotFound("Artist not found")
	}

	achievements, err := service.repo.ListAchievements(context, artistID)
	if err != nil {
		return nil, err
	}
	profile.Achievements = achievements

	return profile, nil
}

func (service *Service) UpdateProfile(context context.Context, userID int64, input UpdateProfileInput) (*Profile, error) {
	validator := &validate.Validator{}

	if input.Name != nil {
		validator.Required(FieldName, *input.Name).MaxLen(FieldName, *input.Name, 120)
	}
	if input.Bio != nil {
		validator.MaxLen(FieldBio, *input.Bio, 2000)
	}
	if input.Specialty != nil {
		validator.MaxLen(FieldSpecialty, *input.Specialty, 120)
	}
	if input.YearsOfExperience != nil {
		validator.Range(FieldYearsOfExperience, *input.YearsOfExperience, 0, 80)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	profile, err := service.repo.UpdateProfile(context, userID, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("profile_updated", slog.Int64("user_id", userID))
	return profile, nil
}

func (service *Service) ListAchievements(context context.Context, userID int64) ([]Achievement, error) {
	return service.repo.ListAchievements(context, userID)
}

func (service *Service) AddAchievement(context context.Context, userID int64, title string, year int) (*Achievement, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, 200)
	validator.Range(FieldYear, year, 1900, time.Now().Year())

	if err := validator.Err(); err != nil {
		return nil, err
	}

	achievement := &Achievement{
		UserID: userID,
		Title:  title,
		Year:   year,
	}

	if err := service.repo.AddAchievement(context, achievement); err != nil {
		return nil, err
	}

	service.logger.Info("achievement_added", slog.Int64("user_id", userID), slog.String("title", title))
	return achievement, nil
}

// DeleteAchievement removes one of the caller's own achievements. The
// ownership check lives in the SQL predicate, not here.
func (service *Service) DeleteAchievement(context context.Context, userID, achievementID int64) error {
	if err := service.repo.DeleteAchievement(context, userID, achievementID); err != nil {
		return err
	}

	service.logger.Info("achievement_deleted", slog.Int64("user_id", userID), slog.Int64("achievement_id", achievementID))
	return nil
}
