package account

import "context"

type Repository interface {
	GetProfile(context context.Context, userID int64) (*Profile, error)
	UpdateProfile(context context.Context, userID int64, input UpdateProfileInput) (*Profile, error)

	ListAchievements(context context.Context, userID int64) ([]Achievement, error)
	AddAchievement(context context.Context, achievement *Achievement) error
	DeleteAchievement(context context.Context, userID, achievementID int64) error
}
