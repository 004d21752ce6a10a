package admin

import (
	"context"
	"log/slog"

	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/sec"
	"github.com/yadawity/yadawity/internal/platform/validate"
)

// SessionInvalidator kills every live session of a user. Deactivating an
// account must also deactivate its cookies.
type SessionInvalidator interface {
	DeactivateAll(context context.Context, userID int64) error
}

type Service struct {
	repo     Repository
	sessions SessionInvalidator
	logger   *slog.Logger
}

func NewService(repo Repository, sessions SessionInvalidator, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

func (service *Service) ListUsers(context context.Context, filter UserFilter, limit, offset int) ([]*ManagedUser, int, error) {
	if filter.Status != StatusAny && filter.Status != StatusActive && filter.Status != StatusInactive {
		return nil, 0, validate.RequiredError(FieldStatus, "must be active or inactive")
	}
	return service.repo.ListUsers(context, filter, limit, offset)
}

func (service *Service) GetUser(context context.Context, id int64) (*ManagedUser, error) {
	return service.repo.GetUser(context, id)
}

/*
UpdateArtistStatus applies a verification verdict on an artist account.

Approval marks the artist verified and active in one step, so an approved
artist can list immediately even if their account was dormant. Rejection only
clears the verified flag; the account stays usable as a buyer. Repeating a
verdict is a no-op success.
*/
func (service *Service) UpdateArtistStatus(context context.Context, artistID int64, decision ArtistDecision) error {
	if decision != DecisionApprove && decision != DecisionReject {
		return validate.RequiredError(FieldDecision, "must be approve or reject")
	}

	user, err := service.repo.GetUser(context, artistID)
	if err != nil {
		return err
	}
	if user.Role != string(sec.RoleArtist) {
		return apperr.Unprocessable("User is not an artist")
	}

	switch decision {
	case DecisionApprove:
		if user.IsVerified && user.IsActive {
			return nil
		}
		if err := service.repo.SetArtistStatus(context, artistID, true, true); err != nil {
			return err
		}
	case DecisionReject:
		if !user.IsVerified {
			return nil
		}
		if err := service.repo.SetArtistStatus(context, artistID, false, user.IsActive); err != nil {
			return err
		}
	}

	service.logger.Info("artist_status_updated",
		slog.Int64("artist_id", artistID),
		slog.String("decision", string(decision)),
	)
	return nil
}

// SetUserRole reassigns an account's role. Admin accounts are immutable here
// so a compromised admin session cannot demote the others; promotions to
// admin go through the same manual provisioning path as admin creation.
func (service *Service) SetUserRole(context context.Context, userID int64, role string) error {
	if role != string(sec.RoleBuyer) && role != string(sec.RoleArtist) {
		return validate.RequiredError(FieldRole, "must be buyer or artist")
	}

	user, err := service.repo.GetUser(context, userID)
	if err != nil {
		return err
	}
	if user.Role == string(sec.RoleAdmin) {
		return apperr.Forbidden("Admin accounts cannot be reassigned")
	}
	if user.Role == role {
		return nil
	}

	// Demoting an artist to buyer also clears the verification flag so a
	// later re-promotion goes through review again.
	if err := service.repo.SetUserRole(context, userID, role); err != nil {
		return err
	}

	service.logger.Warn("user_role_updated",
		slog.Int64("user_id", userID),
		slog.String("role", role),
	)
	return nil
}

// SetUserActive enables or disables an account. Disabling also kills every
// live session so outstanding cookies die immediately.
func (service *Service) SetUserActive(context context.Context, userID int64, active bool) error {
	user, err := service.repo.GetUser(context, userID)
	if err != nil {
		return err
	}
	if user.Role == string(sec.RoleAdmin) && !active {
		return apperr.Forbidden("Admin accounts cannot be deactivated")
	}
	if user.IsActive == active {
		return nil
	}

	if err := service.repo.SetUserActive(context, userID, active); err != nil {
		return err
	}

	if !active {
		if err := service.sessions.DeactivateAll(context, userID); err != nil {
			return err
		}
	}

	service.logger.Warn("user_active_updated",
		slog.Int64("user_id", userID),
		slog.Bool("active", active),
	)
	return nil
}
