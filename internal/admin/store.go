package admin

import "context"

type Repository interface {
	ListUsers(context context.Context, f UserFilter, limit, offset int) ([]*ManagedUser, int, error)
	GetUser(context context.Context, id int64) (*ManagedUser, error)

	// SetArtistStatus applies a verification verdict. Approval also
	// reactivates the account; rejection only clears the verified flag.
	SetArtistStatus(context context.Context, artistID int64, verified, active bool) error

	SetUserActive(context context.Context, userID int64, active bool) error

	// SetUserRole reassigns a role; moving off the artist role clears the
	// verification flag.
	SetUserRole(context context.Context, userID int64, role string) error
}
