// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access, including the back office
	RoleAdmin UserRole = "admin"

	// Can list artworks and auctions for sale once verified
	RoleArtist UserRole = "artist"

	// Default role for standard registered users
	RoleBuyer UserRole = "buyer"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleArtist:
		return 20
	case RoleBuyer:
		return 10
	default:
		return 0
	}
}
