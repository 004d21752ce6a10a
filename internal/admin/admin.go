package admin

import "time"

// ManagedUser is the moderation view of an account. Unlike the public
// profile it exposes email, activity and verification state.
type ManagedUser struct {
	ID                int64     `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	IsVerified        bool      `json:"is_verified"`
	IsActive          bool      `json:"is_active"`
	Specialty         *string   `json:"specialty"`
	YearsOfExperience *int      `json:"years_of_experience"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AccountStatus filters users by their activity flag.
type AccountStatus string

const (
	StatusAny      AccountStatus = ""
	StatusActive   AccountStatus = "active"
	StatusInactive AccountStatus = "inactive"
)

// UserFilter holds the parameters for a paginated user search.
type UserFilter struct {
	Query  string        // ILIKE search against name and email
	Status AccountStatus // active, inactive, or any
	Role   string        // exact role match, empty for any
}

// ArtistDecision is a moderation verdict on an artist account.
type ArtistDecision string

const (
	DecisionApprove ArtistDecision = "approve"
	DecisionReject  ArtistDecision = "reject"
)

const (
	FieldEmail    = "email"
	FieldName     = "name"
	FieldRole     = "role"
	FieldStatus   = "status"
	FieldDecision = "decision"
	FieldIsActive = "is_active"
)
