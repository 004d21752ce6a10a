package account

import "time"

// Profile is the public-safe projection of a user account. It never carries
// credentials or moderation-only fields.
type Profile struct {
	ID                int64         `json:"id"`
	Name              string        `json:"name"`
	Role              string        `json:"role"`
	IsVerified        bool          `json:"is_verified"`
	Bio               *string       `json:"bio"`
	Specialty         *string       `json:"specialty"`
	YearsOfExperience *int          `json:"years_of_experience"`
	CreatedAt         time.Time     `json:"created_at"`
	Achievements      []Achievement `json:"achievements,omitempty"`
}

// Achievement is a single career milestone shown on an artist's profile.
type Achievement struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileInput carries the self-editable profile fields. Nil pointers
// mean "leave unchanged".
type UpdateProfileInput struct {
	Name              *string `json:"name"`
	Bio               *string `json:"bio"`
	Specialty         *string `json:"specialty"`
	YearsOfExperience *int    `json:"years_of_experience"`
}

const (
	FieldName              = "name"
	FieldBio               = "bio"
	FieldSpecialty         = "specialty"
	FieldYearsOfExperience = "years_of_experience"
	FieldTitle             = "title"
	FieldYear              = "year"
)
