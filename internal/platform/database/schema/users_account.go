// Package schema centralizes table and column identifiers used by the
// Postgres repositories, keeping SQL strings free of hand-typed names.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table             string
	ID                string
	Email             string
	PasswordHash      string
	Name              string
	Role              string
	IsVerified        string
	IsActive          string
	Bio               string
	Specialty         string
	YearsOfExperience string
	CreatedAt         string
	UpdatedAt         string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:             "users.account",
	ID:                "id",
	Email:             "email",
	PasswordHash:      "passwordhash",
	Name:              "name",
	Role:              "role",
	IsVerified:        "isverified",
	IsActive:          "isactive",
	Bio:               "bio",
	Specialty:         "specialty",
	YearsOfExperience: "yearsofexperience",
	CreatedAt:         "createdat",
	UpdatedAt:         "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.PasswordHash, t.Name, t.Role, t.IsVerified, t.IsActive,
		t.Bio, t.Specialty, t.YearsOfExperience, t.CreatedAt, t.UpdatedAt,
	}
}
