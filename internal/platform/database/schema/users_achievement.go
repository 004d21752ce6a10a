package schema

// UserAchievementTable represents the 'users.achievement' table
type UserAchievementTable struct {
	Table     string
	ID        string
	UserID    string
	Title     string
	Year      string
	CreatedAt string
}

// UserAchievement is the schema definition for users.achievement
var UserAchievement = UserAchievementTable{
	Table:     "users.achievement",
	ID:        "id",
	UserID:    "userid",
	Title:     "title",
	Year:      "year",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t UserAchievementTable) Columns() []string {
	return []string{t.ID, t.UserID, t.Title, t.Year, t.CreatedAt}
}
