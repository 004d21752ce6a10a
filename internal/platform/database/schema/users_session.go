package schema

// UserSessionTable represents the 'users.session' table
type UserSessionTable struct {
	Table        string
	ID           string
	UserID       string
	SessionToken string
	IPAddress    string
	UserAgent    string
	IsActive     string
	LoginTime    string
	ExpiresAt    string
	CreatedAt    string
}

// UserSession is the schema definition for users.session
var UserSession = UserSessionTable{
	Table:        "users.session",
	ID:           "id",
	UserID:       "userid",
	SessionToken: "sessiontoken",
	IPAddress:    "ipaddress",
	UserAgent:    "useragent",
	IsActive:     "isactive",
	LoginTime:    "logintime",
	ExpiresAt:    "expiresat",
	CreatedAt:    "createdat",
}

// Columns returns all standard column names
func (t UserSessionTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.SessionToken, t.IPAddress, t.UserAgent, t.IsActive,
		t.LoginTime, t.ExpiresAt, t.CreatedAt,
	}
}
