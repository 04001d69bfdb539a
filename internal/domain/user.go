package domain

// User is an account known to the system. Self-registered accounts are
// always customers; staff and admin accounts are promoted by an admin.
type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
}

// Caller identifies the principal behind a request. The zero value is
// the anonymous caller.
type Caller struct {
	Authenticated bool
	UserID        int
	Role          Role
}

// Staff reports whether the caller holds staff or admin privileges.
func (c Caller) Staff() bool {
	return c.Authenticated && (c.Role == RoleStaff || c.Role == RoleAdmin)
}

// Admin reports whether the caller is an administrator.
func (c Caller) Admin() bool {
	return c.Authenticated && c.Role == RoleAdmin
}

// Anonymous is the caller for requests without a valid session.
var Anonymous = Caller{}
