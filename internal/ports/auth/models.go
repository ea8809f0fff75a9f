package auth

// Role of an authenticated user.
type Role string

const (
	RoleParent Role = "parent"
	RoleStaff  Role = "staff"
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)

// Claims is the information extracted from a verified token.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}

// IsStaff reports whether the role can manage children and record
// measurements (anything that is not a parent-facing read).
func IsStaff(r Role) bool {
	return r == RoleStaff || r == RoleDoctor || r == RoleAdmin
}
