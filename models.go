package session

// Role is the account's role
type Role = string

const (
	// RoleUser is a regular storefront customer
	RoleUser Role = "USER"
	// RoleAdmin is an administrator (i.e. roster access, role grants)
	RoleAdmin Role = "ADMIN"
)

// IsValidRole checks if the role is one of the predefined valid roles
func IsValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole safely parses a string into a Role
func ParseRole(roleStr string) (Role, bool) {
	role := Role(roleStr)
	return role, IsValidRole(role)
}

// User is the account record as the storefront API returns it
type User struct {
	ID        string `json:"_id,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      Role   `json:"role,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// IsAdmin reports whether the account carries the admin role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName joins the name fields for display
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserPatch is a partial profile edit. Nil fields are left untouched when the
// patch is applied, set fields win last-value-wins.
type UserPatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Role      *Role   `json:"role,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// apply shallow merges the patch into user, field by field
func (p UserPatch) apply(user User) User {
	if p.FirstName != nil {
		user.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		user.LastName = *p.LastName
	}
	if p.Email != nil {
		user.Email = *p.Email
	}
	if p.Role != nil {
		user.Role = *p.Role
	}
	if p.IsActive != nil {
		user.IsActive = p.IsActive
	}
	return user
}

// IsEmpty reports whether the patch carries no edits
func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil &&
		p.LastName == nil &&
		p.Email == nil &&
		p.Role == nil &&
		p.IsActive == nil
}
