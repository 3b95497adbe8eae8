package domain

import "time"

// Role is the capability level of a session.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSeller   Role = "SELLER"
	RoleAdmin    Role = "ADMIN"
)

var roleRank = map[Role]int{
	RoleCustomer: 1,
	RoleSeller:   2,
	RoleAdmin:    3,
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// HasPermission reports whether r grants at least the capabilities of required.
// Admin is a superset of Seller, which is a superset of Customer.
func (r Role) HasPermission(required Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	need, ok := roleRank[required]
	if !ok {
		return false
	}
	return have >= need
}

// Label returns the role as shown in the UI.
func (r Role) Label() string {
	switch r {
	case RoleCustomer:
		return "Customer"
	case RoleSeller:
		return "Seller"
	case RoleAdmin:
		return "Admin"
	}
	return string(r)
}

// Session is the authenticated identity held for one client.
// A session is never mutated in place; a role change means a new session.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsComplete reports whether every required field is present.
// Name is optional.
func (s Session) IsComplete() bool {
	return s.ID != "" &&
		s.Username != "" &&
		s.Email != "" &&
		s.Role.IsValid() &&
		!s.CreatedAt.IsZero()
}

// DisplayName returns Name, or Username when no name was given.
func (s Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Username
}
