// models/user.go
package models

import "time"

// Role is the closed set of account roles. Authorization checks switch
// exhaustively on it instead of comparing raw strings.
type Role string

const (
	RoleManager   Role = "manager"
	RoleDataEntry Role = "dataentry"
	RoleSales     Role = "sales"
)

// ParseRole validates a raw role value from a request or document.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleManager, RoleDataEntry, RoleSales:
		return Role(s), true
	}
	return "", false
}

// IsEmployee reports whether the role may be assigned clients.
func (r Role) IsEmployee() bool {
	return r == RoleDataEntry || r == RoleSales
}

// User is an employee or manager account. The ID matches the identity
// provider's subject id.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Role      Role      `bson:"role" json:"role"`
	Salary    float64   `bson:"salary,omitempty" json:"salary,omitempty"`
	Disabled  bool      `bson:"disabled" json:"disabled"`
	CreatedBy string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserPatch describes a partial update to a user document. Nil fields are
// left untouched by the store.
type UserPatch struct {
	Salary    *float64
	Disabled  *bool
	UpdatedAt time.Time
}
