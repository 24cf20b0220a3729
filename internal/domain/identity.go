package domain

import "time"

// Role is the authorization role of an identity.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleTechnician Role = "TEKNISI"
)

// IsValid checks if the role is one of the allowed values.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin || r == RoleTechnician
}

// Identity is a resident, administrator or technician as known to the auth collaborator.
type Identity struct {
	ID         string
	FullName   string
	Email      string
	Role       Role
	RoomNumber *string
	CreatedAt  time.Time
}
