package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Back-office admin - full access to master data
	RoleStaff Role = "staff" // Billing staff - read access and invoice drafting
)

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user can manage master data (clients, rates, employees).
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
