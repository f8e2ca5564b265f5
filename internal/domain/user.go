package domain

import "time"

// Role determines which API surface a user can reach
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Valid returns true for a known role
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User represents a registered customer account.
// The admin identity is fixed in configuration and never stored here.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        *string
	Cars         []Car
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Car represents a vehicle registered to a user
type Car struct {
	ID    int64
	Brand string
	Model string
	Year  *int
	Plate *string
}
