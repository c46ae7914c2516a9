package domain

import "time"

// UserRole represents the role of a user
// The role is fixed at account creation: admins are provisioned explicitly,
// never promoted by matching a magic key at registration time
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
)

// User represents a registered account
type User struct {
	ID           int64
	Name         string
	Email        string // stored lowercase, unique case-insensitively
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
