package models

import "time"

// Roles a user account can hold. Authorization is a capability check on
// this value before every mutating repository call.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Email        string    `json:"email"`
	LastLogin    time.Time `json:"last_login"`
	ProfilePic   []byte    `json:"-"`
}
