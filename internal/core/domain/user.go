package domain

import "time"

// RoleCustomer is the role stamped on every self-registered account.
// Registration never honours a client-supplied role.
const RoleCustomer = "customer"

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the externally visible view of a User. The password hash never
// appears in any response payload.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Profile returns the response view for the user.
func (u *User) Profile() Profile {
	return Profile{Username: u.Username, Email: u.Email, Role: u.Role}
}
