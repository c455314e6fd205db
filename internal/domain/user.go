package domain

import "time"

type UserRole string

const (
	RoleNone  UserRole = ""
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email" validate:"required,email"`
	Name      string    `json:"name,omitempty"`
	Role      UserRole  `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
