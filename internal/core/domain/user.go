package domain

import (
	"errors"
	"time"
)

// Role is the closed set of principal roles.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleEmployee    Role = "employee"
	RoleMaintenance Role = "maintenance"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleMaintenance:
		return true
	}
	return false
}

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidRole = errors.New("invalid role")
var ErrSamePassword = errors.New("new password must differ from the current password")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")
var ErrMissingFields = errors.New("required fields missing")

// The legacy web client matches on these exact strings; do not translate.
var ErrEmailInUse = errors.New("Email já está em uso")
var ErrWrongPassword = errors.New("Senha incorreta")

// User models an authenticated principal.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
