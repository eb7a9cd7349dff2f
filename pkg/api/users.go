package api

import "time"

// User is the server-side user record as seen by the admin console.
type User struct {
	CreatedAt   time.Time `json:"created_at"`
	FirstName   *string   `json:"first_name,omitempty"`
	LastName    *string   `json:"last_name,omitempty"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	ID          int64     `json:"id"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
}

// UserCreate is the body of POST /v1/users/.
// Validation is the server's job; optional fields are omitted when nil.
type UserCreate struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	Password    string  `json:"password"`
}

// UserUpdate is the body of PUT /v1/users/{id}. Only non-nil fields are sent.
type UserUpdate struct {
	Email       *string `json:"email,omitempty"`
	Username    *string `json:"username,omitempty"`
	Password    *string `json:"password,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
}
