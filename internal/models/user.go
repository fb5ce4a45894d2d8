package models

import "time"

// User is a site account. Only the seeded operator holds IsAdmin.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash, never serialize
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) Key() string { return u.ID }

// Summary is the public projection returned by the auth endpoints.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email, IsAdmin: u.IsAdmin}
}

// UserSummary is the JSON body for the auth endpoints.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// NewUser is the insertable user shape. Password must already be hashed.
type NewUser struct {
	Username string
	Email    string
	Password string
	IsAdmin  bool
}

func (n NewUser) Build(id string, at time.Time) User {
	return User{
		ID:        id,
		Username:  n.Username,
		Email:     n.Email,
		Password:  n.Password,
		IsAdmin:   n.IsAdmin,
		CreatedAt: at,
	}
}

// UserPatch is store-internal; the API exposes no user update.
type UserPatch struct {
	Email    *string
	Password *string
	IsAdmin  *bool
}

func (p UserPatch) Apply(u User) User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
	return u
}

// RegisterRequest is the JSON body for POST /api/auth/register.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginRequest is the JSON body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
