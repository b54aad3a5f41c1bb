package user

import (
	"time"

	"github.com/techcomputer/portal/core"
)

// User is an account as owned and mutated by the backend; the portal only
// holds request-scoped copies (and the signed-in profile inside the session).
type User struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
	StudentID  string    `json:"studentId,omitempty"` // assigned once an admission is approved
	CreatedAt  time.Time `json:"createdAt"`
}

func (u User) IsAdmin() bool { return u.Role == core.RoleAdmin }

func (u User) Profile() core.Profile {
	return core.Profile{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		StudentID:  u.StudentID,
	}
}

// Login contains the credentials sent to POST /users/login.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (l *Login) Validate() error {
	l.Email = core.CleanString(l.Email, true /* lower */)
	return core.Validate.Struct(l)
}

// Register contains information needed to create a new account.
// A verification email is sent by the backend; the account stays unverified
// until the emailed token is confirmed.
type Register struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,bd_mobile"`
	Password string `json:"password" validate:"required"`
}

func (r *Register) Validate() error {
	r.Name = core.CleanString(r.Name)
	r.Email = core.CleanString(r.Email, true /* lower */)
	r.Phone = core.CleanString(r.Phone)
	return core.Validate.Struct(r)
}
