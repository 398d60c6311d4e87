package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleSeeker    = "seeker"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ValidRole(role string) bool {
	return role == RoleSeeker || role == RoleRecruiter
}
