package entity

import (
	"time"

	"github.com/google/uuid"
)

type ProfileType string

const (
	ProfileTypeCustomer ProfileType = "customer"
	ProfileTypeBusiness ProfileType = "business"
)

// Profile is the 1:1 extension of a user account. Type is fixed at
// registration and never changes afterwards.
type Profile struct {
	UserID       uuid.UUID   `db:"user_id"`
	Type         ProfileType `db:"type"`
	Location     string      `db:"location"`
	Tel          string      `db:"tel"`
	Description  string      `db:"description"`
	WorkingHours string      `db:"working_hours"`
	File         *string     `db:"file"`
	CreatedAt    time.Time   `db:"created_at"`
}

// ProfileDetail is a profile joined with its user's account fields, so
// listings and detail views need a single query.
type ProfileDetail struct {
	Profile
	Username  string `db:"username"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
}
