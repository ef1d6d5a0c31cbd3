package entity

import (
	"github.com/google/uuid"
)

// Review is a 1-5 rating one user leaves for a business user. The
// (business_user_id, reviewer_id) pair is unique.
type Review struct {
	BaseNoDelete
	BusinessUserID uuid.UUID `db:"business_user_id"`
	ReviewerID     uuid.UUID `db:"reviewer_id"`
	Rating         int       `db:"rating"`
	Description    string    `db:"description"`
}
