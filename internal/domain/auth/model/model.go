package model

import (
	"time"

	"github.com/google/uuid"
)

// User is returned verbatim by the current-user endpoint, password hash
// included, so the json tags live on the model itself.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	Amount       *float64  `json:"amount,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
