package domain

import (
	"time"
)

// User represents the single account owning the active coaching program.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"` // Should be unique (single-account store enforces it trivially)
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash,omitempty"` // Stored in the blob; never exposed via API DTOs
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
