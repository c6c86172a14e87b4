package port

import "retoque/internal/core/domain"

type SessionStore interface {
	// Get retrieves a live session by its ID.
	Get(id string) (*domain.Session, bool)
	// Create issues a fresh idle session with a pre-seeded default prompt.
	Create() (*domain.Session, error)
}
