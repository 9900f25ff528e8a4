package store

import (
	"github.com/ayoisaiah/planner/internal/models"
)

// DB is the persistence gateway for the session collection. Implementations
// always read and write the whole collection.
type DB interface {
	// Load returns every stored session in stored order. A missing backing
	// store yields an empty collection. Records without an id are assigned a
	// fresh one.
	Load() ([]models.Session, error)
	// Save overwrites the backing store with sessions.
	Save(sessions []models.Session) error
	// Close releases the backing store
	Close() error
}
