// Package store persists the session collection to a JSON file or a bolt
// database.
package store

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/ayoisaiah/planner/internal/models"
)

const (
	BackendJSON = "json"
	BackendBolt = "bolt"
)

// Open returns the gateway for backend, stored at path.
func Open(backend, path string) (DB, error) {
	switch backend {
	case BackendJSON:
		return NewJSONFile(path), nil
	case BackendBolt:
		c, err := NewClient(path)
		if err != nil {
			return nil, err
		}

		return c, nil
	default:
		return nil, errUnknownBackend.Fmt(backend)
	}
}

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.NewString()
}

// repairIDs assigns a fresh id to every record that has none.
func repairIDs(sessions []models.Session) {
	for i := range sessions {
		if sessions[i].ID != "" {
			continue
		}

		sessions[i].ID = NewID()

		slog.Debug(
			"assigned id to stored session",
			slog.String("id", sessions[i].ID),
			slog.String("subject", sessions[i].Subject),
		)
	}
}
