package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/osutil"
)

var (
	sessionBucket = []byte("sessions")
	sessionsKey   = []byte("sessions")
)

// Client is a BoltDB database client. The session collection lives as one
// JSON document so that every save swaps the whole collection in a single
// transaction.
type Client struct {
	*bolt.DB
	path string
}

func (c *Client) Load() ([]models.Session, error) {
	var data []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(sessionBucket).Get(sessionsKey)
		// v is only valid for the life of the transaction
		data = append([]byte(nil), v...)

		return nil
	})
	if err != nil {
		return nil, ErrRead.Fmt(c.path).Wrap(err)
	}

	if len(data) == 0 {
		return []models.Session{}, nil
	}

	sessions, err := decode(data)
	if err != nil {
		return nil, ErrRead.Fmt(c.path).Wrap(err)
	}

	return sessions, nil
}

func (c *Client) Save(sessions []models.Session) error {
	value, err := encode(sessions)
	if err != nil {
		return ErrWrite.Fmt(c.path).Wrap(err)
	}

	err = c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Put(sessionsKey, value)
	})
	if err != nil {
		return ErrWrite.Fmt(c.path).Wrap(err)
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = osutil.DBPermission

	if err := os.MkdirAll(filepath.Dir(pathToDB), osutil.DirPermission); err != nil {
		return nil, err
	}

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrPlannerRunning.Fmt(pathToDB)
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary bucket for storing data if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionBucket)

		return err
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Client{
		DB:   db,
		path: dbPath,
	}, nil
}
