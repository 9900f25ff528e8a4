package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/osutil"
)

// JSONFile stores sessions as an indented JSON array in a single file.
type JSONFile struct {
	path string
}

// NewJSONFile returns a gateway backed by the file at path. The file is not
// touched until the first Load or Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (j *JSONFile) Path() string {
	return j.path
}

func (j *JSONFile) Load() ([]models.Session, error) {
	data, err := os.ReadFile(j.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Session{}, nil
	}

	if err != nil {
		return nil, ErrRead.Fmt(j.path).Wrap(err)
	}

	sessions, err := decode(data)
	if err != nil {
		return nil, ErrRead.Fmt(j.path).Wrap(err)
	}

	return sessions, nil
}

// Save writes to a temporary file first and renames it over the target so
// that a failed write never leaves a truncated file behind.
func (j *JSONFile) Save(sessions []models.Session) error {
	data, err := encode(sessions)
	if err != nil {
		return ErrWrite.Fmt(j.path).Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(j.path), osutil.DirPermission); err != nil {
		return ErrWrite.Fmt(j.path).Wrap(err)
	}

	tmp := j.path + ".tmp"

	if err := os.WriteFile(tmp, data, osutil.FilePermission); err != nil {
		return ErrWrite.Fmt(j.path).Wrap(err)
	}

	if err := os.Rename(tmp, j.path); err != nil {
		_ = os.Remove(tmp)

		return ErrWrite.Fmt(j.path).Wrap(err)
	}

	return nil
}

func (j *JSONFile) Close() error {
	return nil
}

func encode(sessions []models.Session) ([]byte, error) {
	if sessions == nil {
		sessions = []models.Session{}
	}

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

func decode(data []byte) ([]models.Session, error) {
	var sessions []models.Session

	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, err
	}

	if sessions == nil {
		sessions = []models.Session{}
	}

	repairIDs(sessions)

	return sessions, nil
}
