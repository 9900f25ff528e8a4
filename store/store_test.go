package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/testutil"
)

type goldenCase struct {
	snapshot []byte
	name     string
}

func (g goldenCase) Output() ([]byte, string) {
	return g.snapshot, g.name
}

func sampleSessions() []models.Session {
	return []models.Session{
		{
			ID:      "5d8a3c1e-math",
			Subject: "Math",
			Day:     "Monday",
			Start:   "09:00",
			End:     "10:30",
			Color:   "#fff",
		},
		{
			ID:      "0b7f9e42-physics",
			Subject: "Physics",
			Day:     "Friday",
			Start:   "16:00",
			End:     "17:00",
			Color:   "#AED6F1",
		},
	}
}

func openBackends(t *testing.T) map[string]DB {
	t.Helper()

	dir := t.TempDir()

	bolt, err := Open(BackendBolt, filepath.Join(dir, "planner.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = bolt.Close()
	})

	return map[string]DB{
		BackendJSON: NewJSONFile(filepath.Join(dir, "data", "sessions.json")),
		BackendBolt: bolt,
	}
}

func TestLoadMissing(t *testing.T) {
	for name, db := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			sessions, err := db.Load()
			require.NoError(t, err)
			assert.NotNil(t, sessions)
			assert.Empty(t, sessions)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for name, db := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			want := sampleSessions()

			require.NoError(t, db.Save(want))

			got, err := db.Load()
			require.NoError(t, err)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("loaded sessions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveEmpty(t *testing.T) {
	for name, db := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, db.Save(sampleSessions()))
			require.NoError(t, db.Save(nil))

			got, err := db.Load()
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestRepairMissingID(t *testing.T) {
	for name, db := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			sessions := sampleSessions()
			sessions[1].ID = ""

			require.NoError(t, db.Save(sessions))

			got, err := db.Load()
			require.NoError(t, err)
			require.Len(t, got, 2)

			assert.Equal(t, "5d8a3c1e-math", got[0].ID)
			assert.NotEmpty(t, got[1].ID)
			assert.NotEqual(t, got[0].ID, got[1].ID)
			assert.Equal(t, "Physics", got[1].Subject)
		})
	}
}

func TestJSONFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")

	db := NewJSONFile(path)
	require.NoError(t, db.Save(sampleSessions()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	testutil.CompareGoldenFile(t, goldenCase{snapshot: b, name: "sessions"})

	assert.NoFileExists(t, path+".tmp")
}

func TestJSONFileLegacyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")

	require.NoError(t, testutil.CopyFile("testdata/legacy.json", path))

	got, err := NewJSONFile(path).Load()
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Math", got[0].Subject)
	assert.Equal(t, "9:00", got[0].Start)
	assert.NotEmpty(t, got[0].ID)

	// records with unknown days are carried untouched
	assert.Equal(t, "c3f1", got[1].ID)
	assert.Equal(t, "tuesday", got[1].Day)
}

func TestJSONFileMalformed(t *testing.T) {
	docs := map[string]string{
		"not json":     "{{{",
		"object":       `{"subject": "Math"}`,
		"wrong type":   `[{"subject": "Math", "start": 900}]`,
		"empty file":   "",
		"scalar array": `[1, 2, 3]`,
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sessions.json")
			require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

			_, err := NewJSONFile(path).Load()
			assert.ErrorIs(t, err, ErrRead)
		})
	}
}

func TestJSONFileWriteError(t *testing.T) {
	dir := t.TempDir()

	// a directory in place of the target file makes the rename fail
	path := filepath.Join(dir, "sessions.json")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), 0o755))

	err := NewJSONFile(path).Save(sampleSessions())
	assert.ErrorIs(t, err, ErrWrite)
}

func TestBoltLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.db")

	first, err := NewClient(path)
	require.NoError(t, err)

	defer first.Close()

	_, err = NewClient(path)
	assert.ErrorIs(t, err, ErrPlannerRunning)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("sqlite", filepath.Join(t.TempDir(), "x"))
	assert.Error(t, err)
}
