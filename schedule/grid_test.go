package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/timeutil"
)

func minutes(start, end int) map[int]bool {
	m := make(map[int]bool)
	for i := start; i < end; i++ {
		m[i] = true
	}

	return m
}

func TestSplitMiddleSlot(t *testing.T) {
	slots := timeutil.GenerateSlots(0, 1440, 30)

	for start := 0; start < 600; start += 25 {
		for length := 61; length <= 240; length += 37 {
			end := start + length

			for _, slot := range slots {
				// only slots strictly inside the session
				if slot.Start <= start || slot.End >= end {
					continue
				}

				s := models.Session{
					ID:    "orig",
					Day:   "Monday",
					Start: timeutil.FormatMin(start),
					End:   timeutil.FormatMin(end),
				}

				remainders, whole, err := Split(&s, slot, sequentialIDs())
				require.NoError(t, err)
				require.False(t, whole)
				require.Len(t, remainders, 2)

				want := minutes(start, end)
				for i := slot.Start; i < slot.End; i++ {
					delete(want, i)
				}

				got := make(map[int]bool)

				for _, r := range remainders {
					rs, re, err := r.Bounds()
					require.NoError(t, err)

					assert.False(t, slot.Overlaps(rs, re), "remainder %s-%s overlaps %s", r.Start, r.End, slot)
					assert.NotEqual(t, "orig", r.ID)

					for i := rs; i < re; i++ {
						assert.False(t, got[i], "minute %d covered twice", i)
						got[i] = true
					}
				}

				assert.Equal(t, want, got)
			}
		}
	}
}

func TestSplitWhole(t *testing.T) {
	slot := timeutil.Slot{Start: 600, End: 630}

	for _, s := range []models.Session{
		{Start: "10:00", End: "10:30"},
		{Start: "10:05", End: "10:25"},
		{Start: "10:00", End: "10:10"},
	} {
		remainders, whole, err := Split(&s, slot, sequentialIDs())
		require.NoError(t, err)
		assert.True(t, whole)
		assert.Empty(t, remainders)
	}
}

func TestSplitInheritsFields(t *testing.T) {
	s := models.Session{
		ID:      "orig",
		Subject: "History",
		Day:     "Thursday",
		Start:   "9:00",
		End:     "11:00",
		Color:   "#123",
	}

	remainders, _, err := Split(&s, timeutil.Slot{Start: 600, End: 630}, sequentialIDs())
	require.NoError(t, err)

	assert.Equal(t, []models.Session{
		{ID: "id-1", Subject: "History", Day: "Thursday", Start: "09:00", End: "10:00", Color: "#123"},
		{ID: "id-2", Subject: "History", Day: "Thursday", Start: "10:30", End: "11:00", Color: "#123"},
	}, remainders)
}

func TestSplitErrors(t *testing.T) {
	slot := timeutil.Slot{Start: 600, End: 630}

	_, _, err := Split(&models.Session{Start: "x", End: "11:00"}, slot, sequentialIDs())
	assert.Error(t, err)

	_, _, err = Split(&models.Session{Start: "11:00", End: "12:00"}, slot, sequentialIDs())
	assert.ErrorIs(t, err, ErrNotInSlot)
}

func TestPlace(t *testing.T) {
	slots := []timeutil.Slot{{Start: 570, End: 600}, {Start: 600, End: 630}}

	day, occupied, ok := Place(&models.Session{Day: "Saturday", Start: "09:00", End: "10:00"}, slots)
	assert.True(t, ok)
	assert.Equal(t, 5, day)
	assert.Equal(t, []int{0}, occupied)

	_, _, ok = Place(&models.Session{Day: "Caturday", Start: "09:00", End: "10:00"}, slots)
	assert.False(t, ok)
}
