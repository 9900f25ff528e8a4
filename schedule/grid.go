package schedule

import (
	"github.com/ayoisaiah/planner/internal/models"
	"github.com/ayoisaiah/planner/internal/timeutil"
)

// Placement is a session occupying a slot on a given weekday.
type Placement struct {
	Session  models.Session
	DayIndex int
}

// Grid holds the sessions occupying each cell, indexed by slot then by
// weekday.
type Grid [][][]models.Session

// Cell returns the sessions placed at the given slot and day.
func (g Grid) Cell(slot, day int) []models.Session {
	if slot < 0 || slot >= len(g) || day < 0 || day >= len(g[slot]) {
		return nil
	}

	return g[slot][day]
}

// Place returns the weekday index of s and the indices of the slots it
// occupies. ok is false when the day or clock fields cannot be parsed, in
// which case the session has no place on the grid.
func Place(s *models.Session, slots []timeutil.Slot) (day int, occupied []int, ok bool) {
	iv, err := s.Interval()
	if err != nil {
		return 0, nil, false
	}

	for i, slot := range slots {
		if slot.Overlaps(iv.Start, iv.End) {
			occupied = append(occupied, i)
		}
	}

	return iv.DayIndex, occupied, true
}

// Split removes the part of s that overlaps slot. whole is true when s lies
// entirely inside the slot, meaning the session should be removed outright.
// Otherwise remainders holds the left part [start, slot.Start) and the right
// part [slot.End, end), whichever exist, each under a new id.
func Split(
	s *models.Session,
	slot timeutil.Slot,
	newID func() string,
) (remainders []models.Session, whole bool, err error) {
	start, end, err := s.Bounds()
	if err != nil {
		return nil, false, err
	}

	if !slot.Overlaps(start, end) {
		return nil, false, ErrNotInSlot.Fmt(s.ID, slot)
	}

	if slot.Within(start, end) {
		return nil, true, nil
	}

	if start < slot.Start {
		remainders = append(remainders, s.Remainder(newID(), start, slot.Start))
	}

	if end > slot.End {
		remainders = append(remainders, s.Remainder(newID(), slot.End, end))
	}

	return remainders, false, nil
}
