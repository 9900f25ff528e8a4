package app

import (
	"slices"

	"github.com/ayoisaiah/planner/internal/models"
)

// filterDays keeps the sessions scheduled on one of days. An empty days
// list keeps everything.
func filterDays(sessions []models.Session, days []string) []models.Session {
	if len(days) == 0 {
		return sessions
	}

	return slices.DeleteFunc(sessions, func(s models.Session) bool {
		return !slices.Contains(days, s.Day)
	})
}
