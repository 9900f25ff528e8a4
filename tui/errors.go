package tui

import "github.com/ayoisaiah/planner/internal/apperr"

var (
	errSubject = &apperr.Error{Message: "subject is required"}
	errColor   = &apperr.Error{Message: "color must be a hex value such as #AED6F1"}
)
