package apperr_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/planner/internal/apperr"
)

var (
	errTemplate = &apperr.Error{Message: "session %s not found"}
	errOther    = &apperr.Error{Message: "something else"}
)

func TestFmt(t *testing.T) {
	err := errTemplate.Fmt("abcd")

	assert.Equal(t, "session abcd not found", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.NotErrorIs(t, err, errOther)
	assert.Equal(t, "session %s not found", errTemplate.Message)
}

func TestWrap(t *testing.T) {
	err := errOther.Wrap(fs.ErrPermission)

	assert.Equal(t, "something else: permission denied", err.Error())
	assert.ErrorIs(t, err, errOther)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestFmtThenWrap(t *testing.T) {
	err := errTemplate.Fmt("x").Wrap(errors.New("boom"))

	assert.ErrorIs(t, err, errTemplate)
	assert.Equal(t, "session x not found: boom", err.Error())
}
