package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/planner/internal/models"
)

func TestClock(t *testing.T) {
	cases := []struct {
		h24  string
		h12  string
		mins int
	}{
		{mins: 0, h24: "00:00", h12: "12:00 AM"},
		{mins: 570, h24: "09:30", h12: "9:30 AM"},
		{mins: 720, h24: "12:00", h12: "12:00 PM"},
		{mins: 1320, h24: "22:00", h12: "10:00 PM"},
	}

	defer func() { TwentyFourHour = true }()

	for _, tc := range cases {
		TwentyFourHour = true
		assert.Equal(t, tc.h24, Clock(tc.mins))

		TwentyFourHour = false
		assert.Equal(t, tc.h12, Clock(tc.mins))
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "5d8a3c1e", ShortID("5d8a3c1e-5f2b-4c1d-9a0e-3b7c2d1e0f4a"))
	assert.Equal(t, "c3f1", ShortID("c3f1"))
}

func TestSortSessions(t *testing.T) {
	sessions := []models.Session{
		{ID: "1", Subject: "Chapter 10", Day: "Monday", Start: "16:00"},
		{ID: "2", Subject: "Math", Day: "Sunday", Start: "09:00"},
		{ID: "3", Subject: "Chapter 2", Day: "Monday", Start: "16:00"},
		{ID: "4", Subject: "Art", Day: "Monday", Start: "9:00"},
		{ID: "5", Subject: "Odd", Day: "Someday", Start: "08:00"},
	}

	SortSessions(sessions)

	var ids []string
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}

	assert.Equal(t, []string{"4", "3", "1", "2", "5"}, ids)
}

func TestSwatchInvalidColor(t *testing.T) {
	for _, hex := range []string{"", "red", "#12", "#GGGGGG", "3b82f6"} {
		assert.Equal(t, "Physics", Swatch(hex, "Physics"), hex)
	}
}

func TestParseHex(t *testing.T) {
	rgb, ok := parseHex("#3b82f6")
	assert.True(t, ok)
	assert.Equal(t, [3]uint8{0x3b, 0x82, 0xf6}, [3]uint8{rgb.R, rgb.G, rgb.B})

	rgb, ok = parseHex("#f80")
	assert.True(t, ok)
	assert.Equal(t, [3]uint8{0xff, 0x88, 0x00}, [3]uint8{rgb.R, rgb.G, rgb.B})

	_, ok = parseHex("#xyz")
	assert.False(t, ok)
}
