package remind

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/planner/internal/models"
)

// 2026-10-19 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2026, time.October, 19, hour, minute, 0, 0, time.Local)
}

func mathAt16() []models.Session {
	return []models.Session{
		{
			ID:      "s1",
			Subject: "Math",
			Day:     "Monday",
			Start:   "16:00",
			End:     "17:00",
			Color:   models.DefaultColor,
		},
	}
}

func labels(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Label())
	}

	return out
}

func TestThresholdLabel(t *testing.T) {
	assert.Equal(t, "60min", Threshold60.Label())
	assert.Equal(t, "30min", Threshold30.Label())
	assert.Equal(t, "0min", ThresholdStart.Label())
}

func TestCheckFiresEachThresholdOnce(t *testing.T) {
	tr := NewTracker()
	sessions := mathAt16()

	var fired []string

	// tick every minute from 14:50 to 16:05
	for now := monday(14, 50); !now.After(monday(16, 5)); now = now.Add(time.Minute) {
		fired = append(fired, labels(tr.Check(now, sessions))...)
	}

	assert.Equal(t, []string{"60min", "30min", "0min"}, fired)
	assert.True(t, tr.Sent("s1", Threshold60))
	assert.True(t, tr.Sent("s1", Threshold30))
	assert.True(t, tr.Sent("s1", ThresholdStart))
}

func TestCheckIdempotentInsideWindow(t *testing.T) {
	tr := NewTracker()
	sessions := mathAt16()

	var count int

	// minutes until start stays within [59, 61]
	for _, now := range []time.Time{monday(14, 59), monday(15, 0), monday(15, 1)} {
		events := tr.Check(now, sessions)
		count += len(events)
	}

	assert.Equal(t, 1, count)
}

func TestCheckEventFields(t *testing.T) {
	tr := NewTracker()
	now := monday(15, 30)

	events := tr.Check(now, mathAt16())
	require.Len(t, events, 1)

	assert.Equal(t, Event{
		At:        now,
		SessionID: "s1",
		Subject:   "Math",
		Start:     "16:00",
		End:       "17:00",
		Threshold: Threshold30,
	}, events[0])
}

func TestCheckSkips(t *testing.T) {
	cases := []struct {
		name    string
		session models.Session
	}{
		{
			name: "other day",
			session: models.Session{
				ID: "a", Subject: "Math", Day: "Tuesday", Start: "16:00", End: "17:00",
			},
		},
		{
			name: "lowercase day",
			session: models.Session{
				ID: "b", Subject: "Math", Day: "monday", Start: "16:00", End: "17:00",
			},
		},
		{
			name: "unparseable start",
			session: models.Session{
				ID: "c", Subject: "Math", Day: "Monday", Start: "four", End: "17:00",
			},
		},
		{
			name: "outside every window",
			session: models.Session{
				ID: "d", Subject: "Math", Day: "Monday", Start: "15:45", End: "17:00",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTracker()

			events := tr.Check(monday(15, 0), []models.Session{tc.session})
			assert.Empty(t, events)
		})
	}
}

func TestCheckStartWindow(t *testing.T) {
	tr := NewTracker()

	events := tr.Check(monday(15, 59), mathAt16())
	assert.Equal(t, []string{"0min"}, labels(events))

	// already started
	tr = NewTracker()
	assert.Empty(t, tr.Check(monday(16, 1), mathAt16()))
}

func TestWindowModeMissesSkippedWindow(t *testing.T) {
	tr := NewTracker(WithMode(ModeWindow))

	// a five minute cadence that jumps from 62 to 57 minutes out
	assert.Empty(t, tr.Check(monday(14, 58), mathAt16()))
	assert.Empty(t, tr.Check(monday(15, 3), mathAt16()))
	assert.False(t, tr.Sent("s1", Threshold60))
}

func TestCatchUpMode(t *testing.T) {
	tr := NewTracker(WithMode(ModeCatchUp))
	sessions := mathAt16()

	assert.Empty(t, tr.Check(monday(14, 58), sessions))

	// 57 minutes out: the 60min window was skipped but has been reached
	assert.Equal(t, []string{"60min"}, labels(tr.Check(monday(15, 3), sessions)))
	assert.Empty(t, tr.Check(monday(15, 8), sessions))

	// 27 minutes out
	assert.Equal(t, []string{"30min"}, labels(tr.Check(monday(15, 33), sessions)))
	assert.Empty(t, tr.Check(monday(15, 38), sessions))

	assert.Equal(t, []string{"0min"}, labels(tr.Check(monday(15, 59), sessions)))
	assert.Empty(t, tr.Check(monday(16, 4), sessions))
}

func TestCatchUpRetiresLooserThresholds(t *testing.T) {
	tr := NewTracker(WithMode(ModeCatchUp))

	// first tick lands 20 minutes before the start
	events := tr.Check(monday(15, 40), mathAt16())
	assert.Equal(t, []string{"30min"}, labels(events))
	assert.True(t, tr.Sent("s1", Threshold60))
	assert.False(t, tr.Sent("s1", ThresholdStart))

	assert.Empty(t, tr.Check(monday(15, 41), mathAt16()))
}

func TestCatchUpIgnoresStartedAndDistant(t *testing.T) {
	tr := NewTracker(WithMode(ModeCatchUp))

	assert.Empty(t, tr.Check(monday(14, 58), mathAt16()))
	assert.Empty(t, tr.Check(monday(16, 2), mathAt16()))
}

func TestTick(t *testing.T) {
	tr := NewTracker(WithClock(func() time.Time {
		return monday(15, 0)
	}))

	var got []Event

	err := tr.Tick(
		func() ([]models.Session, error) { return mathAt16(), nil },
		func(ev Event) { got = append(got, ev) },
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"60min"}, labels(got))

	errLoad := errors.New("load failed")

	err = tr.Tick(
		func() ([]models.Session, error) { return nil, errLoad },
		func(Event) { t.Fatal("handler called on a failed tick") },
	)
	assert.ErrorIs(t, err, errLoad)
}

func TestRunStopsOnCancel(t *testing.T) {
	tr := NewTracker(WithClock(func() time.Time {
		return monday(15, 0)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan Event, 1)

	done := make(chan error, 1)

	go func() {
		done <- tr.Run(
			ctx,
			time.Hour,
			func() ([]models.Session, error) { return mathAt16(), nil },
			func(ev Event) { events <- ev },
		)
	}()

	select {
	case ev := <-events:
		assert.Equal(t, Threshold60, ev.Threshold)
	case <-time.After(5 * time.Second):
		t.Fatal("first tick did not run")
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestUpcoming(t *testing.T) {
	sessions := []models.Session{
		{ID: "a", Subject: "Physics", Day: "Monday", Start: "18:00", End: "19:00"},
		{ID: "b", Subject: "Math", Day: "Monday", Start: "16:00", End: "17:00"},
		{ID: "c", Subject: "History", Day: "Monday", Start: "13:00", End: "14:00"},
		{ID: "d", Subject: "Art", Day: "Tuesday", Start: "16:00", End: "17:00"},
		{ID: "e", Subject: "Bad", Day: "Monday", Start: "x", End: "17:00"},
	}

	got := Upcoming(monday(15, 0), sessions)
	require.Len(t, got, 2)

	assert.Equal(t, "b", got[0].Session.ID)
	assert.Equal(t, 60, got[0].MinutesUntil)
	assert.Equal(t, "a", got[1].Session.ID)
	assert.Equal(t, 180, got[1].MinutesUntil)
}
