// Package session holds the per-session application state that mediates
// between the CLI and the store: the currently selected date, the
// in-progress timer activity and the chosen theme. Session state is kept
// wholly separate from the durable document; a running activity only
// materializes into a DayLog when it is stopped.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tymora/tymora/internal/model"
	"github.com/tymora/tymora/internal/store"
	"github.com/tymora/tymora/internal/timeutil"
)

// ErrTimerRunning is returned by Start when a timer is already active.
var ErrTimerRunning = errors.New("a timer is already running")

// ErrNoActiveTimer is returned by Stop when nothing is running.
var ErrNoActiveTimer = errors.New("no active timer")

// ErrRetentionRange is returned for retention values outside [1,7].
var ErrRetentionRange = errors.New("retention must be between 1 and 7 days")

// Session is the application facade around the store.
type Session struct {
	store *store.Store
	log   zerolog.Logger

	// Date is the currently selected calendar date; activities stopped via
	// the timer land here, which is not necessarily today.
	Date string

	state store.SessionState
}

// New loads the session state and selects the given date (today when
// empty).
func New(s *store.Store, logger zerolog.Logger, date string) (*Session, error) {
	if date == "" {
		date = timeutil.Date(time.Now())
	}
	if !timeutil.ValidDate(date) {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}
	state, err := s.LoadSession()
	if err != nil {
		return nil, err
	}
	return &Session{store: s, log: logger, Date: date, state: state}, nil
}

// Active returns the in-progress timer activity, or nil.
func (s *Session) Active() *model.Activity {
	return s.state.Active
}

// Theme returns the chosen theme, falling back to the default.
func (s *Session) Theme() model.Theme {
	return model.ThemeByID(s.state.ThemeID)
}

// SetTheme stores the chosen theme id.
func (s *Session) SetTheme(id string) error {
	s.state.ThemeID = model.ThemeByID(id).ID
	return s.store.SaveSession(s.state)
}

// DayLog returns the selected date's log, reporting whether it exists.
func (s *Session) DayLog() (model.DayLog, bool, error) {
	doc, err := s.store.Load()
	if err != nil {
		return model.DayLog{}, false, err
	}
	day, i := doc.Day(s.Date)
	if i < 0 {
		return model.DayLog{}, false, nil
	}
	return *day, true, nil
}

// Retention returns the current history retention setting.
func (s *Session) Retention() (int, error) {
	doc, err := s.store.Load()
	if err != nil {
		return 0, err
	}
	return doc.HistoryRetentionDays, nil
}

// SetRetention validates and persists the retention setting, then runs an
// immediate cleanup pass.
func (s *Session) SetRetention(days int) error {
	if days < model.MinRetentionDays || days > model.MaxRetentionDays {
		return fmt.Errorf("%w: got %d", ErrRetentionRange, days)
	}
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	doc.HistoryRetentionDays = days
	if err := s.store.Save(doc); err != nil {
		return err
	}
	_, err = s.store.Cleanup(days)
	return err
}

// Start creates the ephemeral timer activity. It shares the global id
// space with persisted activities but does not touch the document.
func (s *Session) Start(a model.Activity) (*model.Activity, error) {
	if s.state.Active != nil {
		return nil, ErrTimerRunning
	}
	a.ID = uuid.NewString()
	a.EndTime = nil
	a.DurationMinutes = nil
	a.LoggedVia = model.ViaTimer
	if a.StartTime == "" {
		a.StartTime = timeutil.Clock(time.Now())
	}
	s.state.Active = &a
	if err := s.store.SaveSession(s.state); err != nil {
		return nil, err
	}
	s.log.Debug().Str("id", a.ID).Str("start", a.StartTime).Msg("timer started")
	return &a, nil
}

// Stop completes the active timer at now and upserts it into the selected
// date's DayLog. The duration is the raw same-day wall-clock difference;
// the timer path deliberately has no overnight correction, so a start
// time in the future yields a negative duration. Known limitation, not
// masked here.
func (s *Session) Stop(now time.Time) (*model.Activity, error) {
	if s.state.Active == nil {
		return nil, ErrNoActiveTimer
	}

	a := *s.state.Active
	end := timeutil.Clock(now)
	minutes, err := timeutil.MinutesBetween(a.StartTime, end)
	if err != nil {
		return nil, err
	}
	a.EndTime = &end
	a.DurationMinutes = &minutes

	if err := s.appendToDay(a, s.Date); err != nil {
		return nil, err
	}

	s.state.Active = nil
	if err := s.store.SaveSession(s.state); err != nil {
		return nil, err
	}
	s.log.Debug().Str("id", a.ID).Int("minutes", minutes).Msg("timer stopped")
	return &a, nil
}

// LogManual builds a completed activity directly and upserts it into
// targetDate's DayLog (the selected date when empty). This is the one
// path that supports a shift crossing midnight: a negative wall-clock
// difference gains a full day.
func (s *Session) LogManual(a model.Activity, targetDate string) (*model.Activity, error) {
	if targetDate == "" {
		targetDate = s.Date
	}
	if !timeutil.ValidDate(targetDate) {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", targetDate)
	}
	if a.EndTime == nil {
		return nil, fmt.Errorf("manual entry requires an end time")
	}

	minutes, err := timeutil.MinutesBetweenRollover(a.StartTime, *a.EndTime)
	if err != nil {
		return nil, err
	}
	a.ID = uuid.NewString()
	a.DurationMinutes = &minutes
	a.LoggedVia = model.ViaManual

	if err := s.appendToDay(a, targetDate); err != nil {
		return nil, err
	}
	s.log.Debug().Str("id", a.ID).Str("date", targetDate).Int("minutes", minutes).Msg("manual entry logged")
	return &a, nil
}

// appendToDay appends a completed activity to the given date's DayLog,
// creating the day with day_start_time seeded from the activity when it
// does not exist yet.
func (s *Session) appendToDay(a model.Activity, date string) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	day, i := doc.Day(date)
	if i < 0 {
		start := a.StartTime
		return s.store.UpsertDay(model.DayLog{
			Date:         date,
			DayStartTime: &start,
			Activities:   []model.Activity{a},
		})
	}
	updated := *day
	updated.Activities = append(append([]model.Activity(nil), day.Activities...), a)
	return s.store.UpsertDay(updated)
}

// Update locates the activity by id across all days and replaces it. An
// unknown id is a silent no-op (false). A differing newDate moves the
// activity: two durable upserts, origin first; a crash between them is an
// accepted risk under the single-writer model.
func (s *Session) Update(a model.Activity, newDate string) (bool, error) {
	doc, err := s.store.Load()
	if err != nil {
		return false, err
	}
	day, idx := doc.FindActivity(a.ID)
	if idx < 0 {
		s.log.Debug().Str("id", a.ID).Msg("update: activity not found")
		return false, nil
	}

	if newDate == "" || newDate == day.Date {
		updated := *day
		updated.Activities = append([]model.Activity(nil), day.Activities...)
		updated.Activities[idx] = a
		return true, s.store.UpsertDay(updated)
	}
	if !timeutil.ValidDate(newDate) {
		return false, fmt.Errorf("invalid date %q, want YYYY-MM-DD", newDate)
	}

	origin := *day
	origin.Activities = append([]model.Activity(nil), day.Activities...)
	origin.Activities = append(origin.Activities[:idx], origin.Activities[idx+1:]...)
	if err := s.store.UpsertDay(origin); err != nil {
		return false, err
	}
	if err := s.appendToDay(a, newDate); err != nil {
		return false, err
	}
	s.log.Debug().Str("id", a.ID).Str("from", day.Date).Str("to", newDate).Msg("activity moved")
	return true, nil
}

// Delete removes the activity by id from whichever day holds it. An
// unknown id is a silent no-op (false).
func (s *Session) Delete(id string) (bool, error) {
	doc, err := s.store.Load()
	if err != nil {
		return false, err
	}
	day, idx := doc.FindActivity(id)
	if idx < 0 {
		s.log.Debug().Str("id", id).Msg("delete: activity not found")
		return false, nil
	}

	updated := *day
	updated.Activities = append([]model.Activity(nil), day.Activities...)
	updated.Activities = append(updated.Activities[:idx], updated.Activities[idx+1:]...)
	return true, s.store.UpsertDay(updated)
}
