package store

import (
	"encoding/json"
	"fmt"

	"github.com/tymora/tymora/internal/model"
)

// SessionState is the ephemeral per-session state: the in-progress timer
// activity and the chosen theme. It lives in its own bucket, never inside
// the TymOraData document, so a running activity can never leak into a
// persisted DayLog. It carries no history and is safe to lose.
type SessionState struct {
	Active  *model.Activity `json:"active,omitempty"`
	ThemeID string          `json:"theme,omitempty"`
}

// LoadSession returns the stored session state, zero-valued when absent.
// Unlike the document, an unparseable session blob is discarded rather
// than surfaced: there is nothing worth preserving in it.
func (s *Store) LoadSession() (SessionState, error) {
	var state SessionState
	raw, err := s.get(bucketSession, keySession)
	if err != nil {
		return state, fmt.Errorf("read session state: %w", err)
	}
	if raw == nil {
		return state, nil
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		s.log.Warn().Err(err).Msg("discarding unreadable session state")
		return SessionState{}, nil
	}
	return state, nil
}

// SaveSession overwrites the stored session state.
func (s *Store) SaveSession(state SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	if err := s.put(bucketSession, keySession, data); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}
