package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Aashish23092/schemelink/dto"
	"github.com/google/uuid"
)

type scanSession struct {
	generation uint64
	cancel     context.CancelFunc
	result     *dto.ExtractionResult
	draft      dto.ProfileDraft
	updatedAt  time.Time
}

// SessionManager tracks scan sessions: the latest accepted extraction and
// the draft it is merged into. Only the most recent scan of a session may
// publish its result.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*scanSession
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*scanSession)}
}

// Create starts an empty session and returns its id.
func (m *SessionManager) Create() string {
	id := uuid.NewString()

	m.mu.Lock()
	m.sessions[id] = &scanSession{updatedAt: time.Now()}
	m.mu.Unlock()
	return id
}

// Begin registers a new scan. The previous scan's context is cancelled and
// its result will be rejected by Complete.
func (m *SessionManager) Begin(parent context.Context, id string) (context.Context, uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, 0, dto.ErrSessionNotFound
	}
	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	s.generation++
	s.cancel = cancel
	return ctx, s.generation, nil
}

// Complete publishes result if gen is still the current scan.
func (m *SessionManager) Complete(id string, gen uint64, result dto.ExtractionResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return dto.ErrSessionNotFound
	}
	if s.generation != gen {
		return dto.ErrStaleResult
	}
	s.finish()
	s.result = &result
	s.updatedAt = time.Now()
	return nil
}

// Abort releases the scan's context without publishing anything.
func (m *SessionManager) Abort(id string, gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok && s.generation == gen {
		s.finish()
	}
}

// Get returns a snapshot of the session.
func (m *SessionManager) Get(id string) (dto.SessionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return dto.SessionResponse{}, dto.ErrSessionNotFound
	}

	resp := dto.SessionResponse{
		SessionID:  id,
		Generation: s.generation,
		Draft:      s.draft,
	}
	if s.result != nil {
		result := *s.result
		summary := result.Summary()
		resp.Result = &result
		resp.Summary = &summary
	}
	return resp, nil
}

// UpdateDraft replaces the session's draft with the user's edits.
func (m *SessionManager) UpdateDraft(id string, draft dto.ProfileDraft) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return dto.ErrSessionNotFound
	}
	s.draft = draft
	s.updatedAt = time.Now()
	return nil
}

// ApplyResult merges the confirmed fields of the latest result into the
// draft and returns the new draft.
func (m *SessionManager) ApplyResult(id string, fields []string, policy MergePolicy) (dto.ProfileDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return dto.ProfileDraft{}, dto.ErrSessionNotFound
	}
	if s.result == nil {
		return s.draft, fmt.Errorf("session %s has no scan result to apply", id)
	}

	draft, err := MergeExtraction(s.draft, *s.result, fields, policy)
	if err != nil {
		return s.draft, err
	}
	s.draft = draft
	s.updatedAt = time.Now()
	return draft, nil
}

// Draft returns the session's current draft.
func (m *SessionManager) Draft(id string) (dto.ProfileDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return dto.ProfileDraft{}, dto.ErrSessionNotFound
	}
	return s.draft, nil
}

// Expire drops sessions idle for longer than ttl and returns how many went.
func (m *SessionManager) Expire(ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for id, s := range m.sessions {
		if s.updatedAt.Before(cutoff) {
			s.finish()
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *scanSession) finish() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
