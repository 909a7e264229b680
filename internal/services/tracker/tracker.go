package tracker

import (
	"errors"
	"sync"
	"time"

	"github.com/keyblasters/boostbot/internal/common/clock"
)

// ErrNotTracked is returned when a message has no active tracking session
var ErrNotTracked = errors.New("message is not tracked")

// EventKind classifies a recorded reaction change.
type EventKind string

const (
	// EventAdded records a reaction being added
	EventAdded EventKind = "added"

	// EventRemoved records a reaction being removed
	EventRemoved EventKind = "removed"
)

// Event is one recorded reaction change on a tracked message.
type Event struct {
	Kind   EventKind
	UserID string
	Emoji  string
	At     time.Time
}

// Session is an expired or active tracking session.
type Session struct {
	MessageID string
	ChannelID string
	Events    []Event
}

type tracked struct {
	channelID string
	expiresAt time.Time
	events    []Event
}

// Service records reaction changes on watched messages for a limited time.
// Everything lives in memory; tracking sessions do not survive a restart.
type Service struct {
	clock clock.Clock
	ttl   time.Duration

	mu      sync.Mutex
	byMsgID map[string]*tracked
}

// Config is the configuration for the tracker service.
type Config struct {
	// Clock may be nil, in which case the system clock is used.
	Clock clock.Clock

	// TTL is how long a message stays tracked.
	TTL time.Duration
}

// New creates a new tracker service.
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("cfg cannot be nil")
	}

	if cfg.TTL <= 0 {
		return nil, errors.New("cfg.TTL must be positive")
	}

	clockImpl := cfg.Clock
	if clockImpl == nil {
		clockImpl = &clock.DefaultClock{}
	}

	return &Service{
		clock:   clockImpl,
		ttl:     cfg.TTL,
		byMsgID: make(map[string]*tracked),
	}, nil
}

// Track starts a tracking session on a message. A non-positive ttl uses the
// configured default. Tracking an already tracked message resets its expiry
// and keeps its events.
func (s *Service) Track(messageID, channelID string, ttl time.Duration) error {
	if messageID == "" {
		return errors.New("messageID cannot be empty")
	}

	if ttl <= 0 {
		ttl = s.ttl
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := s.clock.Now().Add(ttl)
	if existing, ok := s.byMsgID[messageID]; ok {
		existing.expiresAt = expiresAt
		return nil
	}

	s.byMsgID[messageID] = &tracked{
		channelID: channelID,
		expiresAt: expiresAt,
	}

	return nil
}

// RecordAdded records a reaction addition. It reports whether the message is
// tracked.
func (s *Service) RecordAdded(messageID, userID, emoji string) bool {
	return s.record(messageID, Event{
		Kind:   EventAdded,
		UserID: userID,
		Emoji:  emoji,
	})
}

// RecordRemoved records a reaction removal. It reports whether the message is
// tracked.
func (s *Service) RecordRemoved(messageID, userID, emoji string) bool {
	return s.record(messageID, Event{
		Kind:   EventRemoved,
		UserID: userID,
		Emoji:  emoji,
	})
}

func (s *Service) record(messageID string, ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byMsgID[messageID]
	if !ok {
		return false
	}

	ev.At = s.clock.Now()
	t.events = append(t.events, ev)
	return true
}

// List returns the events recorded on a tracked message so far.
func (s *Service) List(messageID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byMsgID[messageID]
	if !ok {
		return nil, ErrNotTracked
	}

	events := make([]Event, len(t.events))
	copy(events, t.events)

	return &Session{
		MessageID: messageID,
		ChannelID: t.channelID,
		Events:    events,
	}, nil
}

// Sessions returns every active tracking session.
func (s *Service) Sessions() []*Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := make([]*Session, 0, len(s.byMsgID))
	for messageID, t := range s.byMsgID {
		events := make([]Event, len(t.events))
		copy(events, t.events)
		sessions = append(sessions, &Session{
			MessageID: messageID,
			ChannelID: t.channelID,
			Events:    events,
		})
	}

	return sessions
}

// Expire drops every session past its TTL and returns them so the caller can
// post a summary.
func (s *Service) Expire() []*Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	var expired []*Session
	for messageID, t := range s.byMsgID {
		if now.Before(t.expiresAt) {
			continue
		}

		expired = append(expired, &Session{
			MessageID: messageID,
			ChannelID: t.channelID,
			Events:    t.events,
		})
		delete(s.byMsgID, messageID)
	}

	return expired
}
