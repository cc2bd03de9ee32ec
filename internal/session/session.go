// Package session tracks short-lived Discord interactions (shop menus,
// quest boards) so that button presses can be tied back to the player who
// opened them.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/punaab/discord-ts-UQkA/internal/logger"
)

// Kind is the interaction a session belongs to
type Kind string

const (
	KindShop  Kind = "shop"
	KindQuest Kind = "quest"
)

// TTL returns how long a session of this kind stays usable
func (k Kind) TTL() time.Duration {
	switch k {
	case KindShop:
		return ShopTTL
	case KindQuest:
		return QuestTTL
	default:
		return DefaultTTL
	}
}

// State is the lifecycle state: active, then closed or expired
type State string

const (
	StateActive  State = "active"
	StateClosed  State = "closed"
	StateExpired State = "expired"
)

var (
	// ErrSessionExpired is returned for unknown, closed or timed-out sessions
	ErrSessionExpired = errors.New(ErrMsgSessionExpired)
	// ErrSessionNotOwner is returned when someone other than the opener interacts
	ErrSessionNotOwner = errors.New(ErrMsgSessionNotOwner)
)

// Session is one open interaction
type Session struct {
	ID        string            `json:"id"`
	Kind      Kind              `json:"kind"`
	OwnerKey  string            `json:"owner_key"`
	State     State             `json:"state"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// expireIfDue applies the lazy active -> expired transition
func (s *Session) expireIfDue(now time.Time) {
	if s.State == StateActive && !now.Before(s.ExpiresAt) {
		s.State = StateExpired
	}
}

// Store persists sessions. Get returns ErrSessionExpired when the ID is unknown.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// Manager opens and validates sessions on top of a Store
type Manager struct {
	store Store
	now   func() time.Time
}

// NewManager creates a Manager over store
func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// SetClock replaces the time source
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

// Open starts a new active session for owner
func (m *Manager) Open(ctx context.Context, kind Kind, ownerKey string, data map[string]string) (*Session, error) {
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		Kind:      kind,
		OwnerKey:  ownerKey,
		State:     StateActive,
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now.Add(kind.TTL()),
	}
	if err := m.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSaveFailed, err)
	}
	logger.FromContext(ctx).Debug(LogMsgSessionOpened, "session", s.ID, "kind", kind, "owner", ownerKey)
	return s, nil
}

// Use validates that userKey may interact with session id. Expired sessions
// are removed from the store.
func (m *Manager) Use(ctx context.Context, id, userKey string) (*Session, error) {
	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.expireIfDue(m.now())
	switch s.State {
	case StateExpired:
		if err := m.store.Delete(ctx, id); err != nil {
			logger.FromContext(ctx).Warn(LogMsgDeleteFailed, "session", id, "error", err)
		}
		return nil, ErrSessionExpired
	case StateClosed:
		return nil, ErrSessionExpired
	}
	if s.OwnerKey != userKey {
		return nil, ErrSessionNotOwner
	}
	return s, nil
}

// Close ends a session. Closing an unknown session is not an error.
func (m *Manager) Close(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil && !errors.Is(err, ErrSessionExpired) {
		return fmt.Errorf("%s: %w", ErrMsgDeleteFailed, err)
	}
	return nil
}
