// Package session holds the client's authentication state: the current token
// and user, persisted write-through and published to subscribers on every
// transition.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/dutch/internal/client/models"
	"github.com/dmitrijs2005/dutch/internal/logging"
	"github.com/dmitrijs2005/dutch/internal/observable"
)

// State is the single owner of the session. Only Login and Logout mutate it.
type State struct {
	mu    sync.Mutex
	value *observable.Value[models.Session]
	store Store
	log   logging.Logger
}

// New initializes the state from store. A nil store keeps the session in
// memory only. Unreadable or inconsistent records start an empty session.
func New(ctx context.Context, store Store, log logging.Logger) *State {
	if log == nil {
		log = logging.NewNop()
	}
	s := &State{store: store, log: log}
	s.value = observable.New(s.restore(ctx))
	return s
}

func (s *State) restore(ctx context.Context) models.Session {
	if s.store == nil {
		return models.Session{}
	}
	stored, ok, err := s.store.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to restore session", "error", err)
		return models.Session{}
	}
	if !ok {
		return models.Session{}
	}
	if !stored.Valid() {
		s.log.Warn(ctx, "discarding inconsistent session record")
		return models.Session{}
	}
	return stored
}

// Current returns the in-memory session.
func (s *State) Current() models.Session {
	return s.value.Get()
}

// Token is a shorthand for Current().Token.
func (s *State) Token() string {
	return s.value.Get().Token
}

// Login stores token and user together. An empty token is ignored.
// Persistence failures are logged; the in-memory transition still happens.
func (s *State) Login(ctx context.Context, token string, user models.User) {
	if token == "" {
		s.log.Warn(ctx, "login ignored: empty token")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := models.Session{Token: token, User: &user}
	if s.store != nil {
		if err := s.store.Save(ctx, next); err != nil {
			s.log.Error(ctx, "failed to persist session", "error", err)
		}
	}
	s.value.Set(next)
}

// Logout clears token and user together and removes the persisted record.
func (s *State) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Delete(ctx); err != nil {
			s.log.Error(ctx, "failed to delete persisted session", "error", err)
		}
	}
	s.value.Set(models.Session{})
}

// Subscribe calls fn with the current session and after every transition.
func (s *State) Subscribe(fn func(models.Session)) (unsubscribe func()) {
	return s.value.Subscribe(fn)
}
