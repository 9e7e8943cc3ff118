package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/dutch/internal/client/client"
	"github.com/dmitrijs2005/dutch/internal/client/models"
	"github.com/dmitrijs2005/dutch/internal/logging"
)

// ErrLoginFailed means the server did not return a session. The reason has
// already been shown to the user by the query client.
var ErrLoginFailed = errors.New("login failed")

// SessionWriter is the part of the session state the auth flows mutate.
type SessionWriter interface {
	Login(ctx context.Context, token string, user models.User)
	Logout(ctx context.Context)
}

// CacheClearer is implemented by CurrencyCache.
type CacheClearer interface {
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate against the server and start a session.
//   - Register: create an account and start a session with it.
//   - Logout: end the session and wipe cached reference data.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Register(ctx context.Context, name, email string, password []byte) (models.User, error)
	Logout(ctx context.Context) error
}

type authPayload struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type authService struct {
	api     client.Executor
	session SessionWriter
	cache   CacheClearer
	log     logging.Logger
}

// NewAuthService constructs an AuthService. cache may be nil.
func NewAuthService(api client.Executor, session SessionWriter, cache CacheClearer, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNop()
	}
	return &authService{api: api, session: session, cache: cache, log: log}
}

// Login runs the login mutation and stores the returned session.
func (a *authService) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	resp := client.Execute[struct {
		Login *authPayload `json:"login"`
	}](ctx, a.api, loginMutation, map[string]any{
		"email":    strings.TrimSpace(email),
		"password": string(password),
	})
	if resp == nil {
		return models.User{}, ErrLoginFailed
	}
	return a.start(ctx, resp.Login)
}

// Register creates an account and logs in with the returned session.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) (models.User, error) {
	resp := client.Execute[struct {
		Register *authPayload `json:"register"`
	}](ctx, a.api, registerMutation, map[string]any{
		"name":     strings.TrimSpace(name),
		"email":    strings.TrimSpace(email),
		"password": string(password),
	})
	if resp == nil {
		return models.User{}, ErrLoginFailed
	}
	return a.start(ctx, resp.Register)
}

func (a *authService) start(ctx context.Context, p *authPayload) (models.User, error) {
	if p == nil || p.Token == "" || p.User == nil {
		a.log.Warn(ctx, "server returned an incomplete session")
		return models.User{}, ErrLoginFailed
	}
	a.session.Login(ctx, p.Token, *p.User)
	a.log.Info(ctx, "logged in", "user_id", p.User.ID)
	return *p.User, nil
}

// Logout ends the session and clears the currency cache.
func (a *authService) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	if a.cache == nil {
		return nil
	}
	return a.cache.Clear(ctx)
}
