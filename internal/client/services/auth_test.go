package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/dutch/internal/client/client"
	"github.com/dmitrijs2005/dutch/internal/client/models"
	"github.com/dmitrijs2005/dutch/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	cleared int
	err     error
}

func (f *fakeCache) Clear(context.Context) error {
	f.cleared++
	return f.err
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	sess := session.New(ctx, nil, nil)
	api := &fakeAPI{data: `{"login":{"token":"T1","user":{"id":"u1","name":"Ann"}}}`}
	svc := NewAuthService(api, sess, nil, nil)

	user, err := svc.Login(ctx, "  ann@example.com ", []byte("secret"))
	require.NoError(t, err)

	assert.Equal(t, models.User{ID: "u1", Name: "Ann"}, user)
	assert.Equal(t, "T1", sess.Token())
	require.Len(t, api.vars, 1)
	assert.Equal(t, "ann@example.com", api.vars[0]["email"])
	assert.Equal(t, "secret", api.vars[0]["password"])
	assert.Equal(t, []string{loginMutation}, api.queries)
}

func TestAuthService_LoginFailure(t *testing.T) {
	ctx := context.Background()
	sess := session.New(ctx, nil, nil)
	svc := NewAuthService(&fakeAPI{kind: client.KindBusinessErrors}, sess, nil, nil)

	_, err := svc.Login(ctx, "ann@example.com", []byte("bad"))

	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.False(t, sess.Current().LoggedIn())
}

func TestAuthService_LoginIncompletePayload(t *testing.T) {
	ctx := context.Background()
	sess := session.New(ctx, nil, nil)

	for _, data := range []string{
		`{"login":null}`,
		`{"login":{"token":"","user":{"id":"u1","name":"Ann"}}}`,
		`{"login":{"token":"T1"}}`,
	} {
		svc := NewAuthService(&fakeAPI{data: data}, sess, nil, nil)
		_, err := svc.Login(ctx, "ann@example.com", []byte("pw"))
		assert.ErrorIs(t, err, ErrLoginFailed, data)
		assert.False(t, sess.Current().LoggedIn(), data)
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	sess := session.New(ctx, nil, nil)
	api := &fakeAPI{data: `{"register":{"token":"T2","user":{"id":"u2","name":"Bob"}}}`}
	svc := NewAuthService(api, sess, nil, nil)

	user, err := svc.Register(ctx, "Bob", "bob@example.com", []byte("pw"))
	require.NoError(t, err)

	assert.Equal(t, "u2", user.ID)
	assert.Equal(t, "T2", sess.Token())
	assert.Equal(t, "Bob", api.vars[0]["name"])
	assert.Equal(t, []string{registerMutation}, api.queries)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	sess := session.New(ctx, nil, nil)
	sess.Login(ctx, "T1", models.User{ID: "u1", Name: "Ann"})
	cache := &fakeCache{}
	svc := NewAuthService(&fakeAPI{}, sess, cache, nil)

	require.NoError(t, svc.Logout(ctx))

	assert.False(t, sess.Current().LoggedIn())
	assert.Equal(t, 1, cache.cleared)
}

func TestAuthService_LogoutCacheError(t *testing.T) {
	ctx := context.Background()
	sess := session.New(ctx, nil, nil)
	sess.Login(ctx, "T1", models.User{ID: "u1"})
	boom := errors.New("locked")
	svc := NewAuthService(&fakeAPI{}, sess, &fakeCache{err: boom}, nil)

	assert.ErrorIs(t, svc.Logout(ctx), boom)
	assert.False(t, sess.Current().LoggedIn())
}
