package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dutch/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotLoggedIn = errors.New("not logged in")

// Register prompts for a name, an email and a password and creates the
// account. A successful registration logs the user in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.outWriter())
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.outWriter())
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.outWriter())
	if err != nil {
		return err
	}
	defer wipe(password)

	user, err := a.auth.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	a.println(fmt.Sprintf("Welcome, %s!", user.Name))
	return nil
}

// Login prompts for credentials and starts a session. Failures have already
// been shown by the query client.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.outWriter())
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.outWriter())
	if err != nil {
		return err
	}
	defer wipe(password)

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.log.Info(ctx, "login unsuccessful", "error", err)
		return err
	}

	a.println(fmt.Sprintf("Logged in as %s", user.Name))
	return nil
}

// Logout ends the session and wipes the cached currencies.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out")
	return nil
}

// WhoAmI prints the current user and when the token expires.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.session.Current()
	if !s.LoggedIn() {
		a.println("Not logged in")
		return errNotLoggedIn
	}

	a.println(fmt.Sprintf("%s (id %s)", s.User.Name, s.User.ID))
	if exp, ok := session.TokenExpiry(s.Token); ok {
		a.println(fmt.Sprintf("Session expires %s", exp.Local().Format(time.RFC1123)))
	}
	return nil
}
