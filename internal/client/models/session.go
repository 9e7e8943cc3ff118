package models

// Session is the authentication state held by the client. Token and User are
// either both set or both empty.
type Session struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// LoggedIn reports whether the session holds a token.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// Valid reports whether the both-or-neither invariant holds.
func (s Session) Valid() bool {
	return (s.Token == "") == (s.User == nil)
}
