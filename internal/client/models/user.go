// Package models defines the client-side value types shared by the session,
// the query client and the local repositories.
package models

// User is the identity attached to an authenticated session.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
