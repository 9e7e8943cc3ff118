package models

// Currency is a reference-data record served by the remote API.
//
// SortOrder is assigned locally from the position in the last fetched list and
// is only used to restore that order from the local store.
type Currency struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`

	SortOrder int `json:"-"`
}
