package dto

import "strings"

// UserParams is the allow-list of form fields that may reach the store.
// Anything else submitted under the user namespace is dropped before it
// gets here.
type UserParams struct {
	Username string
	Email    string
}

// NewUserParams copies exactly the permitted fields out of raw form input.
func NewUserParams(username, email string) UserParams {
	return UserParams{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
	}
}
