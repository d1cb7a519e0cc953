// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"

	"github.com/danielhkuo/wetten/models"
)

var (
	ErrMissingCredentials = errors.New("please enter both username and password")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Directory is the static username -> account table. It is injected into
// Login rather than baked in, so a different table can replace it without
// touching the login logic.
type Directory map[string]models.User

// DefaultDirectory returns the fixed account table the app ships with.
func DefaultDirectory() Directory {
	return Directory{
		"user1": {ID: "user1", Password: "pass1", Name: "John"},
		"user2": {ID: "user2", Password: "pass2", Name: "Emma"},
		"user3": {ID: "user3", Password: "pass3", Name: "Mike"},
		"user4": {ID: "user4", Password: "pass4", Name: "Sarah"},
		"user5": {ID: "user5", Password: "pass5", Name: "David"},
	}
}

// Lookup returns the directory entry for a username.
func (d Directory) Lookup(username string) (models.User, bool) {
	u, ok := d[username]
	return u, ok
}

// Login checks the credentials against the directory and returns a
// Session bound to the entry's display name. An unknown username and a
// wrong password both report ErrInvalidCredentials, so the error never
// reveals which of the two was wrong.
func Login(d Directory, username, password string) (models.Session, error) {
	if username == "" || password == "" {
		return models.Session{}, ErrMissingCredentials
	}

	u, ok := d[username]
	if !ok || u.Password != password {
		return models.Session{}, ErrInvalidCredentials
	}

	return models.Session{UserID: u.ID, Name: u.Name}, nil
}
