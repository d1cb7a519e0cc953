// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth checks credentials against a static account directory.

# Directory

Directory maps usernames to accounts. The table is passed into Login
rather than hardcoded, so callers can swap it out:

	dir := auth.DefaultDirectory()
	sess, err := auth.Login(dir, "user1", "pass1")

DefaultDirectory returns the five fixed accounts the app ships with.

# Errors

  - ErrMissingCredentials: username or password left empty
  - ErrInvalidCredentials: unknown username or wrong password

Both failure modes behind ErrInvalidCredentials produce the same message
on purpose; the caller cannot tell which field was wrong.

# Scope

Plaintext comparison against a fixed table. This is an access gate for a
friendly points game between five known people, not a security boundary.
*/
package auth
