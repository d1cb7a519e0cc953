// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package app is the surface a presentation layer drives.

# Intents

App accepts the five user intents, runs them through the pure engine,
and persists the result before adopting it:

	a := app.New(store, auth.DefaultDirectory(), cfg)
	sess, err := a.Login("user1", "pass1")
	bet, err := a.CreateBet("Rain tomorrow?", 10)
	err = a.CastVote(bet.ID, true)
	err = a.ResolveBet(bet.ID, true)
	a.Logout()

Errors are the typed sentinels from packages auth and engine (plus
ErrNotLoggedIn here); each maps to a message the presentation can show,
and a failed intent leaves both the held and the persisted state
untouched.

# Rendering

Snapshot returns everything a renderer needs: the session, each bet with
its tallies, humanized creation time and per-viewer flags, and the
current transient notification.

# Notifications

Notifier holds the one transient message, auto-clearing after the
configured TTL. The latest message wins; a new Flash overwrites the old
message and restarts the clock. The engine never touches timers — the
notifier lives entirely on this side of the boundary.

# Concurrency

One logical actor: intents are synchronous and the caller consumes each
result before issuing the next, so App does no locking of its own. The
notifier is internally locked because its clear fires on a timer
goroutine.
*/
package app
