// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types shared by every other package.

# Domain Types

  - User: static directory entry (id, password, display name)
  - Session: the authenticated identity (never carries the password)
  - Bet: a binary proposition with a point stake and its votes
  - Vote: one user's yes/no call with a stake snapshot
  - Winner: a winning voter and their computed payout

# Invariants

Bets obey a small state machine enforced by package engine:

	Open --(vote, one per user)--> Open
	Open --(resolve, creator only)--> Resolved

Nothing leaves Resolved. Result and Winners are set exactly when
Resolved becomes true. A vote's Points is fixed when the vote is cast.

# Persistence Shape

The JSON tags are the persistence contract: Session marshals to
{"username","name"} under key "user", and the bet list marshals under
key "bets" with the field names the original app wrote ("userId",
"vote", "timestamp", winners' payout under "points").

# Constants

Stake range:

	MinPoints = 1
	MaxPoints = 50

Store keys:

	KeySession = "user"
	KeyBets    = "bets"
*/
package models
