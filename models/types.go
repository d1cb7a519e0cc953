// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Stake limits for a new bet
const (
	MinPoints = 1
	MaxPoints = 50
)

// Keys used in the persistence store
const (
	KeySession = "user"
	KeyBets    = "bets"
)

// Domain types

// User is one entry in the static account directory. The password lives
// only here; it is never copied into a Session or persisted anywhere.
type User struct {
	ID       string
	Password string
	Name     string
}

// Session is the currently authenticated identity. Exactly these two
// fields are persisted under KeySession so a reload can re-establish it.
type Session struct {
	UserID string `json:"username"`
	Name   string `json:"name"`
}

// Vote is one user's yes/no call on a bet. Points is a snapshot of the
// bet's stake at creation time, copied into the vote rather than read
// live, so a cast vote can never drift from what the voter risked.
type Vote struct {
	VoterID   string `json:"userId"`
	VoterName string `json:"userName"`
	Choice    bool   `json:"vote"`
	Points    int    `json:"points"`
}

// Winner records one winning voter's payout after resolution. Payout is
// fractional: the voter's own stake plus an equal share of all losing
// stakes.
type Winner struct {
	VoterID   string  `json:"userId"`
	VoterName string  `json:"userName"`
	Payout    float64 `json:"points"`
}

// Bet is a binary proposition with a point stake. Result and Winners are
// set together when the creator resolves the bet, and never change again
// afterwards. Winners is an empty (non-nil) slice when the bet resolved
// but nobody voted the winning side.
//
// The JSON tags match the store blobs written by earlier versions of the
// app, so an existing "bets" value loads unchanged.
type Bet struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Points      int       `json:"points"`
	CreatorName string    `json:"creator"`
	CreatorID   string    `json:"creatorId"`
	Votes       []Vote    `json:"votes"`
	Resolved    bool      `json:"resolved"`
	Result      *bool     `json:"result,omitempty"`
	Winners     []Winner  `json:"winners"`
	CreatedAt   time.Time `json:"timestamp"`
}

// HasVoted reports whether the given user already has a vote on this bet.
func (b Bet) HasVoted(userID string) bool {
	for _, v := range b.Votes {
		if v.VoterID == userID {
			return true
		}
	}
	return false
}

// Tally counts the yes and no votes cast so far.
func (b Bet) Tally() (yes, no int) {
	for _, v := range b.Votes {
		if v.Choice {
			yes++
		} else {
			no++
		}
	}
	return yes, no
}
