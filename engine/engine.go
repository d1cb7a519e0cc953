// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"strings"
	"time"

	"github.com/danielhkuo/wetten/models"
)

var (
	ErrEmptyTitle      = errors.New("bet title is required")
	ErrPointsRange     = errors.New("points must be between 1 and 50")
	ErrBetNotFound     = errors.New("bet not found")
	ErrAlreadyVoted    = errors.New("you have already voted on this bet")
	ErrBetClosed       = errors.New("voting is closed on a resolved bet")
	ErrNotCreator      = errors.New("only the bet creator can resolve it")
	ErrAlreadyResolved = errors.New("bet has already been resolved")
)

// CreateBet appends a new open bet to the list and returns the new list
// and the bet. The input list is never modified; on error it is returned
// as-is. The caller supplies the clock so the same inputs always produce
// the same output.
func CreateBet(bets []models.Bet, session models.Session, title string, points int, now time.Time) ([]models.Bet, models.Bet, error) {
	if strings.TrimSpace(title) == "" {
		return bets, models.Bet{}, ErrEmptyTitle
	}
	if points < models.MinPoints || points > models.MaxPoints {
		return bets, models.Bet{}, ErrPointsRange
	}

	bet := models.Bet{
		ID:          nextID(bets, now),
		Title:       title,
		Points:      points,
		CreatorName: session.Name,
		CreatorID:   session.UserID,
		Votes:       []models.Vote{},
		CreatedAt:   now,
	}

	next := make([]models.Bet, len(bets), len(bets)+1)
	copy(next, bets)
	return append(next, bet), bet, nil
}

// CastVote records the session user's yes/no call on the identified bet,
// staking the bet's point value. The first vote per user wins; voting on
// a resolved bet is rejected here regardless of what the UI disables.
// All other bets and fields are untouched.
func CastVote(bets []models.Bet, session models.Session, betID int64, choice bool) ([]models.Bet, error) {
	i := indexOf(bets, betID)
	if i < 0 {
		return bets, ErrBetNotFound
	}

	bet := bets[i]
	if bet.Resolved {
		return bets, ErrBetClosed
	}
	if bet.HasVoted(session.UserID) {
		return bets, ErrAlreadyVoted
	}

	votes := make([]models.Vote, len(bet.Votes), len(bet.Votes)+1)
	copy(votes, bet.Votes)
	bet.Votes = append(votes, models.Vote{
		VoterID:   session.UserID,
		VoterName: session.Name,
		Choice:    choice,
		Points:    bet.Points,
	})

	return replace(bets, i, bet), nil
}

// nextID derives a creation-time id: the clock in milliseconds, bumped
// past the list's current maximum so two bets created within the same
// millisecond still get distinct, strictly increasing ids.
func nextID(bets []models.Bet, now time.Time) int64 {
	id := now.UnixMilli()
	for _, b := range bets {
		if b.ID >= id {
			id = b.ID + 1
		}
	}
	return id
}

func indexOf(bets []models.Bet, betID int64) int {
	for i, b := range bets {
		if b.ID == betID {
			return i
		}
	}
	return -1
}

// replace returns a copy of the list with position i swapped for bet,
// leaving the input list untouched.
func replace(bets []models.Bet, i int, bet models.Bet) []models.Bet {
	next := make([]models.Bet, len(bets))
	copy(next, bets)
	next[i] = bet
	return next
}
