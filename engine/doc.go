// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine is the bet settlement and voting core.

# Shape

Every operation is a pure function over the bet list: it takes the
current list plus the acting session and returns a new list or an error,
never mutating its input and never reading ambient state (the clock is a
parameter to CreateBet). The caller owns the list and is responsible for
persisting the returned value.

	bets, bet, err := engine.CreateBet(bets, sess, "Rain tomorrow?", 10, time.Now())
	bets, err = engine.CastVote(bets, sess, bet.ID, true)
	bets, err = engine.ResolveBet(bets, sess, bet.ID, true)

# Rules

  - CreateBet: non-blank title, points in [1,50]; ids are creation-time
    milliseconds, bumped to stay unique and increasing within the list.
  - CastVote: one vote per user per bet, first one wins; no voting on a
    resolved bet. The vote stakes the bet's point value as of creation.
  - ResolveBet: creator only, exactly once. Votes matching the result
    win; each winner is paid their own stake plus an equal share of all
    losing stakes. With no winners the losing stakes are void (unclaimed
    pool — nothing is carried over).

# Errors

All failures are sentinel errors (ErrBetNotFound, ErrAlreadyVoted,
ErrBetClosed, ErrNotCreator, ErrAlreadyResolved, ErrEmptyTitle,
ErrPointsRange) and leave the returned list identical to the input.
*/
package engine
