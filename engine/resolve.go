// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "github.com/danielhkuo/wetten/models"

// ResolveBet settles the identified bet with the given result. Only the
// creator may resolve, and only once; the transition to resolved is
// one-way. On success the returned list has the bet marked resolved with
// its winners and payouts recorded; no other bet is touched. On error the
// input list is returned unchanged.
func ResolveBet(bets []models.Bet, session models.Session, betID int64, result bool) ([]models.Bet, error) {
	i := indexOf(bets, betID)
	if i < 0 {
		return bets, ErrBetNotFound
	}

	bet := bets[i]
	if session.UserID != bet.CreatorID {
		return bets, ErrNotCreator
	}
	if bet.Resolved {
		return bets, ErrAlreadyResolved
	}

	bet.Resolved = true
	bet.Result = &result
	bet.Winners = settle(bet.Votes, result)

	return replace(bets, i, bet), nil
}

// settle partitions the votes by the result and redistributes the losing
// stakes equally among the winners: each winner's payout is their own
// stake plus totalLost/len(winners). The share is real-valued, so payouts
// need not be whole points. Winners keep their original vote order.
//
// Unclaimed pool on no-winner resolution: when no vote matches the
// result, the losers' stakes are not assigned to anyone. There is no
// carry-over and no escrow; the pool is void.
func settle(votes []models.Vote, result bool) []models.Winner {
	var winning []models.Vote
	totalLost := 0
	for _, v := range votes {
		if v.Choice == result {
			winning = append(winning, v)
		} else {
			totalLost += v.Points
		}
	}

	winners := make([]models.Winner, 0, len(winning))
	if len(winning) == 0 {
		return winners
	}

	perWinner := float64(totalLost) / float64(len(winning))
	for _, v := range winning {
		winners = append(winners, models.Winner{
			VoterID:   v.VoterID,
			VoterName: v.VoterName,
			Payout:    float64(v.Points) + perWinner,
		})
	}
	return winners
}
