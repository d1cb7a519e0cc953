// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package app

import (
	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/wetten/models"
)

// BetView is one bet prepared for rendering: the bet itself plus the
// tallies and per-viewer flags the bet card shows.
type BetView struct {
	models.Bet
	Created    string // relative, e.g. "3 minutes ago"
	TotalVotes int
	YesVotes   int
	NoVotes    int
	HasVoted   bool // the viewer already voted
	CanResolve bool // the viewer created it and it is still open
}

// Snapshot is the full state the presentation renders from.
type Snapshot struct {
	Session      *models.Session
	Bets         []BetView
	Notification string
}

// Snapshot derives the current render state. It is read-only; rendering
// never mutates the held bet list.
func (a *App) Snapshot() Snapshot {
	snap := Snapshot{
		Bets:         make([]BetView, 0, len(a.bets)),
		Notification: a.notes.Message(),
	}
	if a.session != nil {
		sess := *a.session
		snap.Session = &sess
	}

	for _, b := range a.bets {
		yes, no := b.Tally()
		view := BetView{
			Bet:        b,
			Created:    humanize.Time(b.CreatedAt),
			TotalVotes: len(b.Votes),
			YesVotes:   yes,
			NoVotes:    no,
		}
		if a.session != nil {
			view.HasVoted = b.HasVoted(a.session.UserID)
			view.CanResolve = !b.Resolved && b.CreatorID == a.session.UserID
		}
		snap.Bets = append(snap.Bets, view)
	}

	return snap
}
