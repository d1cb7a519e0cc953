// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package app

import (
	"errors"
	"log/slog"
	"time"

	"github.com/danielhkuo/wetten/auth"
	"github.com/danielhkuo/wetten/config"
	"github.com/danielhkuo/wetten/engine"
	"github.com/danielhkuo/wetten/kvstore"
	"github.com/danielhkuo/wetten/models"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Draft is the in-progress new-bet form state held for the presentation.
type Draft struct {
	Title  string
	Points int
}

// App accepts the presentation layer's intents, threads the current
// session and bet list through the engine, and persists after every
// mutation. It is built for the app's single-actor model: one caller at
// a time, each intent completing before the next begins.
type App struct {
	store *kvstore.Store
	dir   auth.Directory
	now   func() time.Time

	session *models.Session
	bets    []models.Bet
	draft   Draft
	notes   *Notifier
}

// New restores state from the store: a persisted session logs the user
// back in, and the persisted bet list is reloaded. Anything absent or
// corrupt degrades to logged-out / empty rather than failing.
func New(store *kvstore.Store, dir auth.Directory, cfg config.Config) *App {
	a := &App{
		store: store,
		dir:   dir,
		now:   time.Now,
		bets:  []models.Bet{},
		draft: Draft{Points: models.MinPoints},
		notes: NewNotifier(cfg.NotificationTTL),
	}

	var sess models.Session
	ok, err := store.Get(models.KeySession, &sess)
	if err != nil {
		slog.Error("failed to load session", "error", err)
	} else if ok {
		a.session = &sess
		slog.Info("session restored", "user", sess.UserID)
	}

	var bets []models.Bet
	ok, err = store.Get(models.KeyBets, &bets)
	if err != nil {
		slog.Error("failed to load bets", "error", err)
	} else if ok && bets != nil {
		a.bets = bets
	}

	return a
}

// Session returns the authenticated identity, if any.
func (a *App) Session() (models.Session, bool) {
	if a.session == nil {
		return models.Session{}, false
	}
	return *a.session, true
}

// Login authenticates against the directory and persists the session so
// it survives a restart. The session never includes the password.
func (a *App) Login(username, password string) (models.Session, error) {
	sess, err := auth.Login(a.dir, username, password)
	if err != nil {
		return models.Session{}, err
	}

	a.session = &sess
	if err := a.store.Set(models.KeySession, sess); err != nil {
		// The login itself stands; only the reload guarantee is lost.
		slog.Error("failed to persist session", "error", err)
	}

	slog.Info("user logged in", "user", sess.UserID)
	return sess, nil
}

// Logout clears the session, the persisted copy, and any form state.
func (a *App) Logout() {
	if a.session != nil {
		slog.Info("user logged out", "user", a.session.UserID)
	}
	a.session = nil
	a.draft = Draft{Points: models.MinPoints}

	if err := a.store.Remove(models.KeySession); err != nil {
		slog.Error("failed to remove persisted session", "error", err)
	}
}

// CreateBet opens a new bet staked at the given points.
func (a *App) CreateBet(title string, points int) (models.Bet, error) {
	if a.session == nil {
		return models.Bet{}, ErrNotLoggedIn
	}

	next, bet, err := engine.CreateBet(a.bets, *a.session, title, points, a.now())
	if err != nil {
		return models.Bet{}, err
	}
	if err := a.commit(next); err != nil {
		return models.Bet{}, err
	}

	a.draft = Draft{Points: models.MinPoints}
	a.notes.Flash("Bet created successfully!")
	slog.Info("bet created", "bet_id", bet.ID, "creator", bet.CreatorID, "points", bet.Points)
	return bet, nil
}

// CastVote records the current user's yes/no call on a bet.
func (a *App) CastVote(betID int64, choice bool) error {
	if a.session == nil {
		return ErrNotLoggedIn
	}

	next, err := engine.CastVote(a.bets, *a.session, betID, choice)
	if err != nil {
		return err
	}
	if err := a.commit(next); err != nil {
		return err
	}

	a.notes.Flash("Vote recorded successfully!")
	slog.Info("vote cast", "bet_id", betID, "voter", a.session.UserID, "choice", choice)
	return nil
}

// ResolveBet settles a bet the current user created.
func (a *App) ResolveBet(betID int64, result bool) error {
	if a.session == nil {
		return ErrNotLoggedIn
	}

	next, err := engine.ResolveBet(a.bets, *a.session, betID, result)
	if err != nil {
		return err
	}
	if err := a.commit(next); err != nil {
		return err
	}

	a.notes.Flash("Bet resolved successfully!")
	slog.Info("bet resolved", "bet_id", betID, "result", result)
	return nil
}

// Draft returns the held new-bet form state.
func (a *App) Draft() Draft {
	return a.draft
}

// SetDraft stores in-progress form state on behalf of the presentation.
func (a *App) SetDraft(d Draft) {
	a.draft = d
}

// commit persists the new bet list and only then adopts it, so a failed
// write leaves the held state matching what is actually stored.
func (a *App) commit(bets []models.Bet) error {
	if err := a.store.Set(models.KeyBets, bets); err != nil {
		return err
	}
	a.bets = bets
	return nil
}
