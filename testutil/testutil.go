// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/wetten/config"
	"github.com/danielhkuo/wetten/kvstore"
	"github.com/danielhkuo/wetten/models"
)

// Directory accounts used across tests
var (
	John = models.User{ID: "user1", Password: "pass1", Name: "John"}
	Emma = models.User{ID: "user2", Password: "pass2", Name: "Emma"}
	Mike = models.User{ID: "user3", Password: "pass3", Name: "Mike"}
)

// TestConfig returns a config pointing at a throwaway sqlite file, with
// a short notification TTL so tests that wait for the auto-clear stay
// fast.
func TestConfig(t *testing.T) config.Config {
	t.Helper()

	return config.Config{
		DatabaseURL:     filepath.Join(t.TempDir(), "wetten-test.db"),
		DatabaseType:    "sqlite",
		NotificationTTL: 100 * time.Millisecond,
	}
}

// OpenTestStore opens a kvstore on the configured database and closes it
// when the test ends.
func OpenTestStore(t *testing.T, cfg config.Config) *kvstore.Store {
	t.Helper()

	store, err := kvstore.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// SessionFor builds the session Login would produce for a directory user.
func SessionFor(u models.User) models.Session {
	return models.Session{UserID: u.ID, Name: u.Name}
}

// MakeBet builds an open bet created by the given user.
func MakeBet(id int64, creator models.User, title string, points int) models.Bet {
	return models.Bet{
		ID:          id,
		Title:       title,
		Points:      points,
		CreatorName: creator.Name,
		CreatorID:   creator.ID,
		Votes:       []models.Vote{},
		CreatedAt:   time.Unix(0, id*int64(time.Millisecond)),
	}
}

// WithVotes returns a copy of the bet with the votes appended, each
// staking the bet's own point value.
func WithVotes(bet models.Bet, votes ...models.Vote) models.Bet {
	bet.Votes = append(append([]models.Vote{}, bet.Votes...), votes...)
	return bet
}

// VoteBy builds a vote staking the given points.
func VoteBy(u models.User, choice bool, points int) models.Vote {
	return models.Vote{VoterID: u.ID, VoterName: u.Name, Choice: choice, Points: points}
}
