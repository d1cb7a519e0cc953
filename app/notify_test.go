// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package app

import (
	"testing"
	"time"
)

func TestNotifier_FlashAndAutoClear(t *testing.T) {
	n := NewNotifier(50 * time.Millisecond)

	n.Flash("Bet created successfully!")
	if got := n.Message(); got != "Bet created successfully!" {
		t.Fatalf("Message() = %q immediately after Flash", got)
	}

	time.Sleep(200 * time.Millisecond)
	if got := n.Message(); got != "" {
		t.Errorf("Message() = %q after TTL, want cleared", got)
	}
}

func TestNotifier_LatestMessageWins(t *testing.T) {
	n := NewNotifier(100 * time.Millisecond)

	n.Flash("first")
	time.Sleep(60 * time.Millisecond)
	n.Flash("second")

	// The first message's timer fires now; it must not clear the second
	// message, whose own delay is still running.
	time.Sleep(60 * time.Millisecond)
	if got := n.Message(); got != "second" {
		t.Errorf("Message() = %q, want %q (stale timer must not clear)", got, "second")
	}

	time.Sleep(150 * time.Millisecond)
	if got := n.Message(); got != "" {
		t.Errorf("Message() = %q after second TTL, want cleared", got)
	}
}

func TestNotifier_Clear(t *testing.T) {
	n := NewNotifier(time.Minute)

	n.Flash("lingering")
	n.Clear()
	if got := n.Message(); got != "" {
		t.Errorf("Message() = %q after Clear()", got)
	}
}
