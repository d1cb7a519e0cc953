// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package app

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/wetten/config"
)

// Notifier holds the single transient user-facing message. The latest
// message wins: flashing a new one overwrites whatever was showing and
// restarts the auto-clear delay. There is no queue.
type Notifier struct {
	ttl time.Duration

	mu      sync.Mutex
	message string
	token   string
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = config.DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl}
}

// Flash shows a message and schedules its clear. Each Flash mints a
// token; the scheduled clear only fires if its token is still current,
// so a stale timer from an overwritten message leaves the newer one
// alone.
func (n *Notifier) Flash(message string) {
	token := uuid.NewString()

	n.mu.Lock()
	n.message = message
	n.token = token
	n.mu.Unlock()

	time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.token == token {
			n.message = ""
			n.token = ""
		}
	})
}

// Message returns the currently visible message, or "" once cleared.
func (n *Notifier) Message() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message
}

// Clear dismisses the current message immediately.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = ""
	n.token = ""
}
