package service

import (
	"sync"
	"time"
)

// Countdown is a cancellable one-second-tick handle. The session owns at
// most one live Countdown at a time; starting a new exam run stops the
// previous handle before creating the next, so two tickers can never drive
// the same session.
type Countdown struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// NewCountdown starts a goroutine invoking onTick every interval until Stop.
func NewCountdown(interval time.Duration, onTick func()) *Countdown {
	c := &Countdown{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-c.done:
				return
			case <-c.ticker.C:
				onTick()
			}
		}
	}()
	return c
}

// Stop cancels the countdown. Safe to call more than once and from tick
// callbacks; a tick already in flight when Stop returns is tolerated by the
// session, which ignores ticks outside the quiz screen.
func (c *Countdown) Stop() {
	c.once.Do(func() {
		c.ticker.Stop()
		close(c.done)
	})
}
