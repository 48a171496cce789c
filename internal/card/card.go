// Package card models the bookmark toggle of one companion card. The
// displayed state flips only after the server call resolves; while a
// toggle is in flight the trigger is rejected, so a card never has two
// concurrent toggles and never shows state the server might revert.
package card

import (
	"context"
	"errors"
	"log"
	"sync"
)

// ErrTogglePending is returned when a toggle is requested while a
// previous toggle for the same card is still in flight.
var ErrTogglePending = errors.New("bookmark toggle already in flight")

// ToggleFunc performs the add or remove matching the target state.
type ToggleFunc func(ctx context.Context, target bool) error

// Card tracks the displayed bookmark state of one companion.
type Card struct {
	CompanionID string

	mu         sync.Mutex
	pending    bool
	bookmarked bool
	logger     *log.Logger
}

// New creates a card showing the given initial bookmark state.
func New(companionID string, bookmarked bool) *Card {
	return &Card{
		CompanionID: companionID,
		bookmarked:  bookmarked,
	}
}

// SetLogger redirects failure reports; the default logger is used
// otherwise.
func (c *Card) SetLogger(l *log.Logger) {
	c.mu.Lock()
	c.logger = l
	c.mu.Unlock()
}

// Bookmarked returns the currently displayed state. While a toggle is
// in flight this is still the prior value.
func (c *Card) Bookmarked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bookmarked
}

// Pending reports whether a toggle is in flight.
func (c *Card) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Toggle runs do toward the opposite of the displayed state. On success
// the displayed state commits to the target; on failure it stays where
// it was and the error is logged and returned. A second toggle while
// one is in flight returns ErrTogglePending.
func (c *Card) Toggle(ctx context.Context, do ToggleFunc) error {
	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return ErrTogglePending
	}
	c.pending = true
	target := !c.bookmarked
	c.mu.Unlock()

	err := do(ctx, target)

	c.mu.Lock()
	c.pending = false
	if err == nil {
		c.bookmarked = target
	}
	logger := c.logger
	c.mu.Unlock()

	if err != nil {
		if logger == nil {
			logger = log.Default()
		}
		logger.Printf("Failed to toggle bookmark for companion %s: %v", c.CompanionID, err)
	}
	return err
}
