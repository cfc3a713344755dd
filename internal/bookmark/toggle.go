// Package bookmark holds the optimistic bookmark toggle shown on command pages.
package bookmark

import (
	"context"
	"fmt"
)

// Store is the part of the bookmark store the toggle needs.
type Store interface {
	HasBookmark(ctx context.Context, commandID int64) (bool, error)
	AddBookmark(ctx context.Context, commandID int64) error
	RemoveBookmark(ctx context.Context, commandID int64) error
}

// Change describes one toggle transition.
type Change struct {
	CommandID  int64
	Bookmarked bool // state after the flip
}

// Toggle tracks the presented bookmark state of one command.
type Toggle struct {
	store      Store
	commandID  int64
	bookmarked bool
}

// New queries the store for the command's initial state.
func New(ctx context.Context, store Store, commandID int64) (*Toggle, error) {
	bookmarked, err := store.HasBookmark(ctx, commandID)
	if err != nil {
		return nil, fmt.Errorf("load bookmark state: %w", err)
	}
	return &Toggle{store: store, commandID: commandID, bookmarked: bookmarked}, nil
}

// CommandID returns the command the toggle belongs to.
func (t *Toggle) CommandID() int64 {
	return t.commandID
}

// Bookmarked returns the presented state.
func (t *Toggle) Bookmarked() bool {
	return t.bookmarked
}

// Flip switches the presented state first and then issues a single add or
// remove to the store. A store error is returned with the change; the
// presented state stays flipped until the caller reverts it.
func (t *Toggle) Flip(ctx context.Context) (Change, error) {
	t.bookmarked = !t.bookmarked
	change := Change{CommandID: t.commandID, Bookmarked: t.bookmarked}

	var err error
	if t.bookmarked {
		err = t.store.AddBookmark(ctx, t.commandID)
	} else {
		err = t.store.RemoveBookmark(ctx, t.commandID)
	}
	if err != nil {
		return change, fmt.Errorf("persist bookmark %d: %w", t.commandID, err)
	}
	return change, nil
}

// Revert undoes the presented state of a change. It does not touch the store.
func (t *Toggle) Revert(change Change) {
	if change.CommandID != t.commandID || change.Bookmarked != t.bookmarked {
		return
	}
	t.bookmarked = !change.Bookmarked
}
