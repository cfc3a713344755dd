package model

import "time"

// Bookmark marks a command as saved by the user of this installation.
// There is at most one bookmark per command.
type Bookmark struct {
	CommandID int64     `json:"commandId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewBookmark creates a Bookmark for the command stamped with the current time.
func NewBookmark(commandID int64) Bookmark {
	return Bookmark{
		CommandID: commandID,
		CreatedAt: time.Now(),
	}
}
