package model

// Command is one documented Linux command from the bundled catalog.
type Command struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

// CommandSection is a titled block of a command page (SYNOPSIS, EXAMPLES, ...).
// Content is markdown.
type CommandSection struct {
	ID        int64  `json:"id" yaml:"-"`
	CommandID int64  `json:"commandId" yaml:"-"`
	Position  int    `json:"position" yaml:"-"`
	Title     string `json:"title" yaml:"title"`
	Content   string `json:"content" yaml:"content"`
}

// CommandPage bundles a command with its ordered sections.
type CommandPage struct {
	Command  Command
	Sections []CommandSection
}
