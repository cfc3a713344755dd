package model

// BasicCategory groups introductory one-liners by topic ("File and directory
// operations", "One-Liners", ...).
type BasicCategory struct {
	ID       int64  `json:"id"`
	Position int    `json:"position"`
	Title    string `json:"title"`
}

// Slug returns the file-name-safe identifier used by basics deep links.
func (c BasicCategory) Slug() string {
	return Slugify(c.Title)
}

// BasicGroup is a described set of shell lines inside a category.
type BasicGroup struct {
	ID          int64          `json:"id"`
	CategoryID  int64          `json:"categoryId"`
	Position    int            `json:"position"`
	Description string         `json:"description"`
	Commands    []BasicCommand `json:"commands"`
}

// BasicCommand is a single shell line.
// ManPages lists the catalog commands the line uses.
type BasicCommand struct {
	ID       int64    `json:"id"`
	GroupID  int64    `json:"groupId"`
	Command  string   `json:"command"`
	ManPages []string `json:"manPages"`
}
