package model

// TipSectionKind tells how a tip section is rendered.
type TipSectionKind int

const (
	TipText TipSectionKind = iota
	TipCode
)

// String returns the dataset spelling of the kind.
func (k TipSectionKind) String() string {
	if k == TipCode {
		return "code"
	}
	return "text"
}

// ParseTipSectionKind maps the dataset spelling back to a kind.
// Anything other than "code" is text.
func ParseTipSectionKind(s string) TipSectionKind {
	if s == "code" {
		return TipCode
	}
	return TipText
}

// Tip is a short shell usage hint made of text and code sections.
type Tip struct {
	ID       int64        `json:"id"`
	Position int          `json:"position"`
	Title    string       `json:"title"`
	Sections []TipSection `json:"sections"`
}

// TipSection is one paragraph or code line of a tip.
type TipSection struct {
	ID       int64          `json:"id"`
	TipID    int64          `json:"tipId"`
	Position int            `json:"position"`
	Kind     TipSectionKind `json:"kind"`
	Data     string         `json:"data"`
}
