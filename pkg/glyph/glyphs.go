package glyph

import "fmt"

// Glyph pairs a symbol with its meaning for rendering legends and rows.
type Glyph struct {
	Key      string
	Symbol   string
	Meaning  string
	Priority bool
}

const (
	escape     = "\x1b"
	resetCode  = 0
	boldCode   = 1
	underCode  = 4
	strikeCode = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 5)

	g = append(g, Glyph{
		Key:     "o",
		Symbol:  "○",
		Meaning: "task open",
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "task completed",
	}, Glyph{
		Key:      "l",
		Symbol:   "◉",
		Meaning:  "low priority",
		Priority: true,
	}, Glyph{
		Key:      "m",
		Symbol:   "◉◉",
		Meaning:  "medium priority",
		Priority: true,
	}, Glyph{
		Key:      "h",
		Symbol:   "◉◉◉",
		Meaning:  "high priority",
		Priority: true,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

type Status int
type Priority int

const (
	Open Status = iota
	Completed
	Low Priority = iota
	Medium
	High
)

func (s Status) Glyph() Glyph {
	return DefaultGlyphs()[s]
}

func (s Status) String() string {
	return s.Glyph().String()
}

func (p Priority) Glyph() Glyph {
	return DefaultGlyphs()[p]
}

func (p Priority) String() string {
	return p.Glyph().String()
}
