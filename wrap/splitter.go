// Package wrap splits text into lines that fit a pixel width budget.
//
// Wrapping is greedy and measurement-driven: for each line, the whole
// remaining text is taken as a candidate and trimmed at its last
// whitespace until it fits. A candidate without any whitespace left
// can't be trimmed further and is accepted as-is, overflowing the
// budget. This guarantees that every step makes progress, so the
// sequence is always finite, even for budgets smaller than any glyph.
//
// Basic usage:
//   splitter := wrap.NewSplitter(text, 120, measure)
//   for {
//       segment, ok := splitter.Next()
//       if !ok { break }
//       draw(segment.Text)
//   }
package wrap

import "strings"

// Whitespace bytes at which lines can be split.
const Breakers = " \t\n"

// MeasureFunc returns the pixel width of the given text.
type MeasureFunc func(text string) int

// Segment is a single wrapped line.
type Segment struct {
	Text   string // line text, without the whitespace that caused the split
	Offset int    // byte offset of Text in the original string
	Width  int    // measured width of Text
	Last   bool   // whether this is the last segment of the sequence
}

// Overflows reports whether the segment is an unsplittable token that
// didn't fit the given width limit.
func (self Segment) Overflows(widthLimit int) bool {
	return self.Width > widthLimit
}

// Splitter produces the wrapped lines of a text one by one. It's lazy
// and can't be restarted.
//
// Invariant: each call to [Splitter.Next] that returns a non-last
// segment advances the internal cursor by at least one byte, so a
// text of n bytes produces at most n + 1 segments.
type Splitter struct {
	text       string
	cursor     int
	widthLimit int
	measure    MeasureFunc
	done       bool
}

// Creates a new splitter for the given text.
func NewSplitter(text string, widthLimit int, measure MeasureFunc) *Splitter {
	return &Splitter{text: text, widthLimit: widthLimit, measure: measure}
}

// Returns the next segment, or false if the sequence is exhausted.
// Empty text produces a single empty segment.
func (self *Splitter) Next() (Segment, bool) {
	if self.done {
		return Segment{}, false
	}

	remaining := self.text[self.cursor:]
	candidate := remaining
	width := self.measure(candidate)
	for width > self.widthLimit {
		cut := strings.LastIndexAny(candidate, Breakers)
		if cut == -1 {
			break // unsplittable token, accept overflow
		}
		candidate = candidate[:cut]
		width = self.measure(candidate)
	}

	segment := Segment{Text: candidate, Offset: self.cursor, Width: width}
	if len(candidate) == len(remaining) {
		self.done = true
		segment.Last = true
		return segment, true
	}

	// skip the candidate and the whitespace byte it was split at
	self.cursor += len(candidate) + 1
	return segment, true
}

// Remaining returns the text not consumed yet.
func (self *Splitter) Remaining() string {
	if self.done {
		return ""
	}
	return self.text[self.cursor:]
}

// Lines is a helper to collect all the segments of a text at once.
func Lines(text string, widthLimit int, measure MeasureFunc) []Segment {
	var segments []Segment
	splitter := NewSplitter(text, widthLimit, measure)
	for {
		segment, ok := splitter.Next()
		if !ok {
			return segments
		}
		segments = append(segments, segment)
	}
}
