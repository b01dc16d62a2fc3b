package toc

import (
	"strconv"
	"strings"
)

// chapterCounter tracks the current chapter count per heading level for
// the duration of one TOC build. It is always a local value threaded
// through the annotation pass, never shared across invocations.
type chapterCounter struct {
	counts [7]int // indexed by heading level 1-6
}

// advance increments the counter for level and resets every deeper level.
func (c *chapterCounter) advance(level int) {
	c.counts[level]++
	for l := level + 1; l < len(c.counts); l++ {
		c.counts[l] = 0
	}
}

// parts returns the non-zero counters from level 1 through level as
// decimal strings. Zero-valued intermediate levels are omitted: a
// document jumping from h1 straight to h3 numbers the h3 as "1.1", not
// "1.0.1".
func (c *chapterCounter) parts(level int) []string {
	ps := make([]string, 0, level)
	for l := 1; l <= level; l++ {
		if c.counts[l] > 0 {
			ps = append(ps, strconv.Itoa(c.counts[l]))
		}
	}
	return ps
}

// annotate assigns anchor IDs (and, when numbering is enabled, chapter
// number prefixes) to headings in place, in document order.
func annotate(headings []Heading, opts Options) {
	var counter chapterCounter
	for i := range headings {
		h := &headings[i]
		slug := Slugify(h.RawInner)

		if !opts.ChapterNumbers {
			h.AnchorID = slug
			continue
		}

		counter.advance(h.Level)
		parts := counter.parts(h.Level)
		h.Display = opts.Prefix + " " + strings.Join(parts, ".") + ". " + h.RawInner

		anchorNumber := strings.Join(parts, "-")
		if slug == "" {
			h.AnchorID = anchorNumber
		} else {
			h.AnchorID = anchorNumber + "-" + slug
		}
	}
}
