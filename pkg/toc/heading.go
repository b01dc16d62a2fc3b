package toc

import (
	"fmt"
	"regexp"
	"sort"
)

// Heading represents one matched heading tag, in document order.
type Heading struct {
	Level      int    // 1-6, from the tag name digit
	TagName    string // original tag name with its original casing (e.g. "h2", "H2")
	Attributes string // raw attribute text of the opening tag, preserved byte-for-byte
	RawInner   string // original inner markup, unmodified
	Display    string // RawInner, optionally prefixed with a chapter number string
	AnchorID   string // URL-safe identifier the TOC entry links to
	Start      int    // byte offset of the full match in the source document
	End        int    // byte offset one past the full match
	Original   string // exact matched substring, the replacement key for the rewrite
}

// headingPatterns holds one pattern per level so the closing tag name is
// forced to match the opening one (Go regexps have no backreferences).
// Inner content is non-greedy: the first closing tag of matching name
// terminates the match, so nested same-level tags are not supported.
var headingPatterns = func() [7]*regexp.Regexp {
	var ps [7]*regexp.Regexp
	for lvl := 1; lvl <= 6; lvl++ {
		ps[lvl] = regexp.MustCompile(fmt.Sprintf(`(?is)<(h%d)([^>]*)>(.*?)</h%d>`, lvl, lvl))
	}
	return ps
}()

// ExtractHeadings scans raw document text for h1..h6 tags (case-insensitive)
// and returns the matched headings in document order. Levels outside
// [minLevel, maxLevel] are not extracted and never reach any downstream
// step. Matching is textual, not a structural HTML parse: malformed or
// nested heading markup yields whatever the patterns happen to pair up.
// When matches of different levels overlap (nested headings), the
// earlier-starting match wins and the inner one is dropped so the
// resulting spans are disjoint.
func ExtractHeadings(doc string, minLevel, maxLevel int) []Heading {
	if minLevel < 1 {
		minLevel = 1
	}
	if maxLevel > 6 {
		maxLevel = 6
	}

	var found []Heading
	for lvl := minLevel; lvl <= maxLevel; lvl++ {
		for _, m := range headingPatterns[lvl].FindAllStringSubmatchIndex(doc, -1) {
			h := Heading{
				Level:      lvl,
				TagName:    doc[m[2]:m[3]],
				Attributes: doc[m[4]:m[5]],
				RawInner:   doc[m[6]:m[7]],
				Start:      m[0],
				End:        m[1],
				Original:   doc[m[0]:m[1]],
			}
			h.Display = h.RawInner
			found = append(found, h)
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Start < found[j].Start })

	// Drop matches that start inside a previously kept one
	out := found[:0]
	lastEnd := 0
	for _, h := range found {
		if h.Start < lastEnd {
			continue
		}
		out = append(out, h)
		lastEnd = h.End
	}
	return out
}
