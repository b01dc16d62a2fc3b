// Package toc replaces a {toc} placeholder marker in an HTML document
// fragment with a generated, hierarchical table of contents derived from
// the fragment's own heading tags, injecting anchors into those headings
// so the TOC links resolve. It is a pure text transform: no I/O, no
// shared state, best effort over markup that may not be well-formed.
package toc

import (
	"regexp"
	"sort"
	"strings"
)

// markerPattern matches `{toc}` or `{toc <options>}`, case-insensitive on
// the literal toc. Only the first occurrence in a document is processed;
// later occurrences remain literally in the output.
var markerPattern = regexp.MustCompile(`(?i)\{toc(\s[^}]*)?\}`)

// Insert replaces the first {toc} marker in doc with a generated table of
// contents and rewrites each surviving heading with an anchor. Marker
// options override base. When doc contains no marker it is returned
// unchanged. A marker with zero surviving headings is removed and the
// rest of the document is left untouched.
func Insert(doc string, base Options) string {
	loc := markerPattern.FindStringSubmatchIndex(doc)
	if loc == nil {
		return doc
	}

	body := ""
	if loc[2] >= 0 {
		body = doc[loc[2]:loc[3]]
	}
	opts := parseMarkerOptions(body, base)

	headings := ExtractHeadings(doc, opts.MinLevel, opts.MaxLevel)
	annotate(headings, opts)
	list := BuildList(headings)

	return splice(doc, loc[0], loc[1], list, headings, opts)
}

// Headings extracts and annotates the headings Insert would link, without
// rewriting the document. The marker (if any) is ignored; opts apply as-is.
func Headings(doc string, opts Options) []Heading {
	headings := ExtractHeadings(doc, opts.MinLevel, opts.MaxLevel)
	annotate(headings, opts)
	return headings
}

// edit is one pending textual substitution, keyed by the span of the
// exact matched text in the source document.
type edit struct {
	start, end  int
	replacement string
}

// splice rebuilds the document in a single left-to-right pass, replacing
// the marker span with the list markup and each heading span with its
// anchored rewrite. Spans come from the original document and are
// disjoint, so the pass is linear and observably identical to replacing
// the first remaining occurrence of each original match in document
// order. A marker overlapping a heading span is left to the heading
// rewrite and not replaced separately.
func splice(doc string, markerStart, markerEnd int, list string, headings []Heading, opts Options) string {
	edits := make([]edit, 0, len(headings)+1)
	for _, h := range headings {
		edits = append(edits, edit{h.Start, h.End, renderHeading(h, opts)})
	}

	markerOverlaps := false
	for _, e := range edits {
		if markerStart < e.end && e.start < markerEnd {
			markerOverlaps = true
			break
		}
	}
	if !markerOverlaps {
		edits = append(edits, edit{markerStart, markerEnd, list})
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })

	var b strings.Builder
	b.Grow(len(doc) + len(list))
	cur := 0
	for _, e := range edits {
		b.WriteString(doc[cur:e.start])
		b.WriteString(e.replacement)
		cur = e.end
	}
	b.WriteString(doc[cur:])
	return b.String()
}

// renderHeading produces the anchored replacement for one heading: an
// empty named anchor element immediately followed by the heading tag
// rebuilt from its original name and attributes with the new display
// markup. The name-style anchor is always emitted for compatibility with
// the documented #anchorId link format; EmitHeadingID additionally puts
// an id attribute on the heading tag itself.
func renderHeading(h Heading, opts Options) string {
	var b strings.Builder
	b.WriteString(`<a name="`)
	b.WriteString(h.AnchorID)
	b.WriteString(`"></a><`)
	b.WriteString(h.TagName)
	b.WriteString(h.Attributes)
	if opts.EmitHeadingID {
		b.WriteString(` id="`)
		b.WriteString(h.AnchorID)
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(h.Display)
	b.WriteString("</")
	b.WriteString(h.TagName)
	b.WriteString(">")
	return b.String()
}
