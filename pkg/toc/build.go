package toc

import "strings"

// BuildList renders nested list markup for the annotated headings.
// Nesting depth is relative: the shallowest level present becomes depth 1,
// so a document using only h2/h3 produces a two-level list, not a
// six-level one. A jump of more than one level between consecutive
// headings opens (or closes) one list per unit of difference, which can
// produce intermediate levels holding a single entry. An empty heading
// slice yields an empty string.
func BuildList(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}

	baseLevel := headings[0].Level
	for _, h := range headings[1:] {
		if h.Level < baseLevel {
			baseLevel = h.Level
		}
	}

	var b strings.Builder
	prev := 0
	for i, h := range headings {
		rel := h.Level - baseLevel + 1
		switch {
		case rel > prev:
			for l := prev; l < rel; l++ {
				b.WriteString("<ul>")
			}
		case rel < prev:
			for l := rel; l < prev; l++ {
				b.WriteString("</li></ul>")
			}
			b.WriteString("</li>")
		default:
			if i > 0 {
				b.WriteString("</li>")
			}
		}
		b.WriteString(`<li><a href="#`)
		b.WriteString(h.AnchorID)
		b.WriteString(`">`)
		b.WriteString(h.Display)
		b.WriteString("</a>")
		prev = rel
	}
	for l := 0; l < prev; l++ {
		b.WriteString("</li></ul>")
	}
	return b.String()
}
