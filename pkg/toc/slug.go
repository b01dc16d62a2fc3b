package toc

import (
	"regexp"
	"strings"
)

var (
	embeddedMarkup = regexp.MustCompile(`<[^>]*>`)    // tags inside heading content
	nonSlugRuns    = regexp.MustCompile(`[^a-z0-9]+`) // maximal runs outside the slug alphabet
)

// Slugify derives a lowercase, hyphen-delimited, URL-safe identifier from
// heading content. Embedded markup is stripped, every maximal run of
// characters outside [a-z0-9] collapses to a single hyphen, and leading or
// trailing hyphens are trimmed. Content that slugifies to nothing yields
// an empty string; that is accepted, not an error. Idempotent: slugifying
// a slug returns it unchanged.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = embeddedMarkup.ReplaceAllString(s, "")
	s = nonSlugRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
