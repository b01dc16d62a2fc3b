package toc

import (
	"regexp"
	"strconv"
	"strings"
)

// Options control one TOC insertion. Marker options parsed from the
// document override whatever the caller passes as the base.
type Options struct {
	MinLevel       int    // inclusive lower bound on heading levels
	MaxLevel       int    // inclusive upper bound on heading levels
	ChapterNumbers bool   // enable hierarchical chapter numbering
	Prefix         string // literal string prepended to the numbering display
	EmitHeadingID  bool   // also set id= on the rewritten heading tag
}

// DefaultOptions returns the option defaults: all levels, no numbering.
func DefaultOptions() Options {
	return Options{MinLevel: 1, MaxLevel: 6}
}

// optionPair matches one key=value token; values may be double- or
// single-quoted to carry whitespace.
var optionPair = regexp.MustCompile(`(\w+)=("[^"]*"|'[^']*'|\S+)`)

// parseMarkerOptions overlays key=value pairs from the marker body onto
// base. Keys are case-sensitive; unrecognized keys and malformed
// fragments are ignored, leaving the base value in place.
func parseMarkerOptions(body string, base Options) Options {
	opts := base
	for _, m := range optionPair.FindAllStringSubmatch(body, -1) {
		key, val := m[1], m[2]
		if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') {
			val = val[1 : len(val)-1]
		}
		switch key {
		case "minlevel":
			if n, err := strconv.Atoi(val); err == nil {
				opts.MinLevel = n
			}
		case "maxlevel":
			if n, err := strconv.Atoi(val); err == nil {
				opts.MaxLevel = n
			}
		case "chapternumbers":
			opts.ChapterNumbers = strings.ToLower(val) == "true"
		case "prefix":
			opts.Prefix = val
		}
	}
	return opts
}
