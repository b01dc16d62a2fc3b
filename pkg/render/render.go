// Package render bridges input and output formats around the TOC filter:
// markdown sources are rendered to HTML before the filter runs, and
// transformed HTML can be converted back to markdown afterwards.
package render

import (
	"bytes"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"

	"toc-filter/pkg/utils"
)

// MarkdownToHTML renders markdown source to an HTML fragment so the TOC
// filter can operate on the resulting heading tags. A {toc} marker in the
// source passes through as literal text. Quoted marker option values may
// be entity-escaped by the renderer; unquoted values are safe.
func MarkdownToHTML(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(source, &buf); err != nil {
		return "", utils.WrapErrorf(utils.ErrMarkdownRender, "%v", err)
	}
	return buf.String(), nil
}

// HTMLToMarkdown converts a transformed HTML fragment back to markdown.
func HTMLToMarkdown(html string) (string, error) {
	converter := md.NewConverter("", true, nil)
	out, err := converter.ConvertString(html)
	if err != nil {
		return "", utils.WrapErrorf(utils.ErrMarkdownConversion, "%v", err)
	}
	return out, nil
}

// DocumentTitle extracts the document title for log context: the <title>
// text if present, otherwise the first heading. Returns "" when neither
// exists or the markup cannot be parsed at all.
func DocumentTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1,h2,h3,h4,h5,h6").First().Text())
	}
	return title
}
