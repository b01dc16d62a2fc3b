package toc

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_NoMarkerIdentity(t *testing.T) {
	docs := []string{
		"",
		"<p>plain text</p>",
		"<h1>Heading but no marker</h1>",
		"toc without braces",
		"{tocx} not a marker either",
	}

	for _, doc := range docs {
		assert.Equal(t, doc, Insert(doc, DefaultOptions()))
	}
}

func TestInsert_ChapterNumbersExample(t *testing.T) {
	doc := `{toc chapternumbers=true} <h1>Intro</h1> <h2>Setup</h2> <h2>Usage</h2>`

	out := Insert(doc, DefaultOptions())

	// Headings rewritten with anchors and numbered display text
	assert.Contains(t, out, `<a name="1-intro"></a><h1> 1. Intro</h1>`)
	assert.Contains(t, out, `<a name="1-1-setup"></a><h2> 1.1. Setup</h2>`)
	assert.Contains(t, out, `<a name="1-2-usage"></a><h2> 1.2. Usage</h2>`)
	assert.NotContains(t, out, "{toc")

	// Two-deep nested list: Intro at depth 1, Setup/Usage under it
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	top := parsed.Find("body > ul > li")
	require.Equal(t, 1, top.Length())
	assert.Equal(t, 2, top.Find("ul > li").Length())

	links := parsed.Find("ul a").Map(func(_ int, s *goquery.Selection) string {
		href, _ := s.Attr("href")
		return href
	})
	assert.Equal(t, []string{"#1-intro", "#1-1-setup", "#1-2-usage"}, links)
}

func TestInsert_MarkerCaseInsensitive(t *testing.T) {
	for _, marker := range []string{"{toc}", "{TOC}", "{Toc}"} {
		doc := marker + "<h2>Title</h2>"
		out := Insert(doc, DefaultOptions())
		assert.Contains(t, out, `<a href="#title">Title</a>`, "marker %s", marker)
	}
}

func TestInsert_OnlyFirstMarkerProcessed(t *testing.T) {
	doc := `{toc}<h2>One</h2>{toc maxlevel=1}`

	out := Insert(doc, DefaultOptions())

	// The second marker stays literally in the output
	assert.Contains(t, out, "{toc maxlevel=1}")
	assert.Equal(t, 1, strings.Count(out, `<ul>`))
}

func TestInsert_LevelFiltering(t *testing.T) {
	doc := `{toc minlevel=2 maxlevel=3 chapternumbers=true}<h1>Skip</h1><h2>Keep</h2><h4>Deep</h4>`

	out := Insert(doc, DefaultOptions())

	// Filtered headings are untouched: no anchor, no renumbering
	assert.Contains(t, out, "<h1>Skip</h1>")
	assert.Contains(t, out, "<h4>Deep</h4>")
	assert.NotContains(t, out, "skip")
	assert.NotContains(t, out, "deep")
	// The surviving h2 does not inherit a counter slot from the skipped h1
	assert.Contains(t, out, `<a name="1-keep"></a><h2> 1. Keep</h2>`)
}

func TestInsert_EmptyHeadingSetRemovesMarker(t *testing.T) {
	doc := `before {toc} after`

	out := Insert(doc, DefaultOptions())

	assert.Equal(t, "before  after", out)
}

func TestInsert_InvertedWindowRemovesMarker(t *testing.T) {
	doc := `{toc minlevel=5 maxlevel=2}<h3>Mid</h3>`

	out := Insert(doc, DefaultOptions())

	assert.Equal(t, "<h3>Mid</h3>", out)
}

func TestInsert_DuplicateHeadingsConsumedInOrder(t *testing.T) {
	doc := `{toc chapternumbers=true}<h2>Overview</h2><p>x</p><h2>Overview</h2>`

	out := Insert(doc, DefaultOptions())

	// Byte-identical headings each get a distinct, position-derived anchor
	first := strings.Index(out, `<a name="1-overview"></a><h2> 1. Overview</h2>`)
	second := strings.Index(out, `<a name="2-overview"></a><h2> 2. Overview</h2>`)
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	assert.Equal(t, 1, strings.Count(out, `name="1-overview"`))
	assert.Equal(t, 1, strings.Count(out, `name="2-overview"`))
}

func TestInsert_DuplicateSlugsWithoutNumberingCollide(t *testing.T) {
	// Documented quirk: without chapter numbers, identical content
	// slugifies to the same anchor for both headings.
	doc := `{toc}<h2>Overview</h2><h2>Overview</h2>`

	out := Insert(doc, DefaultOptions())

	assert.Equal(t, 2, strings.Count(out, `<a name="overview"></a>`))
}

func TestInsert_AttributesPreserved(t *testing.T) {
	doc := `{toc}<h2 class="fancy" data-x='1'>Styled</h2>`

	out := Insert(doc, DefaultOptions())

	assert.Contains(t, out, `<a name="styled"></a><h2 class="fancy" data-x='1'>Styled</h2>`)
}

func TestInsert_EmitHeadingID(t *testing.T) {
	opts := DefaultOptions()
	opts.EmitHeadingID = true

	out := Insert(`{toc}<h2 class="c">Styled</h2>`, opts)

	// The name anchor is preserved alongside the id attribute
	assert.Contains(t, out, `<a name="styled"></a><h2 class="c" id="styled">Styled</h2>`)
}

func TestInsert_PrefixOption(t *testing.T) {
	doc := `{toc chapternumbers=true prefix="Part"}<h1>One</h1>`

	out := Insert(doc, DefaultOptions())

	assert.Contains(t, out, `<h1>Part 1. One</h1>`)
	// The anchor number string carries no prefix
	assert.Contains(t, out, `<a name="1-one"></a>`)
}

func TestInsert_BaseOptionsApplyWithoutMarkerOptions(t *testing.T) {
	base := DefaultOptions()
	base.ChapterNumbers = true
	base.Prefix = "S"

	out := Insert(`{toc}<h1>One</h1>`, base)

	assert.Contains(t, out, `<h1>S 1. One</h1>`)
}

func TestInsert_MarkerOptionsOverrideBase(t *testing.T) {
	base := DefaultOptions()
	base.ChapterNumbers = true

	out := Insert(`{toc chapternumbers=false}<h1>One</h1>`, base)

	assert.Contains(t, out, `<a name="one"></a><h1>One</h1>`)
}

func TestInsert_MarkupInHeadingContent(t *testing.T) {
	doc := `{toc}<h2><em>Big</em> News!</h2>`

	out := Insert(doc, DefaultOptions())

	assert.Contains(t, out, `<a href="#big-news"><em>Big</em> News!</a>`)
	assert.Contains(t, out, `<a name="big-news"></a><h2><em>Big</em> News!</h2>`)
}

func TestInsert_MarkerInsideHeadingLeftAlone(t *testing.T) {
	doc := `<h2>About {toc} markers</h2>`

	out := Insert(doc, DefaultOptions())

	// The heading rewrite wins; the marker text survives inside it
	assert.Contains(t, out, `{toc}`)
	assert.Contains(t, out, `<a name="about-toc-markers"></a>`)
}

func TestInsert_HeadingsBeforeMarkerIncluded(t *testing.T) {
	doc := `<h1>Early</h1>{toc}`

	out := Insert(doc, DefaultOptions())

	assert.Contains(t, out, `<a href="#early">Early</a>`)
	assert.Contains(t, out, `<a name="early"></a><h1>Early</h1>`)
}

func TestHeadings_OutlineWithoutRewrite(t *testing.T) {
	doc := `<h1>A</h1><h2>B</h2>`
	opts := DefaultOptions()
	opts.ChapterNumbers = true

	headings := Headings(doc, opts)

	require.Len(t, headings, 2)
	assert.Equal(t, "1-a", headings[0].AnchorID)
	assert.Equal(t, "1-1-b", headings[1].AnchorID)
}
