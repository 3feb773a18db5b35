package htmltext

import (
	"html"
	"regexp"
	"strings"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe         = regexp.MustCompile(`<[^>]+>`)
	spaceRunRe    = regexp.MustCompile(`[ \t]+`)
)

// PlainConverter is the last-resort strategy: regex-based tag stripping with
// HTML entity decoding. It depends only on the standard library and is the
// tier that keeps the chain usable in any environment.
type PlainConverter struct{}

// NewPlainConverter returns the regex-based converter.
func NewPlainConverter() *PlainConverter { return &PlainConverter{} }

// Name implements [Converter].
func (p *PlainConverter) Name() string { return "plain" }

// Available implements [Converter]. Always true.
func (p *PlainConverter) Available() bool { return true }

// Convert strips script and style blocks, replaces all remaining tags with a
// single space, decodes HTML entities, and normalises whitespace. The baseURL
// argument is unused by this strategy.
func (p *PlainConverter) Convert(htmlStr string, _ string) (string, error) {
	text := scriptBlockRe.ReplaceAllString(htmlStr, "")
	text = styleBlockRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = collapseNewlines(text)
	return strings.TrimSpace(text), nil
}
