package htmltext

import (
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

// strippedTags are removed from the document before Markdown conversion.
// They carry chrome and behavior, not page content.
var strippedTags = []string{"script", "style", "nav", "footer", "header"}

// MarkdownConverter is the preferred strategy: it produces Markdown with
// ATX-style headings via the html-to-markdown library.
type MarkdownConverter struct {
	conv *converter.Converter
}

// NewMarkdownConverter builds the converter with ATX headings and the
// non-content elements stripped.
func NewMarkdownConverter() *MarkdownConverter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
			),
		),
	)
	for _, tag := range strippedTags {
		conv.Register.TagType(tag, converter.TagTypeRemove, converter.PriorityStandard)
	}
	return &MarkdownConverter{conv: conv}
}

// Name implements [Converter].
func (m *MarkdownConverter) Name() string { return "markdown" }

// Available implements [Converter]. The library is compiled in, so the
// strategy is always available.
func (m *MarkdownConverter) Available() bool { return true }

// Convert renders html as Markdown. When baseURL is non-empty it is used to
// resolve relative links in the output.
func (m *MarkdownConverter) Convert(html string, baseURL string) (string, error) {
	var opts []converter.ConvertOptionFunc
	if baseURL != "" {
		opts = append(opts, converter.WithDomain(baseURL))
	}
	return m.conv.ConvertString(html, opts...)
}
