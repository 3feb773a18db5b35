package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// skippedElements are subtrees dropped entirely during DOM text extraction:
// the stripped tags of the Markdown tier plus aside and noscript.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"nav":      true,
	"footer":   true,
	"header":   true,
	"aside":    true,
	"noscript": true,
}

// DOMConverter is the mid-fidelity strategy: it parses the document and
// joins the text nodes that remain after removing non-content elements.
type DOMConverter struct{}

// NewDOMConverter returns a DOM-walking text extractor.
func NewDOMConverter() *DOMConverter { return &DOMConverter{} }

// Name implements [Converter].
func (d *DOMConverter) Name() string { return "dom" }

// Available implements [Converter]. The parser is compiled in, so the
// strategy is always available.
func (d *DOMConverter) Available() bool { return true }

// Convert extracts the text content of html. Text nodes are trimmed and
// joined with newlines; runs of three or more newlines collapse to two.
// The baseURL argument is unused by this strategy.
func (d *DOMConverter) Convert(htmlStr string, _ string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[strings.ToLower(n.Data)] {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(collapseNewlines(strings.Join(parts, "\n"))), nil
}
