package htmltext

import (
	"errors"
	"regexp"
)

// Converter turns an HTML document into readable text. The baseURL argument
// is the address the document was fetched from; strategies may use it to
// resolve relative links or ignore it entirely.
type Converter interface {
	// Name identifies the strategy in logs and tests.
	Name() string

	// Available reports whether the strategy can run in this environment.
	Available() bool

	// Convert renders html into plain text or Markdown.
	Convert(html string, baseURL string) (string, error)
}

// ErrNoConverter is returned by [Chain.Convert] when no strategy in the chain
// reports itself available.
var ErrNoConverter = errors.New("htmltext: no converter available")

// Chain is a [Converter] that delegates to the first available strategy in a
// fixed preference order. Strategy selection is a capability check only; an
// error returned by the selected strategy is not retried on a later one.
type Chain struct {
	converters []Converter
}

// NewChain builds a chain that prefers the given converters in order.
func NewChain(converters ...Converter) *Chain {
	return &Chain{converters: converters}
}

// DefaultChain returns the standard three-tier chain: Markdown conversion,
// DOM text extraction, then regex stripping.
func DefaultChain() *Chain {
	return NewChain(NewMarkdownConverter(), NewDOMConverter(), NewPlainConverter())
}

// Name returns the name of the first available strategy, or "chain" when the
// chain is empty or exhausted.
func (c *Chain) Name() string {
	if selected := c.first(); selected != nil {
		return selected.Name()
	}
	return "chain"
}

// Available reports whether at least one strategy in the chain is available.
func (c *Chain) Available() bool {
	return c.first() != nil
}

// Convert delegates to the first available strategy.
func (c *Chain) Convert(html string, baseURL string) (string, error) {
	selected := c.first()
	if selected == nil {
		return "", ErrNoConverter
	}
	return selected.Convert(html, baseURL)
}

func (c *Chain) first() Converter {
	for _, conv := range c.converters {
		if conv.Available() {
			return conv
		}
	}
	return nil
}

var newlineRunRe = regexp.MustCompile(`\n{3,}`)

// collapseNewlines reduces runs of three or more consecutive newlines to
// exactly two, so converted documents keep paragraph breaks without large
// vertical gaps.
func collapseNewlines(s string) string {
	return newlineRunRe.ReplaceAllString(s, "\n\n")
}
