// Package htmltext converts HTML documents into readable plain text or
// Markdown using a chain of converter strategies of decreasing fidelity.
//
// Three strategies are provided, ordered by preference:
//
//   - [MarkdownConverter]: full HTML-to-Markdown conversion via the
//     html-to-markdown library, with ATX headings and script/style/nav/
//     footer/header elements removed before conversion.
//   - [DOMConverter]: DOM traversal via golang.org/x/net/html that extracts
//     the remaining text nodes after removing non-content elements.
//   - [PlainConverter]: regex-based tag stripping with entity decoding. It
//     has no external dependencies and is always available.
//
// [Chain] selects the first strategy whose Available method reports true.
// Availability is a static capability check, not a quality heuristic: a
// runtime error inside the selected strategy propagates to the caller rather
// than triggering a fallback. Output fidelity therefore varies with the
// selected tier, which callers are expected to accept.
package htmltext
