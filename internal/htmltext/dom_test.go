package htmltext

import (
	"strings"
	"testing"
)

// TestDOMConverter_ExtractsText verifies basic text-node extraction with
// newline joining.
func TestDOMConverter_ExtractsText(t *testing.T) {
	conv := NewDOMConverter()

	got, err := conv.Convert("<html><body><h1>Title</h1><p>First paragraph.</p><p>Second.</p></body></html>", "")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	want := "Title\nFirst paragraph.\nSecond."
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

// TestDOMConverter_SkipsNonContentElements verifies that script, style, nav,
// footer, header, aside and noscript subtrees are dropped entirely.
func TestDOMConverter_SkipsNonContentElements(t *testing.T) {
	conv := NewDOMConverter()
	input := `<html><body>
		<nav>Site navigation</nav>
		<header>Page header</header>
		<script>trackUser()</script>
		<style>.x{}</style>
		<aside>Sidebar ad</aside>
		<noscript>Enable JS</noscript>
		<main><p>Actual content</p></main>
		<footer>Copyright</footer>
	</body></html>`

	got, err := conv.Convert(input, "")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.Contains(got, "Actual content") {
		t.Errorf("Convert() = %q, want it to contain the main content", got)
	}
	for _, chrome := range []string{"Site navigation", "Page header", "trackUser", ".x{}", "Sidebar ad", "Enable JS", "Copyright"} {
		if strings.Contains(got, chrome) {
			t.Errorf("Convert() leaked non-content text %q in %q", chrome, got)
		}
	}
}

// TestDOMConverter_TrimsAndCollapses verifies per-node trimming and that
// whitespace-only text nodes are skipped.
func TestDOMConverter_TrimsAndCollapses(t *testing.T) {
	conv := NewDOMConverter()

	got, err := conv.Convert("<div>  spaced  </div>\n\n\n<div>next</div>", "")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	want := "spaced\nnext"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

// TestDOMConverter_MalformedHTML verifies best-effort parsing of tag soup.
func TestDOMConverter_MalformedHTML(t *testing.T) {
	conv := NewDOMConverter()

	got, err := conv.Convert("<p>unclosed <b>bold <p>another", "")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	for _, word := range []string{"unclosed", "bold", "another"} {
		if !strings.Contains(got, word) {
			t.Errorf("Convert() = %q, want it to contain %q", got, word)
		}
	}
}
