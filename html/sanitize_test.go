package html

import (
	"strings"
	"testing"
)

func TestSanitizeStripsScriptVectors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "script element",
			in:   `<p>hello<script>alert(1)</script></p>`,
			want: `<p>hello</p>`,
		},
		{
			name: "event handler attribute",
			in:   `<p onclick="steal()">hello</p>`,
			want: `<p>hello</p>`,
		},
		{
			name: "javascript href",
			in:   `<a href="javascript:alert(1)">x</a>`,
			want: `x`,
		},
		{
			name: "disallowed element unwrapped",
			in:   `<iframe src="https://evil.example"></iframe><p>ok</p>`,
			want: `<p>ok</p>`,
		},
		{
			name: "style attribute stripped",
			in:   `<h2 style="position:fixed">t</h2>`,
			want: `<h2>t</h2>`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := SanitizeRichText(c.in); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestSanitizeKeepsFormattingSafelist(t *testing.T) {
	in := `<h2>Times</h2><p><strong>Sun</strong> <em>9am</em> <u>main hall</u><br/></p>` +
		`<ul><li>one</li><li>two</li></ul><ol><li>three</li></ol>` +
		`<a href="https://example.org/give" target="_blank" rel="noopener">give</a>`
	got := SanitizeRichText(in)

	for _, fragment := range []string{
		"<h2>Times</h2>", "<strong>Sun</strong>", "<em>9am</em>", "<u>main hall</u>",
		"<ul><li>one</li><li>two</li></ul>", "<ol><li>three</li></ol>",
		`href="https://example.org/give"`, `target="_blank"`, `rel="noopener"`,
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("sanitized output lost %q: %q", fragment, got)
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		`<p>plain</p>`,
		`<p onclick="x">mixed</p><script>bad()</script><h3>keep &amp; hold</h3>`,
		`say "hi" & <b>wave</b>`,
	}
	for _, in := range inputs {
		once := SanitizeRichText(in)
		twice := SanitizeRichText(once)
		if once != twice {
			t.Errorf("sanitize not idempotent:\n once: %q\ntwice: %q", once, twice)
		}
	}
}
