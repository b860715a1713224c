package richtext

import (
	"strings"
	"testing"
)

func TestSanitize_RemovesScripts(t *testing.T) {
	got := Sanitize(`<p>Hello <strong>world</strong></p><script>alert('x')</script>`)
	if got.Empty() {
		t.Fatalf("expected sanitized markup, got empty fragment")
	}
	if strings.Contains(got.HTML, "script") || strings.Contains(got.HTML, "alert") {
		t.Fatalf("expected script removed, got %q", got.HTML)
	}
	if !strings.Contains(got.HTML, "<p>") || !strings.Contains(got.HTML, "<strong>world</strong>") {
		t.Fatalf("expected formatting to remain, got %q", got.HTML)
	}
}

func TestSanitize_StripsEventHandlersAndJavascriptLinks(t *testing.T) {
	got := Sanitize(`<p onclick="steal()">Hi <a href="javascript:alert(1)">bad</a> <a href="https://example.com">good</a></p>`)
	if strings.Contains(got.HTML, "onclick") {
		t.Fatalf("expected event handler removed, got %q", got.HTML)
	}
	if strings.Contains(got.HTML, "javascript:") {
		t.Fatalf("expected javascript url removed, got %q", got.HTML)
	}
	if !strings.Contains(got.HTML, `href="https://example.com"`) {
		t.Fatalf("expected safe link kept, got %q", got.HTML)
	}
	if !strings.Contains(got.HTML, "nofollow") {
		t.Fatalf("expected nofollow on links, got %q", got.HTML)
	}
}

func TestSanitize_KeepsLists(t *testing.T) {
	got := Sanitize(`<ul><li>one</li><li><em>two</em></li></ul>`)
	if got.HTML != `<ul><li>one</li><li><em>two</em></li></ul>` {
		t.Fatalf("unexpected list output: %q", got.HTML)
	}
	if text := got.Text(); text != "one two" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestSanitize_EmptyInputs(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t", "<p>  </p>", "<script>alert(1)</script>", "<iframe src=x></iframe>"} {
		if got := Sanitize(raw); !got.Empty() {
			t.Fatalf("Sanitize(%q) = %q, want empty", raw, got.HTML)
		}
	}
}

func TestSanitize_PlainTextIsEscaped(t *testing.T) {
	got := Sanitize(`5 < 6 & "quotes"`)
	if got.Empty() {
		t.Fatalf("expected text preserved")
	}
	if strings.Contains(got.HTML, "< 6") {
		t.Fatalf("expected angle bracket escaped, got %q", got.HTML)
	}
	if got.Text() != `5 < 6 & "quotes"` {
		t.Fatalf("unexpected text: %q", got.Text())
	}
}

func TestSanitize_UnbalancedMarkupDoesNotFail(t *testing.T) {
	got := Sanitize(`<p><b>open <i>tags`)
	if got.Text() != "open tags" {
		t.Fatalf("unexpected text: %q (html %q)", got.Text(), got.HTML)
	}
}

func TestSanitize_Deterministic(t *testing.T) {
	raw := `<p>Same <a href="https://example.com">input</a></p>`
	first := Sanitize(raw)
	for i := 0; i < 5; i++ {
		if got := Sanitize(raw); got != first {
			t.Fatalf("non-deterministic output: %q vs %q", got.HTML, first.HTML)
		}
	}
}

func TestFragment_TextSeparatesBlocksNotInline(t *testing.T) {
	f := Fragment{HTML: `<p>dis<b>tributed</b></p><p>systems<br>rock</p>`}
	if got := f.Text(); got != "distributed systems rock" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestSanitize_ClosesUnbalancedTags(t *testing.T) {
	got := Sanitize(`<p>unclosed <b>bold`)
	if got.HTML != `<p>unclosed <b>bold</b></p>` {
		t.Fatalf("expected balanced markup, got %q", got.HTML)
	}
}

func TestSanitize_SwallowedTextFallsBackToEscapedRaw(t *testing.T) {
	got := Sanitize(`  <notatag  `)
	if got.Empty() {
		t.Fatalf("expected escaped fallback, got empty fragment")
	}
	if got.HTML != `&lt;notatag` {
		t.Fatalf("unexpected fallback html: %q", got.HTML)
	}
	if got.Text() != "<notatag" {
		t.Fatalf("unexpected fallback text: %q", got.Text())
	}
}

func TestSafeURL(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"https://example.com/a", "https://example.com/a", true},
		{" http://example.com ", "http://example.com", true},
		{"mailto:ada@example.com", "mailto:ada@example.com", true},
		{"HTTPS://EXAMPLE.COM", "HTTPS://EXAMPLE.COM", true},
		{"images/me.png", "images/me.png", true},
		{"//cdn.example.com/me.png", "//cdn.example.com/me.png", true},
		{"javascript:alert(1)", "", false},
		{"JavaScript:alert(1)", "", false},
		{"java\tscript:alert(1)", "", false},
		{"data:text/html;base64,PHNjcmlwdD4=", "", false},
		{"vbscript:msgbox(1)", "", false},
		{"   ", "", false},
	}
	for _, tc := range cases {
		got, ok := SafeURL(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Errorf("SafeURL(%q) = %q, %v; want %q, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}
