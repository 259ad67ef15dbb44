package textutil

import "testing"

func TestVisibleWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本語", 6},
		{"\x1b[31mred\x1b[0m", 3},
	}
	for _, c := range cases {
		if got := VisibleWidth(c.in); got != c.want {
			t.Fatalf("VisibleWidth(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestTruncateByWidth(t *testing.T) {
	if got := TruncateByWidth("hello world", 20, "…"); got != "hello world" {
		t.Fatalf("no truncation expected: %q", got)
	}
	got := TruncateByWidth("hello world", 6, "…")
	if VisibleWidth(got) > 6 {
		t.Fatalf("truncated string too wide: %q", got)
	}
	if got != "hello…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	// wide characters must not be split
	got = TruncateByWidth("日本語テキスト", 5, "")
	if got != "日本" {
		t.Fatalf("grapheme-safe truncation failed: %q", got)
	}
	if TruncateByWidth("anything", 0, "…") != "" {
		t.Fatal("zero width should yield empty string")
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Fatalf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("overlong input must not be cut: %q", got)
	}
	if got := PadRight("日本", 6); got != "日本  " {
		t.Fatalf("wide-char padding wrong: %q", got)
	}
}

func TestCollapseSpace(t *testing.T) {
	if got := CollapseSpace("  //\tTODO   here \n"); got != "// TODO here" {
		t.Fatalf("CollapseSpace = %q", got)
	}
}
