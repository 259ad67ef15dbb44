package lang

import (
	"sort"
	"testing"
)

func TestNormalizeResolvesAliases(t *testing.T) {
	cases := map[string]string{
		"JS":         "javascript",
		"ts":         "typescript",
		"C++":        "cpp",
		" py ":       "python",
		"javascript": "javascript",
		"unknown":    "unknown",
		"":           "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLookupUnsupportedLanguage(t *testing.T) {
	if descs := Lookup("plaintext"); len(descs) != 0 {
		t.Fatalf("expected no descriptors for plaintext, got %d", len(descs))
	}
	if Supported("plaintext") {
		t.Fatal("plaintext must not be supported")
	}
}

func TestLookupLineAndBlock(t *testing.T) {
	descs := Lookup("cpp")
	if len(descs) != 2 {
		t.Fatalf("expected 2 descriptors for cpp, got %d", len(descs))
	}
	if descs[0].Kind != KindLine || descs[1].Kind != KindBlock {
		t.Fatalf("unexpected descriptor kinds: %v, %v", descs[0].Kind, descs[1].Kind)
	}
}

func TestBlockPatternIsNonGreedy(t *testing.T) {
	text := "/* first */ code /* second */"
	descs := Lookup("c")
	var block Descriptor
	for _, d := range descs {
		if d.Kind == KindBlock {
			block = d
		}
	}
	locs := block.Pattern.FindAllStringIndex(text, -1)
	if len(locs) != 2 {
		t.Fatalf("non-greedy block should find 2 comments, got %d", len(locs))
	}
	if text[locs[0][0]:locs[0][1]] != "/* first */" {
		t.Fatalf("first block mismatch: %q", text[locs[0][0]:locs[0][1]])
	}
}

func TestRubyBlockAnchorsToLineStart(t *testing.T) {
	text := "x = 1\n=begin\nTODO here\n=end\ny = 2\n"
	descs := Lookup("ruby")
	found := false
	for _, d := range descs {
		if d.Kind == KindBlock && d.Pattern.MatchString(text) {
			found = true
		}
	}
	if !found {
		t.Fatal("expected =begin/=end block to match")
	}
}

func TestDetectPath(t *testing.T) {
	cases := map[string]string{
		"src/app.ts":     "typescript",
		"Makefile":       "make",
		"Dockerfile":     "dockerfile",
		"cmd/main.go":    "go",
		"README.md":      "markdown",
		"noextension":    "",
		"archive.tar.gz": "",
	}
	for path, want := range cases {
		if got := DetectPath(path); got != want {
			t.Fatalf("DetectPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestDetectShebang(t *testing.T) {
	cases := map[string]string{
		"#!/usr/bin/env python3\nprint()": "python",
		"#!/bin/bash\necho hi":            "shell",
		"#!/usr/bin/env fish\n":           "fish",
		"#!/usr/bin/env node\n":           "javascript",
		"no shebang":                      "",
	}
	for data, want := range cases {
		if got := DetectShebang([]byte(data)); got != want {
			t.Fatalf("DetectShebang(%q) = %q, want %q", data, got, want)
		}
	}
}

func TestDetectPrefersPath(t *testing.T) {
	data := []byte("#!/usr/bin/env python3\n")
	if got := Detect("script.rb", data); got != "ruby" {
		t.Fatalf("path should win over shebang, got %q", got)
	}
	if got := Detect("script", data); got != "python" {
		t.Fatalf("shebang fallback failed, got %q", got)
	}
}

func TestIDsSortedAndSupported(t *testing.T) {
	ids := IDs()
	if !sort.StringsAreSorted(ids) {
		t.Fatal("IDs must be sorted")
	}
	for _, id := range ids {
		if !Supported(id) {
			t.Fatalf("listed id %q is not supported", id)
		}
	}
}

func TestSuggestTypo(t *testing.T) {
	candidates := Suggest("javascrip")
	found := false
	for _, c := range candidates {
		if c == "javascript" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected javascript in suggestions, got %v", candidates)
	}
}
