package model

import (
	"reflect"
	"testing"
)

func TestIsValidColor(t *testing.T) {
	valid := []string{"#fff", "#FF8C00", "#1e90ff"}
	for _, c := range valid {
		if !IsValidColor(c) {
			t.Fatalf("expected %q to be valid", c)
		}
	}
	invalid := []string{"", "FF8C00", "#FF8C0", "#GGGGGG", "#FF8C00AA", "red"}
	for _, c := range invalid {
		if IsValidColor(c) {
			t.Fatalf("expected %q to be invalid", c)
		}
	}
}

func TestIsLiteralToken(t *testing.T) {
	if !IsLiteralToken("TODO") || !IsLiteralToken("fix-me_2") {
		t.Fatal("expected literal tokens to validate")
	}
	for _, tok := range []string{"", "TO DO", "TODO!", "/TODO/"} {
		if IsLiteralToken(tok) {
			t.Fatalf("expected %q to be rejected", tok)
		}
	}
}

func TestUnwrapRegexToken(t *testing.T) {
	pattern, ok := UnwrapRegexToken(`/URL:\s*\S+/`)
	if !ok {
		t.Fatal("expected wrapper form to unwrap")
	}
	if pattern != `URL:\s*\S+` {
		t.Fatalf("unexpected pattern: %q", pattern)
	}
	for _, tok := range []string{"TODO", "/", "//", "/x"} {
		if _, ok := UnwrapRegexToken(tok); ok {
			t.Fatalf("expected %q not to unwrap", tok)
		}
	}
}

func TestKeywordSetPutOverridesInPlace(t *testing.T) {
	set := NewKeywordSet()
	set.Put(KeywordRule{Token: "TODO", Color: "#FF8C00"})
	set.Put(KeywordRule{Token: "FIXME", Color: "#FF2D00"})
	set.Put(KeywordRule{Token: "TODO", Color: "#000000"})

	if set.Len() != 2 {
		t.Fatalf("expected 2 rules, got %d", set.Len())
	}
	rules := set.Rules()
	if rules[0].Token != "TODO" || rules[0].Color != "#000000" {
		t.Fatalf("override should keep position and replace color: %+v", rules[0])
	}
	if rules[1].Token != "FIXME" {
		t.Fatalf("unexpected second rule: %+v", rules[1])
	}
}

func TestKeywordSetTruncate(t *testing.T) {
	set := NewKeywordSet()
	for _, tok := range []string{"A1", "B2", "C3", "D4"} {
		set.Put(KeywordRule{Token: tok, Color: "#fff"})
	}
	set.Truncate(2)
	if set.Len() != 2 {
		t.Fatalf("expected 2 rules after truncate, got %d", set.Len())
	}
	if _, ok := set.Get("C3"); ok {
		t.Fatal("truncated token should be gone from the index")
	}
	want := []KeywordRule{{Token: "A1", Color: "#fff"}, {Token: "B2", Color: "#fff"}}
	if !reflect.DeepEqual(set.Rules(), want) {
		t.Fatalf("unexpected rules: %+v", set.Rules())
	}
}

func TestKeywordSetRulesReturnsCopy(t *testing.T) {
	set := NewKeywordSet()
	set.Put(KeywordRule{Token: "TODO", Color: "#FF8C00"})
	rules := set.Rules()
	rules[0].Color = "#000000"
	if got, _ := set.Get("TODO"); got.Color != "#FF8C00" {
		t.Fatalf("mutating the returned slice must not affect the set: %+v", got)
	}
}
