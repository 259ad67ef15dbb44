package theme

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/codetint/codetint/internal/config"
)

func sampleSettings() config.Settings {
	s := config.DefaultSettings()
	s.Keywords = map[string]string{"TODO": "#FF8C00", "FIXME": "#FF2D00"}
	s.CustomKeywords = map[string]string{"WIP": "#ABCDEF"}
	s.CaseSensitive = true
	s.HighlightStyle = "background"
	s.FontWeight = "bold"
	s.ShowIcons = true
	return s
}

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	original := FromSettings("night", sampleSettings())

	if err := Export(path, original); err != nil {
		t.Fatal(err)
	}
	imported, err := Import(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(original, imported) {
		t.Fatalf("round trip mismatch:\nexported: %+v\nimported: %+v", original, imported)
	}
}

func TestImportRejectsEmptyKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	bad := FromSettings("empty", config.DefaultSettings())
	if err := Export(path, bad); err != nil {
		t.Fatal(err)
	}
	if _, err := Import(path); err == nil {
		t.Fatal("theme without keywords must be rejected")
	}
}

func TestImportRejectsBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	s := sampleSettings()
	s.Keywords["TODO"] = "orange"
	if err := Export(path, FromSettings("bad", s)); err != nil {
		t.Fatal(err)
	}
	if _, err := Import(path); err == nil {
		t.Fatal("invalid color must be rejected")
	}
}

func TestValidateRejectsUnknownEnums(t *testing.T) {
	th := FromSettings("t", sampleSettings())
	th.Settings.HighlightStyle = "blink"
	if err := th.Validate(); err == nil {
		t.Fatal("expected highlightStyle error")
	}
	th = FromSettings("t", sampleSettings())
	th.Settings.FontWeight = "heavy"
	if err := th.Validate(); err == nil {
		t.Fatal("expected fontWeight error")
	}
	th = FromSettings("t", sampleSettings())
	th.Version = "2"
	if err := th.Validate(); err == nil {
		t.Fatal("expected version error")
	}
}

func TestImportStringVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	doc := `{"name":"shared","version":"1","keywords":{"TODO":"#FF8C00"},"settings":{"highlightStyle":"text"}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	imported, err := Import(path)
	if err != nil {
		t.Fatal(err)
	}
	if imported.Version != "1" {
		t.Fatalf("version should survive import: %+v", imported)
	}
	if imported.Keywords["TODO"] != "#FF8C00" {
		t.Fatalf("keywords lost: %+v", imported)
	}
}

func TestImportDefaultsEmptyName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	doc := `{"keywords":{"TODO":"#FF8C00"},"settings":{}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	imported, err := Import(path)
	if err != nil {
		t.Fatal(err)
	}
	if imported.Name != "untitled" {
		t.Fatalf("empty name should be defaulted: %+v", imported)
	}
}

func TestApplyDoesNotMutateBase(t *testing.T) {
	base := config.DefaultSettings()
	base.Keywords = map[string]string{"OLD": "#111111"}
	th := FromSettings("new", sampleSettings())

	applied := th.Apply(base)
	if applied.Keywords["TODO"] != "#FF8C00" || !applied.CaseSensitive {
		t.Fatalf("theme not applied: %+v", applied)
	}
	if base.Keywords["OLD"] != "#111111" || base.CaseSensitive {
		t.Fatalf("base settings mutated: %+v", base)
	}
	// the theme's maps must not be shared with the result
	applied.Keywords["TODO"] = "#000000"
	if th.Keywords["TODO"] != "#FF8C00" {
		t.Fatal("Apply must copy keyword maps")
	}
}
