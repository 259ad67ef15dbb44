package main

import (
	"flag"
	"testing"

	"github.com/codetint/codetint/internal/config"
)

func TestSettingsFlagsOnlySetFlagsEnterLayer(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	layer, _ := settingsFlags(fs)
	if err := fs.Parse([]string{"-style", "underline", "-max-keywords", "7"}); err != nil {
		t.Fatal(err)
	}
	cfg := layer()
	if cfg.HighlightStyle == nil || *cfg.HighlightStyle != "underline" {
		t.Fatalf("style flag not captured: %+v", cfg)
	}
	if cfg.MaxKeywords == nil || *cfg.MaxKeywords != 7 {
		t.Fatalf("max-keywords flag not captured: %+v", cfg)
	}
	if cfg.CaseSensitive != nil || cfg.Output != nil || cfg.Keywords != nil {
		t.Fatalf("unset flags must stay nil: %+v", cfg)
	}
}

func TestSettingsFlagsKeywordList(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	layer, _ := settingsFlags(fs)
	if err := fs.Parse([]string{"-custom-keywords", "WIP=#ABCDEF,DEPRECATED=#808080"}); err != nil {
		t.Fatal(err)
	}
	cfg := layer()
	if cfg.CustomKeywords == nil {
		t.Fatal("custom-keywords flag not captured")
	}
	if (*cfg.CustomKeywords)["WIP"] != "#ABCDEF" {
		t.Fatalf("unexpected map: %+v", *cfg.CustomKeywords)
	}
}

func TestSettingsFlagsRegexPatterns(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	layer, _ := settingsFlags(fs)
	if err := fs.Parse([]string{"-regex-patterns", `TICKET-\d+=#1E90FF`}); err != nil {
		t.Fatal(err)
	}
	cfg := layer()
	if cfg.RegexPatterns == nil || (*cfg.RegexPatterns)[`TICKET-\d+`] != "#1E90FF" {
		t.Fatalf("regex-patterns flag not captured: %+v", cfg.RegexPatterns)
	}
}

func TestKeywordMapsWrapsRegexPatterns(t *testing.T) {
	s := config.DefaultSettings()
	s.CustomKeywords = map[string]string{"WIP": "#ABCDEF"}
	s.RegexPatterns = map[string]string{
		`URL:\S+`:     "#1E90FF",
		`/already:\d/`: "#FF0000",
	}
	_, custom := keywordMaps(s)
	if custom[`/URL:\S+/`] != "#1E90FF" {
		t.Fatalf("bare pattern should gain the wrapper: %+v", custom)
	}
	if custom[`/already:\d/`] != "#FF0000" {
		t.Fatalf("wrapped pattern must pass through: %+v", custom)
	}
	if custom["WIP"] != "#ABCDEF" {
		t.Fatalf("custom keywords must merge in: %+v", custom)
	}
}

func TestKeywordMapsEmpty(t *testing.T) {
	kw, custom := keywordMaps(config.DefaultSettings())
	if kw != nil || custom != nil {
		t.Fatalf("empty settings should yield nil maps: %v %v", kw, custom)
	}
}
