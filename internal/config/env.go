package config

import (
	"errors"
	"math"
	"strings"
)

// FromEnv は CODETINT_* 環境変数から 1 レイヤ分の設定を組み立てます。
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setMap := func(target **map[string]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		m, err := ParseKeywordList(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &m
	}

	setBool(&cfg.Enabled, "CODETINT_ENABLED")
	setMap(&cfg.Keywords, "CODETINT_KEYWORDS")
	setMap(&cfg.CustomKeywords, "CODETINT_CUSTOM_KEYWORDS")
	setMap(&cfg.RegexPatterns, "CODETINT_REGEX_PATTERNS")
	setBool(&cfg.CaseSensitive, "CODETINT_CASE_SENSITIVE")
	setString(&cfg.HighlightStyle, "CODETINT_HIGHLIGHT_STYLE")
	setString(&cfg.FontWeight, "CODETINT_FONT_WEIGHT")
	setBool(&cfg.ShowIcons, "CODETINT_SHOW_ICONS")
	setBool(&cfg.EnableRegexKeywords, "CODETINT_ENABLE_REGEX_KEYWORDS")
	setInt(&cfg.MinKeywordLength, "CODETINT_MIN_KEYWORD_LENGTH", 1, 20)
	setInt(&cfg.MaxKeywords, "CODETINT_MAX_KEYWORDS", 1, 100)
	setInt(&cfg.ExcludeFromEnd, "CODETINT_EXCLUDE_FROM_END", 0, math.MaxInt)
	setInt(&cfg.DebounceMS, "CODETINT_DEBOUNCE_MS", 10, 5000)
	// Range checked again in NormalizeAndValidate so every input path shares
	// the same error message.
	setInt(&cfg.Jobs, "CODETINT_JOBS", 0, math.MaxInt)
	setInt(&cfg.MaxFileBytes, "CODETINT_MAX_FILE_BYTES", 0, math.MaxInt)
	setString(&cfg.Color, "CODETINT_COLOR")
	setString(&cfg.Output, "CODETINT_OUTPUT")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
