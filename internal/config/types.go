package config

// Config は 1 レイヤ分の設定です。nil フィールドは「このレイヤでは未指定」を
// 意味し、Merge でより外側のレイヤに解決されます。
type Config struct {
	Enabled             *bool              `yaml:"enabled" toml:"enabled" json:"enabled"`
	Keywords            *map[string]string `yaml:"keywords" toml:"keywords" json:"keywords"`
	CustomKeywords      *map[string]string `yaml:"custom_keywords" toml:"custom_keywords" json:"custom_keywords"`
	RegexPatterns       *map[string]string `yaml:"regex_patterns" toml:"regex_patterns" json:"regex_patterns"`
	CaseSensitive       *bool              `yaml:"case_sensitive" toml:"case_sensitive" json:"case_sensitive"`
	HighlightStyle      *string            `yaml:"highlight_style" toml:"highlight_style" json:"highlight_style"`
	FontWeight          *string            `yaml:"font_weight" toml:"font_weight" json:"font_weight"`
	ShowIcons           *bool              `yaml:"show_icons" toml:"show_icons" json:"show_icons"`
	EnableRegexKeywords *bool              `yaml:"enable_regex_keywords" toml:"enable_regex_keywords" json:"enable_regex_keywords"`
	MinKeywordLength    *int               `yaml:"min_keyword_length" toml:"min_keyword_length" json:"min_keyword_length"`
	MaxKeywords         *int               `yaml:"max_keywords" toml:"max_keywords" json:"max_keywords"`
	ExcludeFromEnd      *int               `yaml:"exclude_from_end" toml:"exclude_from_end" json:"exclude_from_end"`
	DebounceMS          *int               `yaml:"debounce_ms" toml:"debounce_ms" json:"debounce_ms"`
	Jobs                *int               `yaml:"jobs" toml:"jobs" json:"jobs"`
	MaxFileBytes        *int               `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
	Color               *string            `yaml:"color" toml:"color" json:"color"`
	Output              *string            `yaml:"output" toml:"output" json:"output"`
}

// Settings は全レイヤをマージした後の確定値です。
type Settings struct {
	Enabled             bool
	Keywords            map[string]string
	CustomKeywords      map[string]string
	RegexPatterns       map[string]string
	CaseSensitive       bool
	HighlightStyle      string
	FontWeight          string
	ShowIcons           bool
	EnableRegexKeywords bool
	MinKeywordLength    int
	MaxKeywords         int
	ExcludeFromEnd      int
	DebounceMS          int
	Jobs                int
	MaxFileBytes        int
	Color               string
	Output              string
}

// DefaultSettings は既定値を返します。Keywords が空のままなら走査側が
// 組み込みの 8 キーワードにフォールバックします。
func DefaultSettings() Settings {
	return Settings{
		Enabled:          true,
		CaseSensitive:    false,
		HighlightStyle:   "text",
		FontWeight:       "normal",
		MinKeywordLength: 2,
		MaxKeywords:      50,
		DebounceMS:       100,
		Color:            "auto",
		Output:           "highlight",
	}
}

func cloneMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
