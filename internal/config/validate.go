package config

import (
	"fmt"
	"strings"
)

// NormalizeAndValidate は列挙値と数値レンジを検証し、正規化済みの
// Settings を返します。ここで弾かれた値はコアロジックに到達しません。
func NormalizeAndValidate(s Settings) (Settings, error) {
	style := strings.ToLower(strings.TrimSpace(s.HighlightStyle))
	switch style {
	case "", "text":
		style = "text"
	case "background", "border", "underline":
	default:
		return s, fmt.Errorf("invalid highlight_style: %s", s.HighlightStyle)
	}
	s.HighlightStyle = style

	weight := strings.ToLower(strings.TrimSpace(s.FontWeight))
	switch weight {
	case "", "normal":
		weight = "normal"
	case "bold", "bolder":
	default:
		return s, fmt.Errorf("invalid font_weight: %s", s.FontWeight)
	}
	s.FontWeight = weight

	if s.MinKeywordLength < 1 || s.MinKeywordLength > 20 {
		return s, fmt.Errorf("min_keyword_length must be between 1 and 20")
	}
	if s.MaxKeywords < 1 || s.MaxKeywords > 100 {
		return s, fmt.Errorf("max_keywords must be between 1 and 100")
	}
	if s.ExcludeFromEnd < 0 {
		return s, fmt.Errorf("exclude_from_end must not be negative")
	}
	if s.DebounceMS < 10 || s.DebounceMS > 5000 {
		return s, fmt.Errorf("debounce_ms must be between 10 and 5000")
	}
	if s.Jobs < 0 {
		return s, fmt.Errorf("jobs must not be negative")
	}
	if s.MaxFileBytes < 0 {
		return s, fmt.Errorf("max_file_bytes must not be negative")
	}

	output := strings.ToLower(strings.TrimSpace(s.Output))
	switch output {
	case "", "highlight":
		output = "highlight"
	case "table", "json", "ndjson":
	default:
		return s, fmt.Errorf("invalid output: %s", s.Output)
	}
	s.Output = output

	color := strings.ToLower(strings.TrimSpace(s.Color))
	switch color {
	case "", "auto":
		color = "auto"
	case "always", "never":
	default:
		return s, fmt.Errorf("invalid color mode: %s", s.Color)
	}
	s.Color = color

	return s, nil
}
