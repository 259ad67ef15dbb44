package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// canonical key names; camelCase and kebab-case variants normalize onto these.
var knownKeys = map[string]struct{}{
	"enabled":               {},
	"keywords":              {},
	"custom_keywords":       {},
	"regex_patterns":        {},
	"case_sensitive":        {},
	"highlight_style":       {},
	"font_weight":           {},
	"show_icons":            {},
	"enable_regex_keywords": {},
	"min_keyword_length":    {},
	"max_keywords":          {},
	"exclude_from_end":      {},
	"debounce_ms":           {},
	"jobs":                  {},
	"max_file_bytes":        {},
	"color":                 {},
	"output":                {},
}

// Load は拡張子に応じて YAML / TOML / JSON の設定ファイルを読み込みます。
// 未知のキーはエラーにします。
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	section := make(map[string]any, len(raw))
	for key, value := range raw {
		norm := normalizeKey(key)
		if _, ok := knownKeys[norm]; !ok {
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
		section[norm] = value
	}
	if err := assign(section, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func assign(section map[string]any, dst *Config) error {
	for key, value := range section {
		switch key {
		case "enabled":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Enabled = &b
		case "keywords":
			m, err := expectStringMap(value, key)
			if err != nil {
				return err
			}
			dst.Keywords = &m
		case "custom_keywords":
			m, err := expectStringMap(value, key)
			if err != nil {
				return err
			}
			dst.CustomKeywords = &m
		case "regex_patterns":
			m, err := expectStringMap(value, key)
			if err != nil {
				return err
			}
			dst.RegexPatterns = &m
		case "case_sensitive":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.CaseSensitive = &b
		case "highlight_style":
			s, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(s)
			dst.HighlightStyle = &trimmed
		case "font_weight":
			s, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(s)
			dst.FontWeight = &trimmed
		case "show_icons":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.ShowIcons = &b
		case "enable_regex_keywords":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.EnableRegexKeywords = &b
		case "min_keyword_length":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.MinKeywordLength = &n
		case "max_keywords":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.MaxKeywords = &n
		case "exclude_from_end":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.ExcludeFromEnd = &n
		case "debounce_ms":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.DebounceMS = &n
		case "jobs":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Jobs = &n
		case "max_file_bytes":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.MaxFileBytes = &n
		case "color":
			s, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(s)
			dst.Color = &trimmed
		case "output":
			s, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(s)
			dst.Output = &trimmed
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

// Save は Settings のうち永続化対象のキーを path に書き出します。
// フォーマットは拡張子で決まります（グローバル設定の書き戻しに使用）。
func Save(path string, s Settings) error {
	doc := map[string]any{
		"enabled":               s.Enabled,
		"case_sensitive":        s.CaseSensitive,
		"highlight_style":       s.HighlightStyle,
		"font_weight":           s.FontWeight,
		"show_icons":            s.ShowIcons,
		"enable_regex_keywords": s.EnableRegexKeywords,
		"min_keyword_length":    s.MinKeywordLength,
		"max_keywords":          s.MaxKeywords,
	}
	if len(s.Keywords) > 0 {
		doc["keywords"] = s.Keywords
	}
	if len(s.CustomKeywords) > 0 {
		doc["custom_keywords"] = s.CustomKeywords
	}
	if len(s.RegexPatterns) > 0 {
		doc["regex_patterns"] = s.RegexPatterns
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	case ".toml":
		data, err = toml.Marshal(doc)
	case ".json":
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		return fmt.Errorf("unsupported config extension: %s", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		trimmed := strings.TrimSpace(v)
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectStringMap(value any, field string) (map[string]string, error) {
	out := make(map[string]string)
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			s, err := expectString(item, field+"."+key)
			if err != nil {
				return nil, err
			}
			out[key] = strings.TrimSpace(s)
		}
	case map[any]any:
		for key, item := range v {
			k, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key in %s: %v", field, key)
			}
			s, err := expectString(item, field+"."+k)
			if err != nil {
				return nil, err
			}
			out[k] = strings.TrimSpace(s)
		}
	case map[string]string:
		for key, item := range v {
			out[key] = strings.TrimSpace(item)
		}
	default:
		return nil, fmt.Errorf("expected mapping for %s, got %T", field, value)
	}
	return out, nil
}

// normalizeKey folds camelCase / kebab-case spellings onto snake_case.
func normalizeKey(key string) string {
	trimmed := strings.TrimSpace(key)
	var b strings.Builder
	for i, r := range trimmed {
		switch {
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		case r == '-':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
