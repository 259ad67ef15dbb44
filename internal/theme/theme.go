package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/codetint/codetint/internal/config"
	"github.com/codetint/codetint/internal/model"
)

// CurrentVersion はエクスポートするテーマ形式のバージョンです。
const CurrentVersion = "1"

// Theme はキーワード色とハイライト設定をひとまとめにした共有単位です。
// JSON で永続化します。
type Theme struct {
	Name           string            `json:"name"`
	Version        string            `json:"version"`
	Keywords       map[string]string `json:"keywords,omitempty"`
	CustomKeywords map[string]string `json:"customKeywords,omitempty"`
	Settings       Settings          `json:"settings"`
}

// Settings はテーマに含める表示系設定のサブセットです。
type Settings struct {
	CaseSensitive       bool   `json:"caseSensitive"`
	HighlightStyle      string `json:"highlightStyle"`
	FontWeight          string `json:"fontWeight"`
	ShowIcons           bool   `json:"showIcons"`
	EnableRegexKeywords bool   `json:"enableRegexKeywords"`
}

// FromSettings は確定済み設定からエクスポート用テーマを作ります。
func FromSettings(name string, s config.Settings) Theme {
	return Theme{
		Name:           name,
		Version:        CurrentVersion,
		Keywords:       cloneMap(s.Keywords),
		CustomKeywords: cloneMap(s.CustomKeywords),
		Settings: Settings{
			CaseSensitive:       s.CaseSensitive,
			HighlightStyle:      s.HighlightStyle,
			FontWeight:          s.FontWeight,
			ShowIcons:           s.ShowIcons,
			EnableRegexKeywords: s.EnableRegexKeywords,
		},
	}
}

// Apply はテーマの内容を設定に反映した新しい Settings を返します。
// 元の Settings は変更しません。
func (t Theme) Apply(base config.Settings) config.Settings {
	out := base
	out.Keywords = cloneMap(t.Keywords)
	out.CustomKeywords = cloneMap(t.CustomKeywords)
	out.CaseSensitive = t.Settings.CaseSensitive
	out.HighlightStyle = t.Settings.HighlightStyle
	out.FontWeight = t.Settings.FontWeight
	out.ShowIcons = t.Settings.ShowIcons
	out.EnableRegexKeywords = t.Settings.EnableRegexKeywords
	return out
}

// Validate はテーマの整合性を検査します。キーワードが 1 件もない、色が
// 不正、といった場合にエラーを返します。Validate が失敗したテーマは
// どこにも反映してはいけません。
func (t Theme) Validate() error {
	// version is optional on import; only a mismatching one is rejected
	if t.Version != "" && t.Version != CurrentVersion {
		return fmt.Errorf("unsupported theme version: %q", t.Version)
	}
	if len(t.Keywords) == 0 && len(t.CustomKeywords) == 0 {
		return fmt.Errorf("theme defines no keywords")
	}
	if err := validateColors("keywords", t.Keywords); err != nil {
		return err
	}
	if err := validateColors("customKeywords", t.CustomKeywords); err != nil {
		return err
	}
	switch t.Settings.HighlightStyle {
	case "", "text", "background", "border", "underline":
	default:
		return fmt.Errorf("invalid highlightStyle: %s", t.Settings.HighlightStyle)
	}
	switch t.Settings.FontWeight {
	case "", "normal", "bold", "bolder":
	default:
		return fmt.Errorf("invalid fontWeight: %s", t.Settings.FontWeight)
	}
	return nil
}

func validateColors(field string, m map[string]string) error {
	// sorted so the first reported offender is deterministic
	tokens := make([]string, 0, len(m))
	for token := range m {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	for _, token := range tokens {
		if !model.IsValidColor(m[token]) {
			return fmt.Errorf("%s.%s: invalid color %q", field, token, m[token])
		}
	}
	return nil
}

// Export はテーマを整形済み JSON として書き出します。
func Export(path string, t Theme) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Import はテーマファイルを読み込み、検証して返します。名前が空の場合は
// "untitled" を補います。検証に失敗した場合は変更を一切加えず、ゼロ値と
// エラーを返します。
func Import(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var t Theme
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return Theme{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if strings.TrimSpace(t.Name) == "" {
		t.Name = "untitled"
	}
	if err := t.Validate(); err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
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
