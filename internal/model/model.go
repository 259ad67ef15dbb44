package model

import (
	"regexp"
	"strings"
)

// Span は文書テキスト内の半開区間 [Start, End) をバイトオフセットで表します。
// End > Start が常に成り立ちます。
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// KeywordRule は 1 つの検索キーワードとその表示色を表します。
// IsRegex が true の場合、Token は /pattern/ 形式の正規表現ラッパーです。
type KeywordRule struct {
	Token   string `json:"token"`
	Color   string `json:"color"`
	IsRegex bool   `json:"is_regex,omitempty"`
}

// HighlightStyle はマッチ範囲の装飾方法を表します。
type HighlightStyle string

const (
	StyleText       HighlightStyle = "text"
	StyleBackground HighlightStyle = "background"
	StyleBorder     HighlightStyle = "border"
	StyleUnderline  HighlightStyle = "underline"
)

// VisualRule はキーワード 1 件分のレンダリング指示です。導出値であり永続化しません。
type VisualRule struct {
	Foreground string
	Background string
	Border     string
	Underline  string
	Icon       string
	FontWeight string
}

var (
	hexColorRe = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	tokenRe    = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// IsValidColor は 3 桁または 6 桁の 16 進カラー表記かどうかを返します。
func IsValidColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// IsLiteralToken reports whether s is a plain keyword (letters, digits, _ and -).
func IsLiteralToken(s string) bool {
	return tokenRe.MatchString(s)
}

// UnwrapRegexToken は /pattern/ 形式のトークンから中身を取り出します。
// ラッパー形式でない場合は ok=false を返します。
func UnwrapRegexToken(s string) (pattern string, ok bool) {
	if len(s) < 3 || !strings.HasPrefix(s, "/") || !strings.HasSuffix(s, "/") {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// KeywordSet は検証・上限適用済みのキーワード集合を挿入順で保持します。
// 設定が変わるたびに作り直され、既存インスタンスは変更されません。
type KeywordSet struct {
	rules []KeywordRule
	index map[string]int
}

func NewKeywordSet() *KeywordSet {
	return &KeywordSet{index: make(map[string]int)}
}

// Put adds a rule, or overrides the color of an existing token in place.
// The original insertion position is kept on override (first-seen wins).
func (s *KeywordSet) Put(rule KeywordRule) {
	if i, ok := s.index[rule.Token]; ok {
		s.rules[i] = rule
		return
	}
	s.index[rule.Token] = len(s.rules)
	s.rules = append(s.rules, rule)
}

func (s *KeywordSet) Get(token string) (KeywordRule, bool) {
	i, ok := s.index[token]
	if !ok {
		return KeywordRule{}, false
	}
	return s.rules[i], true
}

func (s *KeywordSet) Len() int { return len(s.rules) }

// Rules は挿入順のルール一覧のコピーを返します。
func (s *KeywordSet) Rules() []KeywordRule {
	out := make([]KeywordRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Truncate drops every rule past n, in iteration order.
func (s *KeywordSet) Truncate(n int) {
	if n < 0 || n >= len(s.rules) {
		return
	}
	for _, r := range s.rules[n:] {
		delete(s.index, r.Token)
	}
	s.rules = s.rules[:n]
}
