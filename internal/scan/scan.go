package scan

import (
	"sort"

	"github.com/codetint/codetint/internal/decor"
	"github.com/codetint/codetint/internal/lang"
	"github.com/codetint/codetint/internal/logx"
	"github.com/codetint/codetint/internal/matcher"
	"github.com/codetint/codetint/internal/model"
	"github.com/codetint/codetint/internal/render"
)

// Options はキーワード集合の構築と走査に効く設定値の束です。
type Options struct {
	CaseSensitive       bool
	HighlightStyle      model.HighlightStyle
	FontWeight          string
	ShowIcons           bool
	EnableRegexKeywords bool
	MinKeywordLength    int
	MaxKeywords         int
	ExcludeFromEnd      int
}

const (
	DefaultMinKeywordLength = 2
	DefaultMaxKeywords      = 50
)

// DefaultRules は組み込みの 8 キーワードを既定色付きで返します。
func DefaultRules() []model.KeywordRule {
	return []model.KeywordRule{
		{Token: "TODO", Color: "#FF8C00"},
		{Token: "FIXME", Color: "#FF2D00"},
		{Token: "NOTE", Color: "#1E90FF"},
		{Token: "HACK", Color: "#8A2BE2"},
		{Token: "XXX", Color: "#FF00FF"},
		{Token: "BUG", Color: "#DC143C"},
		{Token: "OPTIMIZE", Color: "#00CED1"},
		{Token: "REVIEW", Color: "#2E8B57"},
	}
}

// Orchestrator は 1 回分の走査と装飾ハンドルの寿命を司ります。
// 装飾レジストリとエラーレポータ（上限付きロガー）はこのインスタンスが
// 所有し、パッケージレベルの共有状態は持ちません。
type Orchestrator struct {
	Log      *logx.Logger
	Registry *render.Registry
	handles  map[string]render.Handle
}

func NewOrchestrator(log *logx.Logger, registry *render.Registry) *Orchestrator {
	return &Orchestrator{
		Log:      log,
		Registry: registry,
		handles:  make(map[string]render.Handle),
	}
}

// BuildKeywordSet はデフォルトとカスタムのマッピングをマージして検証済みの
// キーワード集合を作ります。カスタムはキー衝突時に色を上書きします。
// 反復順は決定的です: 組み込みデフォルト順 → 残りのキーを辞書順。
// 両方のマッピングが空（または取得に失敗して nil）の場合は組み込みの
// 8 キーワードにフォールバックします。
func (o *Orchestrator) BuildKeywordSet(keywords, custom map[string]string, opts Options) *model.KeywordSet {
	merged := orderedMerge(keywords, custom)
	if len(merged) == 0 {
		merged = DefaultRules()
	}

	minLen := opts.MinKeywordLength
	if minLen <= 0 {
		minLen = DefaultMinKeywordLength
	}
	maxKw := opts.MaxKeywords
	if maxKw <= 0 {
		maxKw = DefaultMaxKeywords
	}

	set := model.NewKeywordSet()
	for _, rule := range merged {
		if err := validateRule(&rule, minLen, opts.EnableRegexKeywords); err != nil {
			o.Log.Warnf("dropping keyword %q: %v", rule.Token, err)
			continue
		}
		set.Put(rule)
	}
	if set.Len() > maxKw {
		o.Log.Warnf("keyword set capped at %d (had %d)", maxKw, set.Len())
		set.Truncate(maxKw)
	}
	return set
}

// Scan は文書テキストをキーワードごとに走査し、キーワード→Span 列の対応を
// 返します。未対応の言語では空のマッピングを返します（エラーにしません）。
// 1 つのキーワードの失敗（壊れた正規表現など）はログに記録して除外し、
// 残りのキーワードの走査は必ず継続します。ExcludeFromEnd が正のとき、
// 文書末尾からそのバイト数以内に始まるマッチは無視します。
func (o *Orchestrator) Scan(text, languageID string, set *model.KeywordSet, opts Options) map[string][]model.Span {
	out := make(map[string][]model.Span)
	descriptors := lang.Lookup(languageID)
	if len(descriptors) == 0 {
		return out
	}
	limit := len(text)
	if opts.ExcludeFromEnd > 0 {
		limit -= opts.ExcludeFromEnd
	}
	for _, rule := range set.Rules() {
		spans, err := matcher.FindMatches(text, rule, descriptors, opts.CaseSensitive)
		if err != nil {
			o.Log.Errorf("scan %s: %v", languageID, err)
			continue
		}
		if opts.ExcludeFromEnd > 0 {
			kept := spans[:0]
			for _, sp := range spans {
				if sp.Start < limit {
					kept = append(kept, sp)
				}
			}
			spans = kept
		}
		if len(spans) == 0 {
			continue
		}
		out[rule.Token] = dedupeSpans(spans)
	}
	return out
}

// RefreshDecorations は設定変更後の装飾ハンドルを作り直します。
// 置き換え前に既存ハンドルを必ず解放します。
func (o *Orchestrator) RefreshDecorations(set *model.KeywordSet, opts Options) {
	for _, h := range o.handles {
		o.Registry.Dispose(h)
	}
	o.handles = make(map[string]render.Handle, set.Len())
	for _, rule := range set.Rules() {
		vr := decor.Plan(rule.Color, opts.HighlightStyle, opts.FontWeight, opts.ShowIcons, rule.Token)
		o.handles[rule.Token] = o.Registry.Register(vr)
	}
}

// Handle は RefreshDecorations 済みのキーワードのハンドルを返します。
func (o *Orchestrator) Handle(token string) (render.Handle, bool) {
	h, ok := o.handles[token]
	return h, ok
}

// Close releases every decoration handle owned by the orchestrator.
func (o *Orchestrator) Close() {
	for _, h := range o.handles {
		o.Registry.Dispose(h)
	}
	o.handles = make(map[string]render.Handle)
}

func validateRule(rule *model.KeywordRule, minLen int, allowRegex bool) error {
	if inner, ok := model.UnwrapRegexToken(rule.Token); ok {
		if !allowRegex {
			return errRegexDisabled
		}
		if inner == "" {
			return errEmptyPattern
		}
		rule.IsRegex = true
	} else {
		if len(rule.Token) < minLen {
			return errTooShort
		}
		if !model.IsLiteralToken(rule.Token) {
			return errBadCharset
		}
	}
	if !model.IsValidColor(rule.Color) {
		return errBadColor
	}
	return nil
}

// orderedMerge flattens the two maps into a deterministic rule list:
// built-in default tokens first (in their canonical order, when present),
// then the remaining keys sorted, customs overriding colors on collision.
func orderedMerge(keywords, custom map[string]string) []model.KeywordRule {
	if len(keywords) == 0 && len(custom) == 0 {
		return nil
	}
	color := func(token string) string {
		if c, ok := custom[token]; ok {
			return c
		}
		return keywords[token]
	}
	seen := make(map[string]struct{})
	var rules []model.KeywordRule
	add := func(token string) {
		if _, ok := seen[token]; ok {
			return
		}
		seen[token] = struct{}{}
		rules = append(rules, model.KeywordRule{Token: token, Color: color(token)})
	}
	for _, def := range DefaultRules() {
		if _, ok := keywords[def.Token]; ok {
			add(def.Token)
			continue
		}
		if _, ok := custom[def.Token]; ok {
			add(def.Token)
		}
	}
	rest := make([]string, 0, len(keywords)+len(custom))
	for token := range keywords {
		rest = append(rest, token)
	}
	for token := range custom {
		rest = append(rest, token)
	}
	sort.Strings(rest)
	for _, token := range rest {
		add(token)
	}
	return rules
}

// dedupeSpans sorts spans and removes exact duplicates produced by
// overlapping line/block descriptors. The renderer is idempotent on
// duplicates either way; this just keeps output minimal.
func dedupeSpans(spans []model.Span) []model.Span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start == spans[j].Start {
			return spans[i].End < spans[j].End
		}
		return spans[i].Start < spans[j].Start
	})
	out := spans[:0]
	for i, sp := range spans {
		if i > 0 && sp == spans[i-1] {
			continue
		}
		out = append(out, sp)
	}
	return out
}
