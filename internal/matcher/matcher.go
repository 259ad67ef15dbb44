package matcher

import (
	"fmt"
	"regexp"

	"github.com/codetint/codetint/internal/lang"
	"github.com/codetint/codetint/internal/model"
)

// FindMatches は文書テキスト全体からキーワードの出現範囲を列挙します。
//
// 各記述子のパターンで非重複のコメント範囲を列挙し、その部分文字列内で
// キーワードを検索して、コメント開始位置を加えたオフセットの Span を返します。
// 行・ブロックの記述子が同じ位置に重なった場合、同一 Span が重複して現れる
// ことがあります（重複の除去は呼び出し側の裁量）。
//
// リテラルトークンは QuoteMeta の上で両側に \b を付けて照合するため、
// TODO が TODOLIST の内部にマッチすることはありません。IsRegex のトークンは
// /pattern/ 形式から取り出してコンパイルし、失敗した場合はエラーを返します
// （そのキーワードだけをスキップし、走査全体は継続できます）。
func FindMatches(text string, rule model.KeywordRule, descriptors []lang.Descriptor, caseSensitive bool) ([]model.Span, error) {
	re, err := CompileKeyword(rule, caseSensitive)
	if err != nil {
		return nil, err
	}
	if text == "" || len(descriptors) == 0 {
		return nil, nil
	}
	var spans []model.Span
	for _, desc := range descriptors {
		for _, loc := range desc.Pattern.FindAllStringIndex(text, -1) {
			commentStart := loc[0]
			commentText := text[loc[0]:loc[1]]
			if commentText == "" {
				continue
			}
			for _, m := range re.FindAllStringIndex(commentText, -1) {
				if m[1] <= m[0] {
					continue // zero-width regex match, nothing to paint
				}
				spans = append(spans, model.Span{Start: commentStart + m[0], End: commentStart + m[1]})
			}
		}
	}
	return spans, nil
}

// CompileKeyword はキーワード 1 件を照合用の正規表現に変換します。
// 大文字小文字の区別は走査パス全体で一律のフラグとして適用されます。
func CompileKeyword(rule model.KeywordRule, caseSensitive bool) (*regexp.Regexp, error) {
	var pat string
	if rule.IsRegex {
		inner, ok := model.UnwrapRegexToken(rule.Token)
		if !ok {
			return nil, fmt.Errorf("keyword %q: not a /pattern/ form", rule.Token)
		}
		pat = inner
	} else {
		pat = `\b` + regexp.QuoteMeta(rule.Token) + `\b`
	}
	if !caseSensitive {
		pat = `(?i)` + pat
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, fmt.Errorf("keyword %q: %w", rule.Token, err)
	}
	return re, nil
}
