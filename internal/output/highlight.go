package output

import (
	"fmt"
	"io"

	"github.com/codetint/codetint/internal/model"
	"github.com/codetint/codetint/internal/scan"
)

// WriteHighlight は検出行ごとに「ファイル:行:列: 行テキスト」を書き出します。
// 行テキスト中のマッチ範囲はオーケストレータの装飾ハンドルで塗ります。
// 事前に RefreshDecorations が済んでいることが前提です。
func WriteHighlight(w io.Writer, res *scan.Result, o *scan.Orchestrator) error {
	for _, f := range res.Findings {
		line := f.Text
		if h, ok := o.Handle(f.Keyword); ok {
			rel := model.Span{Start: f.Col - 1, End: f.Col - 1 + (f.Span.End - f.Span.Start)}
			if rel.Start >= 0 && rel.End <= len(line) {
				line = o.Registry.Apply(h, line, []model.Span{rel})
			}
		}
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s\n", f.File, f.Line, f.Col, line); err != nil {
			return err
		}
	}
	for _, e := range res.Errors {
		fmt.Fprintf(w, "error: %s: %s\n", e.File, e.Message)
	}
	return nil
}
