package output

import (
	"encoding/json"
	"io"

	"github.com/codetint/codetint/internal/scan"
)

// WriteJSON は走査結果全体を 1 つの JSON ドキュメントとして書き出します。
func WriteJSON(w io.Writer, res *scan.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteNDJSON は検出 1 件を 1 行の JSON として書き出します。
// パイプライン処理（jq や grep）向けの形式です。
func WriteNDJSON(w io.Writer, res *scan.Result) error {
	enc := json.NewEncoder(w)
	for _, f := range res.Findings {
		if err := enc.Encode(f); err != nil {
			return err
		}
	}
	return nil
}
