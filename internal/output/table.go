package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/codetint/codetint/internal/scan"
	"github.com/codetint/codetint/internal/textutil"
)

const maxCellWidth = 60

// WriteTable は検出一覧をタブ区切りの表として書き出します。
func WriteTable(w io.Writer, res *scan.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tLINE\tKEYWORD\tTEXT")
	for _, f := range res.Findings {
		text := textutil.TruncateByWidth(textutil.CollapseSpace(f.Text), maxCellWidth, "…")
		fmt.Fprintf(tw, "%s\t%d:%d\t%s\t%s\n", f.File, f.Line, f.Col, f.Keyword, text)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, e := range res.Errors {
		fmt.Fprintf(w, "error: %s: %s\n", e.File, e.Message)
	}
	fmt.Fprintf(w, "%d findings (%d skipped, %dms)\n", res.Total, res.Skipped, res.ElapsedMS)
	return nil
}
