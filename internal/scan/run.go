package scan

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/codetint/codetint/internal/lang"
	"github.com/codetint/codetint/internal/model"
)

// FileOptions は複数ファイル走査の入力です。
type FileOptions struct {
	Paths        []string
	LangOverride string
	MaxFileBytes int
	Jobs         int
	Set          *model.KeywordSet
	Scan         Options
}

// Finding は検出 1 件です。Line/Col は 1 始まり、Span はファイル内バイト範囲、
// Text は該当行の生テキストです（Col は Text 内の位置としても有効です）。
type Finding struct {
	File    string     `json:"file"`
	Lang    string     `json:"lang"`
	Keyword string     `json:"keyword"`
	Line    int        `json:"line"`
	Col     int        `json:"col"`
	Text    string     `json:"text"`
	Span    model.Span `json:"span"`
}

type FileError struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

type Result struct {
	Findings  []Finding   `json:"findings"`
	Errors    []FileError `json:"errors,omitempty"`
	Total     int         `json:"total"`
	Skipped   int         `json:"skipped"`
	ElapsedMS int64       `json:"elapsed_ms"`
}

// Run は指定パス（ファイルまたはディレクトリ）を走査して検出一覧を返します。
// 1 ファイルの読み込み失敗は Errors に集約し、他のファイルの走査は続行します。
func (o *Orchestrator) Run(opts FileOptions) *Result {
	start := time.Now()
	res := &Result{}

	files, errs := expandPaths(opts.Paths)
	res.Errors = append(res.Errors, errs...)
	if len(files) == 0 {
		res.ElapsedMS = time.Since(start).Milliseconds()
		return res
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > 64 {
		jobs = 64
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	work := make(chan string)
	wg.Add(jobs)
	for i := 0; i < jobs; i++ {
		go func() {
			defer wg.Done()
			for path := range work {
				findings, skipped, err := o.scanFile(path, opts)
				mu.Lock()
				if err != nil {
					res.Errors = append(res.Errors, FileError{File: path, Message: err.Error()})
				}
				if skipped {
					res.Skipped++
				}
				res.Findings = append(res.Findings, findings...)
				mu.Unlock()
			}
		}()
	}
	for _, f := range files {
		work <- f
	}
	close(work)
	wg.Wait()

	sort.SliceStable(res.Findings, func(i, j int) bool {
		if res.Findings[i].File == res.Findings[j].File {
			return res.Findings[i].Span.Start < res.Findings[j].Span.Start
		}
		return res.Findings[i].File < res.Findings[j].File
	})
	sort.SliceStable(res.Errors, func(i, j int) bool { return res.Errors[i].File < res.Errors[j].File })
	res.Total = len(res.Findings)
	res.ElapsedMS = time.Since(start).Milliseconds()
	return res
}

func (o *Orchestrator) scanFile(path string, opts FileOptions) ([]Finding, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, true, nil // binary
	}
	if opts.MaxFileBytes > 0 && len(data) > opts.MaxFileBytes {
		return nil, true, nil
	}
	languageID := opts.LangOverride
	if languageID == "" {
		languageID = lang.Detect(path, data)
	}
	languageID = lang.Normalize(languageID)
	if !lang.Supported(languageID) {
		return nil, true, nil
	}
	return o.ScanData(filepath.ToSlash(path), data, languageID, opts.Set, opts.Scan), false, nil
}

// ScanData は 1 つの文書を走査して検出一覧を返します。name は Finding の
// File 欄にそのまま入ります（標準入力は "<stdin>" など）。
func (o *Orchestrator) ScanData(name string, data []byte, languageID string, set *model.KeywordSet, opts Options) []Finding {
	text := string(data)
	byKeyword := o.Scan(text, languageID, set, opts)
	if len(byKeyword) == 0 {
		return nil
	}

	offsets := lineOffsets(data)
	var findings []Finding
	for keyword, spans := range byKeyword {
		for _, sp := range spans {
			line, col := lineColAt(sp.Start, offsets)
			findings = append(findings, Finding{
				File:    name,
				Lang:    languageID,
				Keyword: keyword,
				Line:    line,
				Col:     col,
				Text:    lineTextAt(text, line, offsets),
				Span:    sp,
			})
		}
	}
	sort.SliceStable(findings, func(i, j int) bool { return findings[i].Span.Start < findings[j].Span.Start })
	return findings
}

func expandPaths(paths []string) ([]string, []FileError) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	var files []string
	var errs []FileError
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			errs = append(errs, FileError{File: p, Message: err.Error()})
			continue
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		walkErr := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				errs = append(errs, FileError{File: path, Message: err.Error()})
				return nil
			}
			name := d.Name()
			if d.IsDir() {
				if name != "." && strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		if walkErr != nil {
			errs = append(errs, FileError{File: p, Message: walkErr.Error()})
		}
	}
	sort.Strings(files)
	return files, errs
}

func lineOffsets(data []byte) []int {
	offsets := make([]int, 0, bytes.Count(data, []byte{'\n'})+1)
	offsets = append(offsets, 0)
	for i, b := range data {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

func lineColAt(offset int, offsets []int) (line, col int) {
	idx := sort.Search(len(offsets), func(i int) bool { return offsets[i] > offset })
	if idx == 0 {
		return 1, offset + 1
	}
	return idx, offset - offsets[idx-1] + 1
}

func lineTextAt(text string, line int, offsets []int) string {
	if line < 1 || line > len(offsets) {
		return ""
	}
	start := offsets[line-1]
	end := len(text)
	if line < len(offsets) {
		end = offsets[line] - 1
	}
	if end < start {
		end = start
	}
	return strings.TrimRight(text[start:end], "\r")
}
