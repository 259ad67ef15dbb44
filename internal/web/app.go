// Package web serves a local HTML preview of highlighted files.
package web

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/codetint/codetint/internal/colorutil"
	"github.com/codetint/codetint/internal/config"
	"github.com/codetint/codetint/internal/decor"
	"github.com/codetint/codetint/internal/lang"
	"github.com/codetint/codetint/internal/model"
	"github.com/codetint/codetint/internal/scan"
)

const indexHTML = `<!doctype html>
<html><head><meta charset="utf-8"><title>codetint</title>
<style>
body { font-family: sans-serif; margin: 2rem; background: #1e1e1e; color: #d4d4d4; }
a { color: #569cd6; text-decoration: none; }
table { border-collapse: collapse; }
td, th { padding: 0.25rem 1rem 0.25rem 0; text-align: left; }
.badge { border-radius: 3px; padding: 0.1rem 0.4rem; margin-right: 0.3rem; font-size: 0.85rem; }
</style></head><body>
<h1>codetint</h1>
<p>{{range .Legend}}<span class="badge" style="background:{{.Background}};color:{{.Text}}">{{.Token}}</span>{{end}}</p>
<table><tr><th>file</th><th>lang</th><th>matches</th></tr>
{{range .Files}}<tr><td><a href="/file?path={{.Path}}">{{.Path}}</a></td><td>{{.Lang}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
<p>{{.Total}} matches in {{len .Files}} files</p>
</body></html>`

const fileHTML = `<!doctype html>
<html><head><meta charset="utf-8"><title>{{.Path}} — codetint</title>
<style>
body { margin: 2rem; background: #1e1e1e; color: #d4d4d4; }
pre { font-family: monospace; font-size: 0.9rem; line-height: 1.4; }
a { color: #569cd6; }
</style></head><body>
<p><a href="/">← index</a> {{.Path}} ({{.Lang}}, {{.Count}} matches)</p>
<pre>{{.Content}}</pre>
</body></html>`

type legendEntry struct {
	Token      string
	Background string
	Text       string
}

type fileEntry struct {
	Path  string
	Lang  string
	Count int
}

type indexData struct {
	Legend []legendEntry
	Files  []fileEntry
	Total  int
}

type fileData struct {
	Path    string
	Lang    string
	Count   int
	Content template.HTML
}

// App は 1 ディレクトリ分のハイライトプレビューを提供します。レンダリング
// 結果は path と mtime をキーにキャッシュし、未変更のファイルを再走査
// しません。
type App struct {
	root     string
	settings config.Settings
	orch     *scan.Orchestrator
	set      *model.KeywordSet
	cache    *gocache.Cache

	tmplOnce  sync.Once
	indexTmpl *template.Template
	fileTmpl  *template.Template
}

func NewApp(root string, set *model.KeywordSet, orch *scan.Orchestrator, settings config.Settings) *App {
	return &App{
		root:     root,
		settings: settings,
		orch:     orch,
		set:      set,
		cache:    gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Register attaches the preview handlers to the provided mux.
func (a *App) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", a.indexHandler)
	mux.HandleFunc("/file", a.fileHandler)
}

func (a *App) templates() (*template.Template, *template.Template) {
	a.tmplOnce.Do(func() {
		a.indexTmpl = template.Must(template.New("index").Parse(indexHTML))
		a.fileTmpl = template.Must(template.New("file").Parse(fileHTML))
	})
	return a.indexTmpl, a.fileTmpl
}

func (a *App) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	indexTmpl, _ := a.templates()

	res := a.orch.Run(scan.FileOptions{
		Paths:        []string{a.root},
		MaxFileBytes: a.settings.MaxFileBytes,
		Jobs:         a.settings.Jobs,
		Set:          a.set,
		Scan:         scanOptions(a.settings),
	})
	counts := make(map[string]*fileEntry)
	for _, f := range res.Findings {
		e, ok := counts[f.File]
		if !ok {
			e = &fileEntry{Path: f.File, Lang: f.Lang}
			counts[f.File] = e
		}
		e.Count++
	}
	data := indexData{Total: res.Total, Legend: a.legend()}
	for _, e := range counts {
		data.Files = append(data.Files, *e)
	}
	sort.Slice(data.Files, func(i, j int) bool { return data.Files[i].Path < data.Files[j].Path })

	writeHTMLHeaders(w)
	if err := indexTmpl.Execute(w, data); err != nil {
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

func (a *App) fileHandler(w http.ResponseWriter, r *http.Request) {
	_, fileTmpl := a.templates()

	rel := r.URL.Query().Get("path")
	full, err := a.resolve(rel)
	if err != nil {
		http.Error(w, "invalid path", http.StatusBadRequest)
		return
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	cacheKey := fmt.Sprintf("%s|%d", full, info.ModTime().UnixNano())
	if cached, ok := a.cache.Get(cacheKey); ok {
		writeHTMLHeaders(w)
		_ = fileTmpl.Execute(w, cached.(fileData))
		return
	}

	data, err := os.ReadFile(full)
	if err != nil {
		http.Error(w, "read failed", http.StatusInternalServerError)
		return
	}
	text := string(data)
	languageID := lang.Normalize(lang.Detect(full, data))
	byKeyword := a.orch.Scan(text, languageID, a.set, scanOptions(a.settings))

	page := fileData{
		Path:    rel,
		Lang:    languageID,
		Count:   countSpans(byKeyword),
		Content: a.renderHTML(text, byKeyword),
	}
	a.cache.SetDefault(cacheKey, page)

	writeHTMLHeaders(w)
	if err := fileTmpl.Execute(w, page); err != nil {
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

// resolve は root からの相対パスを検証付きで絶対パスに直します。
// root の外に出るパスは拒否します。
func (a *App) resolve(rel string) (string, error) {
	if rel == "" || strings.Contains(rel, "\x00") {
		return "", fmt.Errorf("empty path")
	}
	full := filepath.Join(a.root, filepath.FromSlash(rel))
	absRoot, err := filepath.Abs(a.root)
	if err != nil {
		return "", err
	}
	absFull, err := filepath.Abs(full)
	if err != nil {
		return "", err
	}
	if absFull != absRoot && !strings.HasPrefix(absFull, absRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes root")
	}
	return absFull, nil
}

// renderHTML はマッチ範囲を <span> で包みつつテキストをエスケープします。
// 重なり合う範囲は開始位置の早い方を優先します。
func (a *App) renderHTML(text string, byKeyword map[string][]model.Span) template.HTML {
	type colored struct {
		span  model.Span
		token string
	}
	var all []colored
	for token, spans := range byKeyword {
		for _, sp := range spans {
			all = append(all, colored{span: sp, token: token})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].span.Start == all[j].span.Start {
			return all[i].span.End < all[j].span.End
		}
		return all[i].span.Start < all[j].span.Start
	})

	style := decor.ParseStyle(a.settings.HighlightStyle)
	var b strings.Builder
	pos := 0
	for _, c := range all {
		if c.span.Start < pos || c.span.End > len(text) {
			continue
		}
		rule, ok := a.set.Get(c.token)
		if !ok {
			continue
		}
		vr := decor.Plan(rule.Color, style, a.settings.FontWeight, a.settings.ShowIcons, c.token)
		b.WriteString(template.HTMLEscapeString(text[pos:c.span.Start]))
		b.WriteString(`<span style="`)
		b.WriteString(cssFor(vr))
		b.WriteString(`">`)
		if vr.Icon != "" {
			b.WriteString(vr.Icon)
			b.WriteString(" ")
		}
		b.WriteString(template.HTMLEscapeString(text[c.span.Start:c.span.End]))
		b.WriteString(`</span>`)
		pos = c.span.End
	}
	b.WriteString(template.HTMLEscapeString(text[pos:]))
	return template.HTML(b.String())
}

func (a *App) legend() []legendEntry {
	var out []legendEntry
	for _, rule := range a.set.Rules() {
		text := "#000000"
		if rgb, _, err := colorutil.ParseHex(rule.Color); err == nil {
			text = colorutil.AutoTextColor(rgb).Hex()
		}
		out = append(out, legendEntry{Token: rule.Token, Background: rule.Color, Text: text})
	}
	return out
}

// cssFor maps a VisualRule onto inline CSS. Browsers accept 8-digit hex, so
// background alpha passes through untouched.
func cssFor(vr model.VisualRule) string {
	var parts []string
	if vr.Background != "" {
		parts = append(parts, "background-color:"+vr.Background)
	} else if vr.Foreground != "" {
		parts = append(parts, "color:"+vr.Foreground)
	}
	if vr.Border != "" {
		parts = append(parts, "outline:1px solid "+vr.Border)
	}
	if vr.Underline != "" {
		parts = append(parts, "text-decoration:underline "+vr.Underline)
	}
	switch vr.FontWeight {
	case "bold":
		parts = append(parts, "font-weight:bold")
	case "bolder":
		parts = append(parts, "font-weight:900")
	}
	return strings.Join(parts, ";")
}

func countSpans(byKeyword map[string][]model.Span) int {
	n := 0
	for _, spans := range byKeyword {
		n += len(spans)
	}
	return n
}

func scanOptions(s config.Settings) scan.Options {
	return scan.Options{
		CaseSensitive:       s.CaseSensitive,
		HighlightStyle:      decor.ParseStyle(s.HighlightStyle),
		FontWeight:          s.FontWeight,
		ShowIcons:           s.ShowIcons,
		EnableRegexKeywords: s.EnableRegexKeywords,
		MinKeywordLength:    s.MinKeywordLength,
		MaxKeywords:         s.MaxKeywords,
		ExcludeFromEnd:      s.ExcludeFromEnd,
	}
}

func writeHTMLHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
}
