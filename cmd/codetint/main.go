package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/codetint/codetint/internal/config"
	"github.com/codetint/codetint/internal/decor"
	"github.com/codetint/codetint/internal/lang"
	"github.com/codetint/codetint/internal/logx"
	"github.com/codetint/codetint/internal/model"
	"github.com/codetint/codetint/internal/output"
	"github.com/codetint/codetint/internal/render"
	"github.com/codetint/codetint/internal/scan"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "view":
			viewCmd(os.Args[2:])
			return
		case "serve":
			serveCmd(os.Args[2:])
			return
		case "theme":
			themeCmd(os.Args[2:])
			return
		case "langs":
			langsCmd()
			return
		}
	}
	scanCmd(os.Args[1:])
}

func scanCmd(args []string) {
	fs := flag.NewFlagSet("codetint", flag.ExitOnError)
	layer, cfgPath := settingsFlags(fs)
	langOverride := fs.String("lang", "", "force language id (default: detect per file)")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	_ = fs.Parse(args)

	settings := mustLoadSettings(*cfgPath, layer)
	if !settings.Enabled {
		return
	}

	override := checkLangOverride(*langOverride)
	logger := newLogger(*verbose)
	orch := newOrchestrator(logger, settings)
	defer orch.Close()

	opts := scanOptionsFrom(settings)
	kw, custom := keywordMaps(settings)
	set := orch.BuildKeywordSet(kw, custom, opts)
	orch.RefreshDecorations(set, opts)

	var res *scan.Result
	if len(fs.Args()) == 0 && !term.IsTerminal(int(os.Stdin.Fd())) {
		res = scanStdin(orch, set, settings, override)
	} else {
		res = orch.Run(scan.FileOptions{
			Paths:        fs.Args(),
			LangOverride: override,
			MaxFileBytes: settings.MaxFileBytes,
			Jobs:         settings.Jobs,
			Set:          set,
			Scan:         opts,
		})
	}

	var err error
	switch settings.Output {
	case "json":
		err = output.WriteJSON(os.Stdout, res)
	case "ndjson":
		err = output.WriteNDJSON(os.Stdout, res)
	case "table":
		err = output.WriteTable(os.Stdout, res)
	default:
		err = output.WriteHighlight(os.Stdout, res, orch)
	}
	if err != nil {
		log.Fatal(err)
	}
	if len(res.Errors) > 0 {
		os.Exit(1)
	}
}

// scanStdin はパイプされた標準入力を 1 文書として走査します。言語は -lang
// またはシバン行から決めます。
func scanStdin(orch *scan.Orchestrator, set *model.KeywordSet, settings config.Settings, override string) *scan.Result {
	start := time.Now()
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	languageID := override
	if languageID == "" {
		languageID = lang.Normalize(lang.DetectShebang(data))
	}
	if !lang.Supported(languageID) {
		log.Fatal("cannot detect language of stdin; pass -lang")
	}
	findings := orch.ScanData("<stdin>", data, languageID, set, scanOptionsFrom(settings))
	return &scan.Result{
		Findings:  findings,
		Total:     len(findings),
		ElapsedMS: time.Since(start).Milliseconds(),
	}
}

func langsCmd() {
	for _, id := range lang.IDs() {
		fmt.Println(id)
	}
}

// settingsFlags は設定に対応するフラグ群を登録し、パース後にフラグレイヤを
// 組み立てる関数と -config の値を返します。未指定のフラグはレイヤに
// 含めません（fs.Visit はセットされたフラグだけを巡回します）。
func settingsFlags(fs *flag.FlagSet) (func() config.Config, *string) {
	cfgPath := fs.String("config", "", "config file path (default: search upward)")

	keywords := fs.String("keywords", "", "default keywords as TOKEN=#RRGGBB,...")
	custom := fs.String("custom-keywords", "", "extra keywords as TOKEN=#RRGGBB,...")
	regexPat := fs.String("regex-patterns", "", "regex keywords as PATTERN=#RRGGBB,...")
	caseSensitive := fs.Bool("case-sensitive", false, "match keywords case-sensitively")
	style := fs.String("style", "", "highlight style: text|background|border|underline")
	weight := fs.String("font-weight", "", "font weight: normal|bold|bolder")
	icons := fs.Bool("icons", false, "show keyword icons")
	regex := fs.Bool("regex", false, "allow /pattern/ regex keywords")
	minLen := fs.Int("min-keyword-length", 0, "minimum keyword length (1-20)")
	maxKw := fs.Int("max-keywords", 0, "keyword cap (1-100)")
	debounce := fs.Int("debounce-ms", 0, "viewer reload debounce in milliseconds")
	jobs := fs.Int("jobs", 0, "max parallel workers (0 = NumCPU)")
	maxBytes := fs.Int("max-file-bytes", 0, "skip files larger than this (0 = no limit)")
	color := fs.String("color", "", "color mode: auto|always|never")
	out := fs.String("output", "", "output format: highlight|table|json|ndjson")

	build := func() config.Config {
		var layer config.Config
		var parseErrs []string
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "keywords":
				m, err := config.ParseKeywordList(*keywords, "keywords")
				if err != nil {
					parseErrs = append(parseErrs, err.Error())
					return
				}
				layer.Keywords = &m
			case "custom-keywords":
				m, err := config.ParseKeywordList(*custom, "custom-keywords")
				if err != nil {
					parseErrs = append(parseErrs, err.Error())
					return
				}
				layer.CustomKeywords = &m
			case "regex-patterns":
				m, err := config.ParseKeywordList(*regexPat, "regex-patterns")
				if err != nil {
					parseErrs = append(parseErrs, err.Error())
					return
				}
				layer.RegexPatterns = &m
			case "case-sensitive":
				layer.CaseSensitive = caseSensitive
			case "style":
				layer.HighlightStyle = style
			case "font-weight":
				layer.FontWeight = weight
			case "icons":
				layer.ShowIcons = icons
			case "regex":
				layer.EnableRegexKeywords = regex
			case "min-keyword-length":
				layer.MinKeywordLength = minLen
			case "max-keywords":
				layer.MaxKeywords = maxKw
			case "debounce-ms":
				layer.DebounceMS = debounce
			case "jobs":
				layer.Jobs = jobs
			case "max-file-bytes":
				layer.MaxFileBytes = maxBytes
			case "color":
				layer.Color = color
			case "output":
				layer.Output = out
			}
		})
		if len(parseErrs) > 0 {
			log.Fatal(strings.Join(parseErrs, "\n"))
		}
		return layer
	}
	return build, cfgPath
}

// mustLoadSettings はファイル → 環境変数 → フラグの順でレイヤをマージし、
// 検証済みの設定を返します。どこかで失敗したらメッセージを出して終了します。
func mustLoadSettings(cfgPath string, layer func() config.Config) config.Settings {
	flagLayer := layer()

	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	home, _ := os.UserHomeDir()
	path := config.Find(wd, cfgPath, os.Getenv("XDG_CONFIG_HOME"), home)
	if cfgPath != "" && path == "" {
		log.Fatalf("config file not found: %s", cfgPath)
	}

	var fileLayer config.Config
	if path != "" {
		fileLayer, err = config.Load(path)
		if err != nil {
			log.Fatal(err)
		}
	}
	envLayer, err := config.FromEnv(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	merged := config.Merge(config.DefaultSettings(), fileLayer, envLayer, flagLayer)
	settings, err := config.NormalizeAndValidate(merged)
	if err != nil {
		log.Fatal(err)
	}
	return settings
}

func newLogger(verbose bool) *logx.Logger {
	logger := logx.New(os.Stderr)
	if verbose {
		logger.SetMinLevel(logx.LevelDebug)
	}
	return logger
}

func newOrchestrator(logger *logx.Logger, settings config.Settings) *scan.Orchestrator {
	mode, err := render.ParseMode(settings.Color)
	if err != nil {
		log.Fatal(err)
	}
	enabled := render.Enabled(mode, os.Stdout, render.EnvMap(os.Environ()))
	return scan.NewOrchestrator(logger, render.NewRegistry(enabled))
}

func scanOptionsFrom(s config.Settings) scan.Options {
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

// keywordMaps は設定のキーワード表を走査入力の形に直します。regex_patterns の
// キーは /pattern/ ラッパーに包んでカスタム側へ合流させます。
func keywordMaps(s config.Settings) (keywords, custom map[string]string) {
	keywords = s.Keywords
	custom = make(map[string]string, len(s.CustomKeywords)+len(s.RegexPatterns))
	for token, color := range s.CustomKeywords {
		custom[token] = color
	}
	for pattern, color := range s.RegexPatterns {
		key := pattern
		if _, ok := model.UnwrapRegexToken(pattern); !ok {
			key = "/" + pattern + "/"
		}
		custom[key] = color
	}
	if len(custom) == 0 {
		custom = nil
	}
	return keywords, custom
}

// checkLangOverride は -lang の値を検証し、正規化済み ID を返します。
// 未対応なら候補を添えて終了します。
func checkLangOverride(raw string) string {
	if raw == "" {
		return ""
	}
	id := lang.Normalize(raw)
	if lang.Supported(id) {
		return id
	}
	if candidates := lang.Suggest(raw); len(candidates) > 0 {
		log.Fatalf("unsupported language %q (did you mean %s?)", raw, strings.Join(candidates, ", "))
	}
	log.Fatalf("unsupported language %q", raw)
	return ""
}
