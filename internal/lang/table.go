package lang

import (
	"regexp"
	"sort"
)

// Kind はコメント記述子の種別（行コメント／ブロックコメント）です。
type Kind int

const (
	KindLine Kind = iota
	KindBlock
)

// Descriptor は 1 言語のコメント構文 1 件を表します。Pattern はコメント全体
// （開始トークンを含む）にマッチします。ブロックパターンは非貪欲で、隣接する
// 2 つのブロックコメントを 1 つにまとめないことが保証されます。
type Descriptor struct {
	Kind    Kind
	Pattern *regexp.Regexp
}

var (
	lineSlash   = Descriptor{Kind: KindLine, Pattern: regexp.MustCompile(`//[^\n]*`)}
	lineHash    = Descriptor{Kind: KindLine, Pattern: regexp.MustCompile(`#[^\n]*`)}
	lineDash    = Descriptor{Kind: KindLine, Pattern: regexp.MustCompile(`--[^\n]*`)}
	lineSemi    = Descriptor{Kind: KindLine, Pattern: regexp.MustCompile(`;[^\n]*`)}
	linePercent = Descriptor{Kind: KindLine, Pattern: regexp.MustCompile(`%[^\n]*`)}

	blockCStyle     = Descriptor{Kind: KindBlock, Pattern: regexp.MustCompile(`(?s)/\*.*?\*/`)}
	blockHTML       = Descriptor{Kind: KindBlock, Pattern: regexp.MustCompile(`(?s)<!--.*?-->`)}
	blockHaskell    = Descriptor{Kind: KindBlock, Pattern: regexp.MustCompile(`(?s)\{-.*?-\}`)}
	blockPowershell = Descriptor{Kind: KindBlock, Pattern: regexp.MustCompile(`(?s)<#.*?#>`)}
	blockJinja      = Descriptor{Kind: KindBlock, Pattern: regexp.MustCompile(`(?s)\{#.*?#\}`)}
	blockHandlebars = Descriptor{Kind: KindBlock, Pattern: regexp.MustCompile(`(?s)\{\{!.*?\}\}`)}
	blockRuby       = Descriptor{Kind: KindBlock, Pattern: regexp.MustCompile(`(?ms)^=begin\b.*?^=end\b`)}
	blockLua        = Descriptor{Kind: KindBlock, Pattern: regexp.MustCompile(`(?s)--\[\[.*?\]\]`)}
	blockPyDouble   = Descriptor{Kind: KindBlock, Pattern: regexp.MustCompile(`(?s)""".*?"""`)}
	blockPySingle   = Descriptor{Kind: KindBlock, Pattern: regexp.MustCompile(`(?s)'''.*?'''`)}
	blockOCaml      = Descriptor{Kind: KindBlock, Pattern: regexp.MustCompile(`(?s)\(\*.*?\*\)`)}
)

var (
	descsC          = []Descriptor{lineSlash, blockCStyle}
	descsHash       = []Descriptor{lineHash}
	descsPython     = []Descriptor{lineHash, blockPyDouble, blockPySingle}
	descsRuby       = []Descriptor{lineHash, blockRuby}
	descsHTML       = []Descriptor{blockHTML}
	descsCSS        = []Descriptor{blockCStyle}
	descsSQL        = []Descriptor{lineDash, blockCStyle}
	descsLua        = []Descriptor{blockLua, lineDash}
	descsHaskell    = []Descriptor{lineDash, blockHaskell}
	descsOCaml      = []Descriptor{blockOCaml}
	descsLisp       = []Descriptor{lineSemi}
	descsIni        = []Descriptor{lineSemi, lineHash}
	descsErlang     = []Descriptor{linePercent}
	descsPowershell = []Descriptor{lineHash, blockPowershell}
	descsHCL        = []Descriptor{lineSlash, lineHash, blockCStyle}
	descsJinja      = []Descriptor{blockJinja}
	descsHandlebars = []Descriptor{blockHandlebars}
	descsPHP        = []Descriptor{lineSlash, lineHash, blockCStyle}
	descsVue        = []Descriptor{blockHTML, lineSlash, blockCStyle}
)

var descriptorTable = map[string][]Descriptor{
	"c":               descsC,
	"cpp":             descsC,
	"objective-c":     descsC,
	"go":              descsC,
	"java":            descsC,
	"csharp":          descsC,
	"kotlin":          descsC,
	"scala":           descsC,
	"swift":           descsC,
	"rust":            descsC,
	"dart":            descsC,
	"groovy":          descsC,
	"javascript":      descsC,
	"javascriptreact": descsC,
	"typescript":      descsC,
	"typescriptreact": descsC,
	"proto":           descsC,
	"zig":             {lineSlash},
	"php":             descsPHP,
	"python":          descsPython,
	"ruby":            descsRuby,
	"perl":            descsHash,
	"shell":           descsHash,
	"fish":            descsHash,
	"elixir":          descsHash,
	"r":               descsHash,
	"yaml":            descsHash,
	"toml":            descsHash,
	"make":            descsHash,
	"cmake":           descsHash,
	"dockerfile":      descsHash,
	"nim":             descsHash,
	"julia":           descsHash,
	"powershell":      descsPowershell,
	"erlang":          descsErlang,
	"latex":           descsErlang,
	"html":            descsHTML,
	"xml":             descsHTML,
	"vue":             descsVue,
	"svelte":          descsVue,
	"markdown":        descsHTML,
	"css":             descsCSS,
	"scss":            {lineSlash, blockCStyle},
	"less":            {lineSlash, blockCStyle},
	"sql":             descsSQL,
	"lua":             descsLua,
	"haskell":         descsHaskell,
	"elm":             descsHaskell,
	"ocaml":           descsOCaml,
	"pascal":          descsOCaml,
	"common-lisp":     descsLisp,
	"scheme":          descsLisp,
	"clojure":         descsLisp,
	"ini":             descsIni,
	"properties":      descsIni,
	"hcl":             descsHCL,
	"terraform":       descsHCL,
	"jinja":           descsJinja,
	"twig":            descsJinja,
	"django":          descsJinja,
	"handlebars":      descsHandlebars,
	"vb":              {{Kind: KindLine, Pattern: regexp.MustCompile(`'[^\n]*`)}},
}

// Lookup は言語 ID に対応するコメント記述子の列を返します。未対応の言語では
// 空のスライスを返します（エラーではなく「走査しない」ことを示します）。
func Lookup(languageID string) []Descriptor {
	return descriptorTable[Normalize(languageID)]
}

// Supported reports whether the language has comment descriptors.
func Supported(languageID string) bool {
	return len(Lookup(languageID)) > 0
}

// IDs returns every supported language identifier, sorted.
func IDs() []string {
	out := make([]string, 0, len(descriptorTable))
	for id := range descriptorTable {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
