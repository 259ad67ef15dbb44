package lang

import (
	"bytes"
	"path/filepath"
	"strings"
)

var aliases = map[string]string{
	"c++":  "cpp",
	"cc":   "cpp",
	"h":    "c",
	"c#":   "csharp",
	"cs":   "csharp",
	"js":   "javascript",
	"mjs":  "javascript",
	"cjs":  "javascript",
	"jsx":  "javascriptreact",
	"ts":   "typescript",
	"tsx":  "typescriptreact",
	"kt":   "kotlin",
	"py":   "python",
	"rb":   "ruby",
	"rs":   "rust",
	"sh":   "shell",
	"bash": "shell",
	"zsh":  "shell",
	"ps1":  "powershell",
	"yml":  "yaml",
	"tf":   "terraform",
	"md":   "markdown",
	"tex":  "latex",
	"lisp": "common-lisp",
	"ml":   "ocaml",
	"hs":   "haskell",
	"ex":   "elixir",
}

// Normalize は言語 ID を小文字化し、既知の別名を正規名に解決します。
func Normalize(id string) string {
	n := strings.ToLower(strings.TrimSpace(id))
	if n == "" {
		return ""
	}
	if canon, ok := aliases[n]; ok {
		return canon
	}
	return n
}

var extensionIDs = map[string]string{
	".c":        "c",
	".h":        "c",
	".cc":       "cpp",
	".cpp":      "cpp",
	".cxx":      "cpp",
	".hh":       "cpp",
	".hpp":      "cpp",
	".m":        "objective-c",
	".go":       "go",
	".java":     "java",
	".cs":       "csharp",
	".kt":       "kotlin",
	".kts":      "kotlin",
	".scala":    "scala",
	".swift":    "swift",
	".rs":       "rust",
	".dart":     "dart",
	".groovy":   "groovy",
	".zig":      "zig",
	".js":       "javascript",
	".mjs":      "javascript",
	".cjs":      "javascript",
	".jsx":      "javascriptreact",
	".ts":       "typescript",
	".tsx":      "typescriptreact",
	".proto":    "proto",
	".php":      "php",
	".py":       "python",
	".pyw":      "python",
	".rb":       "ruby",
	".rake":     "ruby",
	".pl":       "perl",
	".pm":       "perl",
	".sh":       "shell",
	".bash":     "shell",
	".zsh":      "shell",
	".fish":     "fish",
	".ex":       "elixir",
	".exs":      "elixir",
	".erl":      "erlang",
	".hrl":      "erlang",
	".r":        "r",
	".jl":       "julia",
	".nim":      "nim",
	".ps1":      "powershell",
	".psm1":     "powershell",
	".yaml":     "yaml",
	".yml":      "yaml",
	".toml":     "toml",
	".ini":      "ini",
	".cfg":      "ini",
	".conf":     "ini",
	".mk":       "make",
	".make":     "make",
	".html":     "html",
	".htm":      "html",
	".xml":      "xml",
	".svg":      "xml",
	".vue":      "vue",
	".svelte":   "svelte",
	".md":       "markdown",
	".markdown": "markdown",
	".css":      "css",
	".scss":     "scss",
	".less":     "less",
	".sql":      "sql",
	".lua":      "lua",
	".hs":       "haskell",
	".elm":      "elm",
	".ml":       "ocaml",
	".mli":      "ocaml",
	".pas":      "pascal",
	".lisp":     "common-lisp",
	".cl":       "common-lisp",
	".scm":      "scheme",
	".clj":      "clojure",
	".cljs":     "clojure",
	".hcl":      "hcl",
	".tf":       "terraform",
	".tex":      "latex",
	".jinja":    "jinja",
	".jinja2":   "jinja",
	".twig":     "twig",
	".hbs":      "handlebars",
	".vb":       "vb",
}

var basenameIDs = map[string]string{
	"makefile":       "make",
	"gnumakefile":    "make",
	"cmakelists.txt": "cmake",
	"dockerfile":     "dockerfile",
	"gemfile":        "ruby",
	"rakefile":       "ruby",
	"vagrantfile":    "ruby",
	"justfile":       "make",
}

// Longer interpreter names come first so "fish" and "pwsh" win over "sh".
var shebangIDs = []struct {
	key string
	id  string
}{
	{"python", "python"},
	{"elixir", "elixir"},
	{"node", "javascript"},
	{"deno", "javascript"},
	{"ruby", "ruby"},
	{"perl", "perl"},
	{"bash", "shell"},
	{"fish", "fish"},
	{"pwsh", "powershell"},
	{"zsh", "shell"},
	{"lua", "lua"},
	{"php", "php"},
	{"sh", "shell"},
}

// DetectPath は拡張子とファイル名から言語 ID を推定します。不明なら空文字列。
func DetectPath(path string) string {
	base := strings.ToLower(filepath.Base(path))
	if id, ok := basenameIDs[base]; ok {
		return id
	}
	ext := filepath.Ext(base)
	if ext == "" {
		return ""
	}
	return extensionIDs[ext]
}

// DetectShebang は先頭行の #! から言語 ID を推定します。
func DetectShebang(data []byte) string {
	if !bytes.HasPrefix(data, []byte("#!")) {
		return ""
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	line := strings.ToLower(string(data[:end]))
	for _, entry := range shebangIDs {
		if strings.Contains(line, entry.key) {
			return entry.id
		}
	}
	return ""
}

// Detect combines path and shebang detection, path first.
func Detect(path string, data []byte) string {
	if id := DetectPath(path); id != "" {
		return id
	}
	return DetectShebang(data)
}
