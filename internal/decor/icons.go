package decor

import "strings"

// fallbackIcon is used for keywords without a dedicated glyph.
const fallbackIcon = "●"

var iconTable = map[string]string{
	"todo":     "📝",
	"fixme":    "🔧",
	"note":     "📌",
	"hack":     "⚡",
	"xxx":      "⚠️",
	"bug":      "🐛",
	"optimize": "🚀",
	"review":   "👀",
}

// IconFor はキーワードに対応するグリフを返します（大文字小文字は無視）。
func IconFor(keyword string) string {
	if icon, ok := iconTable[strings.ToLower(strings.TrimSpace(keyword))]; ok {
		return icon
	}
	return fallbackIcon
}
