package decor

import "github.com/codetint/codetint/internal/model"

// backgroundAlpha is the fixed two-digit alpha suffix (~20% opacity) appended
// to the color for renderers that accept 8-digit hex.
const backgroundAlpha = "33"

// Plan はキーワード 1 件分の設定値からレンダリング指示を導出します。
// 純粋関数であり、同じ入力には常に同じ VisualRule を返します。
func Plan(color string, style model.HighlightStyle, fontWeight string, showIcons bool, keyword string) model.VisualRule {
	rule := model.VisualRule{
		Foreground: color,
		FontWeight: fontWeight,
	}
	switch style {
	case model.StyleBackground:
		rule.Background = color + backgroundAlpha
	case model.StyleBorder:
		rule.Border = color
	case model.StyleUnderline:
		rule.Underline = color
	}
	if showIcons {
		rule.Icon = IconFor(keyword)
	}
	return rule
}

// ParseStyle は highlight_style 設定値を解釈します。未知の値は text 扱いです。
func ParseStyle(s string) model.HighlightStyle {
	switch model.HighlightStyle(s) {
	case model.StyleBackground, model.StyleBorder, model.StyleUnderline:
		return model.HighlightStyle(s)
	default:
		return model.StyleText
	}
}
