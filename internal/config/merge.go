package config

// Merge はレイヤを順に重ねて確定値を作ります。後のレイヤほど優先です
// （典型的には ファイル → 環境変数 → フラグ の順で渡します）。
func Merge(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.Enabled = ResolveBool(out.Enabled, layer.Enabled)
		out.Keywords = ResolveMap(out.Keywords, layer.Keywords)
		out.CustomKeywords = ResolveMap(out.CustomKeywords, layer.CustomKeywords)
		out.RegexPatterns = ResolveMap(out.RegexPatterns, layer.RegexPatterns)
		out.CaseSensitive = ResolveBool(out.CaseSensitive, layer.CaseSensitive)
		out.HighlightStyle = ResolveAndTrim(out.HighlightStyle, layer.HighlightStyle)
		out.FontWeight = ResolveAndTrim(out.FontWeight, layer.FontWeight)
		out.ShowIcons = ResolveBool(out.ShowIcons, layer.ShowIcons)
		out.EnableRegexKeywords = ResolveBool(out.EnableRegexKeywords, layer.EnableRegexKeywords)
		out.MinKeywordLength = ResolveInt(out.MinKeywordLength, layer.MinKeywordLength)
		out.MaxKeywords = ResolveInt(out.MaxKeywords, layer.MaxKeywords)
		out.ExcludeFromEnd = ResolveInt(out.ExcludeFromEnd, layer.ExcludeFromEnd)
		out.DebounceMS = ResolveInt(out.DebounceMS, layer.DebounceMS)
		out.Jobs = ResolveInt(out.Jobs, layer.Jobs)
		out.MaxFileBytes = ResolveInt(out.MaxFileBytes, layer.MaxFileBytes)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Output = ResolveAndTrim(out.Output, layer.Output)
	}
	if out.HighlightStyle == "" {
		out.HighlightStyle = "text"
	}
	if out.Color == "" {
		out.Color = "auto"
	}
	if out.Output == "" {
		out.Output = "highlight"
	}
	return out
}
