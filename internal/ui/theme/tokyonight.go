package theme

func init() {
	RegisterTheme("tokyonight", palette{
		primary:      pair("#2e7de9", "#82aaff"),
		accent:       pair("#9854f1", "#c099ff"),
		err:          pair("#f52a65", "#ff757f"),
		text:         pair("#3760bf", "#c8d3f5"),
		textMuted:    pair("#848cb5", "#636da6"),
		selection:    pair("#c8c9ce", "#2f334d"),
		borderNormal: pair("#a8aecb", "#3b4261"),
		borderFocd:   pair("#2e7de9", "#82aaff"),
	})
}
