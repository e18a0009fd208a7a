package theme

// Dracula palette, https://draculatheme.com/contribute
const (
	draculaBackground  = "#282a36"
	draculaCurrentLine = "#44475a"
	draculaForeground  = "#f8f8f2"
	draculaComment     = "#6272a4"
	draculaCyan        = "#8be9fd"
	draculaPink        = "#ff79c6"
	draculaPurple      = "#bd93f9"
	draculaRed         = "#ff5555"
)

func init() {
	RegisterTheme("dracula", palette{
		primary:      pair("#7e57c2", draculaPurple),
		accent:       pair("#c2185b", draculaPink),
		err:          pair("#d32f2f", draculaRed),
		text:         pair("#212121", draculaForeground),
		textMuted:    pair("#757575", draculaComment),
		selection:    pair("#e0e0e0", draculaCurrentLine),
		borderNormal: pair("#bdbdbd", draculaComment),
		borderFocd:   pair("#0097a7", draculaCyan),
	})
}
