package theme

// Nord palette, https://www.nordtheme.com/docs/colors-and-palettes
const (
	nord0  = "#2E3440"
	nord1  = "#3B4252"
	nord2  = "#434C5E"
	nord3  = "#4C566A"
	nord5  = "#E5E9F0"
	nord6  = "#ECEFF4"
	nord8  = "#88C0D0"
	nord9  = "#81A1C1"
	nord10 = "#5E81AC"
	nord11 = "#BF616A"
	nord15 = "#B48EAD"
)

func init() {
	RegisterTheme("nord", palette{
		primary:      pair(nord10, nord8),
		accent:       pair(nord15, nord15),
		err:          pair(nord11, nord11),
		text:         pair(nord0, nord6),
		textMuted:    pair(nord3, "#8B95A7"),
		selection:    pair(nord5, nord1),
		borderNormal: pair(nord3, nord2),
		borderFocd:   pair(nord10, nord9),
	})
}
