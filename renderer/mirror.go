package renderer

// Mirror pairs for glyphs that have a flipped counterpart, others are drawn unchanged
var horizontalMirror = pairs(
	"()", "[]", "{}", "<>", "/\\", "bd", "pq", "«»", "‹›",
	"┌┐", "└┘", "├┤", "╔╗", "╚╝", "╠╣", "▌▐", "◄►", "←→",
)

var verticalMirror = pairs(
	"bp", "dq", "^v", "MW", "mw", "un", "▀▄", "▲▼", "↑↓",
	"┌└", "┐┘", "┬┴", "╔╚", "╗╝", "╦╩", "∩∪",
)

func pairs(list ...string) map[rune]rune {
	m := make(map[rune]rune, len(list)*2)
	for _, p := range list {
		r := []rune(p)
		m[r[0]] = r[1]
		m[r[1]] = r[0]
	}
	return m
}

func mirror(ch rune, table map[rune]rune) rune {
	if m, ok := table[ch]; ok {
		return m
	}
	return ch
}
