package receipt

import (
	"strings"
	"unicode/utf8"
)

// Placeholder se imprime en lugar de un dato obligatorio ausente.
const Placeholder = "—"

// clean recorta espacios y descarta los centinelas que a veces envía el
// backend como texto ("null", "undefined", "N/A").
func clean(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "null", "undefined", "n/a", "nil":
		return ""
	}
	return s
}

func orPlaceholder(s string) string {
	if c := clean(s); c != "" {
		return c
	}
	return Placeholder
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// truncate corta s a n caracteres (runas, no bytes).
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if runeLen(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func padRight(s string, n int) string {
	if d := n - runeLen(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

func padLeft(s string, n int) string {
	if d := n - runeLen(s); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}

// WordWrap reparte text en líneas de hasta width caracteres.
//
// Las palabras se empacan de forma voraz; una palabra solo se corta cuando
// por sí sola supera width, y en ese caso se trunca a width (no se continúa
// en la línea siguiente). Un texto vacío produce un slice vacío.
func WordWrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return nil
	}
	lines := make([]string, 0, 2)
	current := ""
	for _, w := range words {
		wl := runeLen(w)
		if wl > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, truncate(w, width))
			continue
		}
		switch {
		case current == "":
			current = w
		case runeLen(current)+1+wl <= width:
			current += " " + w
		default:
			lines = append(lines, current)
			current = w
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
