package receipt

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Algunas impresoras térmicas corrompen el carácter que sigue a "¡",
// por eso se elimina en lugar de reemplazarse.
var punctuation = strings.NewReplacer(
	"—", "-",
	"–", "-",
	"\u00a0", " ",
	"\u202f", " ",
	"¡", "",
	"¿", "?",
	"“", `"`,
	"”", `"`,
	"„", `"`,
	"«", `"`,
	"»", `"`,
	"‘", "'",
	"’", "'",
)

// Sanitize deja el texto imprimible en hardware sin juego de caracteres
// extendido: descompone (NFD), quita las marcas diacríticas y normaliza
// guiones, espacios duros, signos de apertura y comillas tipográficas.
func Sanitize(s string) string {
	s = punctuation.Replace(s)
	// El Transformer de la cadena guarda estado; se crea uno por llamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
