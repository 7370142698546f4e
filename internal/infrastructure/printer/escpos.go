// Package printer envía recibos a impresoras térmicas ESC/POS por red.
package printer

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/isp-cobros/internal/domain/receipt"
)

// Comandos ESC/POS.
const (
	esc = 0x1b
	gs  = 0x1d
	lf  = 0x0a
)

var (
	cmdInit       = []byte{esc, '@'}
	cmdBoldOn     = []byte{esc, 'E', 1}
	cmdBoldOff    = []byte{esc, 'E', 0}
	cmdFeed3      = []byte{esc, 'd', 3}
	cmdCutPartial = []byte{gs, 'V', 66, 0}
)

func cmdAlign(tag string) []byte {
	var n byte
	switch tag {
	case receipt.TagCenter:
		n = 1
	case receipt.TagRight:
		n = 2
	}
	return []byte{esc, 'a', n}
}

// Encode traduce el texto etiquetado a bytes ESC/POS: cada [L]/[C]/[R] fija la
// alineación de su línea y <b>…</b> activa la negrita. El contenido de cada
// línea se corta a charsPerLine; los caracteres fuera de ASCII salen como '?'.
// Termina con avance de papel y corte parcial.
func Encode(payload string, charsPerLine int) []byte {
	var b bytes.Buffer
	b.Write(cmdInit)

	lines := strings.Split(strings.TrimRight(payload, "\n"), "\n")
	for _, l := range lines {
		tag, text := receipt.SplitTag(l)
		b.Write(cmdAlign(tag))
		writeStyled(&b, text, charsPerLine)
		b.WriteByte(lf)
	}

	b.Write(cmdAlign(receipt.TagLeft))
	b.Write(cmdFeed3)
	b.Write(cmdCutPartial)
	return b.Bytes()
}

// writeStyled escribe el texto alternando negrita según las marcas <b>.
// La negrita se apaga siempre al final de la línea.
func writeStyled(b *bytes.Buffer, text string, limit int) {
	written := 0
	bold := false
	for len(text) > 0 {
		switch {
		case strings.HasPrefix(text, receipt.BoldOpen):
			b.Write(cmdBoldOn)
			bold = true
			text = text[len(receipt.BoldOpen):]
			continue
		case strings.HasPrefix(text, receipt.BoldClose):
			b.Write(cmdBoldOff)
			bold = false
			text = text[len(receipt.BoldClose):]
			continue
		}
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		if limit > 0 && written >= limit {
			continue
		}
		if r < utf8.RuneSelf && (r >= 0x20 || r == '\t') {
			b.WriteByte(byte(r))
		} else {
			b.WriteByte('?')
		}
		written++
	}
	if bold {
		b.Write(cmdBoldOff)
	}
}
