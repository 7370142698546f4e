package receipt

import "strings"

// PlainText convierte el texto etiquetado en texto plano de ancho fijo:
// quita las marcas de negrita y resuelve la alineación con espacios.
// Se usa para el cuerpo de correo y la vista previa en consola.
func PlainText(payload string, lineWidth int) string {
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}
	var b strings.Builder
	for _, l := range strings.Split(strings.TrimRight(payload, "\n"), "\n") {
		align, text := SplitTag(l)
		text = StripBold(text)
		switch align {
		case TagCenter:
			if pad := (lineWidth - runeLen(text)) / 2; pad > 0 {
				text = strings.Repeat(" ", pad) + text
			}
		case TagRight:
			text = padLeft(text, lineWidth)
		}
		b.WriteString(strings.TrimRight(text, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// SplitTag separa la etiqueta de alineación del resto de la línea.
// Sin etiqueta se asume [L].
func SplitTag(line string) (tag, text string) {
	for _, t := range [...]string{TagLeft, TagCenter, TagRight} {
		if strings.HasPrefix(line, t) {
			return t, line[len(t):]
		}
	}
	return TagLeft, line
}

// StripBold quita las marcas <b> y </b>.
func StripBold(s string) string {
	return strings.NewReplacer(BoldOpen, "", BoldClose, "").Replace(s)
}
