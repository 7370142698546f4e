package printer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/isp-cobros/internal/infrastructure/printer"
)

func TestEncode_InicioYCorte(t *testing.T) {
	out := printer.Encode("[L]hola\n", 32)

	assert.True(t, bytes.HasPrefix(out, []byte{0x1b, '@'}))
	assert.True(t, bytes.HasSuffix(out, []byte{0x1d, 'V', 66, 0}))
	assert.Contains(t, string(out), "hola\n")
}

func TestEncode_Alineacion(t *testing.T) {
	out := printer.Encode("[L]a\n[C]b\n[R]c\n", 32)

	assert.Contains(t, string(out), "\x1ba\x00a\n")
	assert.Contains(t, string(out), "\x1ba\x01b\n")
	assert.Contains(t, string(out), "\x1ba\x02c\n")
}

func TestEncode_Negrita(t *testing.T) {
	out := printer.Encode("[C]<b>RECIBO</b> No. 1\n", 32)

	assert.Contains(t, string(out), "\x1bE\x01RECIBO\x1bE\x00 No. 1\n")
	assert.NotContains(t, string(out), "<b>")
}

func TestEncode_NegritaSinCerrarSeApagaAlFinal(t *testing.T) {
	out := printer.Encode("[L]<b>abierta\n", 32)

	assert.Contains(t, string(out), "\x1bE\x01abierta\x1bE\x00\n")
}

func TestEncode_RecortaAlAnchoYReemplazaNoASCII(t *testing.T) {
	out := printer.Encode("[L]abcdefghij\n[L]año\n", 5)

	assert.Contains(t, string(out), "abcde\n")
	assert.NotContains(t, string(out), "abcdef")
	assert.Contains(t, string(out), "a?o\n")
}
