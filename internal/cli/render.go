package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/isp-cobros/internal/application/receipts"
	"github.com/jhoicas/isp-cobros/internal/domain/receipt"
)

// receiptFlags opciones comunes a render y print.
type receiptFlags struct {
	file   string
	width  int
	locale string
}

func (f *receiptFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Archivo del recibo (.json, .yaml)")
	cmd.Flags().IntVarP(&f.width, "width", "w", receipt.DefaultLineWidth, "Caracteres por línea (32, 42, 48)")
	cmd.Flags().StringVar(&f.locale, "locale", "", "Formato de moneda (es-DO, es-CO, en-US); por defecto el del ISP")
	_ = cmd.MarkFlagRequired("file")
}

// payload carga el archivo y devuelve el ticket etiquetado.
func (f *receiptFlags) payload(now receipt.Clock) (string, error) {
	if f.width < receipts.MinWidth || f.width > receipts.MaxWidth {
		return "", fmt.Errorf("--width fuera de rango (%d-%d): %d", receipts.MinWidth, receipts.MaxWidth, f.width)
	}
	data, err := loadReceiptFile(f.file)
	if err != nil {
		return "", err
	}
	tag := f.locale
	if tag == "" {
		tag = data.ISP.Locale
	}
	formatter := receipt.NewFormatter(
		receipt.WithLocale(receipt.LocaleFor(tag)),
		receipt.WithClock(now),
	)
	return formatter.Format(data, f.width), nil
}

func newRenderCmd() *cobra.Command {
	var (
		flags receiptFlags
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Muestra el ticket formateado",
		Long:  "Imprime en la salida estándar el texto etiquetado ([L]/[C]/[R], <b>) que recibe la impresora, o con --plain una vista previa sin etiquetas.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := flags.payload(time.Now)
			if err != nil {
				return err
			}
			if plain {
				out = receipt.PlainText(out, flags.width)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "Vista previa sin etiquetas de alineación ni negrita")

	return cmd
}
