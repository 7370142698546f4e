// Package cli herramienta de línea de comandos para formatear e imprimir
// recibos desde archivos JSON o YAML, sin pasar por la API.
package cli

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "recibo",
		Short:         "Formatea e imprime recibos de pago para impresoras térmicas",
		Long:          "recibo lee los datos de un pago (JSON o YAML), arma el ticket de 32, 42 o 48 columnas y lo muestra o lo envía a una impresora ESC/POS de red.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newPrintCmd())
	return cmd
}

// NewRootCmdForTest devuelve el comando raíz para tests.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute ejecuta el comando raíz.
func Execute() error {
	return newRootCmd().Execute()
}
