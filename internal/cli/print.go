package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/isp-cobros/internal/application/receipts"
	"github.com/jhoicas/isp-cobros/internal/infrastructure/printer"
	"github.com/jhoicas/isp-cobros/pkg/logger"
)

func newPrintCmd() *cobra.Command {
	var (
		flags   receiptFlags
		addr    string
		timeout time.Duration
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Envía el ticket a una impresora ESC/POS de red",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := flags.payload(time.Now)
			if err != nil {
				return err
			}

			log := logger.Nop()
			if verbose {
				log = logger.New(logger.Config{Env: "development", Level: "debug"})
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			p := printer.NewNetworkPrinter(timeout, log)
			job := receipts.PrintJob{Addr: addr, Payload: payload, CharactersPerLine: flags.width}
			if err := p.Print(ctx, job); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recibo enviado a %s\n", addr)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&addr, "printer", "p", "", "Impresora host[:puerto] (puerto por defecto "+printer.DefaultPort+")")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Tiempo máximo de conexión y envío")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Mostrar logs de depuración")
	_ = cmd.MarkFlagRequired("printer")

	return cmd
}
