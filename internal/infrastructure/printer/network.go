package printer

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/jhoicas/isp-cobros/internal/application/receipts"
	"github.com/jhoicas/isp-cobros/pkg/logger"
)

// DefaultPort puerto RAW de las impresoras de red (JetDirect).
const DefaultPort = "9100"

var _ receipts.ReceiptPrinter = (*NetworkPrinter)(nil)

// NetworkPrinter envía el ticket por TCP a una impresora ESC/POS.
// Abre una conexión por trabajo; es seguro para uso concurrente.
type NetworkPrinter struct {
	timeout time.Duration
	log     *logger.Logger
}

// NewNetworkPrinter construye el adaptador. timeout aplica al dial y a la escritura.
func NewNetworkPrinter(timeout time.Duration, log *logger.Logger) *NetworkPrinter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &NetworkPrinter{timeout: timeout, log: log}
}

// Print codifica el trabajo y lo escribe en la impresora.
func (p *NetworkPrinter) Print(ctx context.Context, job receipts.PrintJob) error {
	addr := withDefaultPort(job.Addr)
	data := Encode(job.Payload, job.CharactersPerLine)

	dialer := net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("conectar con impresora %s: %w", addr, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(p.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("impresora %s: %w", addr, err)
	}
	n, err := conn.Write(data)
	if err != nil {
		return fmt.Errorf("escribir en impresora %s: %w", addr, err)
	}
	p.log.Debug().Str("printer", addr).Int("bytes", n).Msg("trabajo enviado a impresora")
	return nil
}

func withDefaultPort(addr string) string {
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}
	return net.JoinHostPort(addr, DefaultPort)
}
