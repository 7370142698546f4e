package printer_test

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-cobros/internal/application/receipts"
	"github.com/jhoicas/isp-cobros/internal/infrastructure/printer"
	"github.com/jhoicas/isp-cobros/pkg/logger"
)

func TestNetworkPrinter_EnviaBytesESCPOS(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			received <- nil
			return
		}
		defer conn.Close()
		b, _ := io.ReadAll(conn)
		received <- b
	}()

	p := printer.NewNetworkPrinter(2*time.Second, logger.Nop())
	job := receipts.PrintJob{Addr: ln.Addr().String(), Payload: "[C]<b>RECIBO</b>\n[L]Total 10.00\n", CharactersPerLine: 32}
	require.NoError(t, p.Print(context.Background(), job))

	select {
	case b := <-received:
		assert.Equal(t, printer.Encode(job.Payload, 32), b)
	case <-time.After(3 * time.Second):
		t.Fatal("la impresora de prueba no recibió datos")
	}
}

func TestNetworkPrinter_ErrorSiNoHayImpresora(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	p := printer.NewNetworkPrinter(500*time.Millisecond, nil)
	err = p.Print(context.Background(), receipts.PrintJob{Addr: addr, Payload: "[L]x\n", CharactersPerLine: 32})
	assert.Error(t, err)
}

func TestNetworkPrinter_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := printer.NewNetworkPrinter(time.Second, nil)
	err := p.Print(ctx, receipts.PrintJob{Addr: "127.0.0.1:9", Payload: "[L]x\n"})
	assert.Error(t, err)
}
