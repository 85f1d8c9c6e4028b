//go:build tinygo && baremetal

package hal

import "machine"

// boardHAL is the HAL of a microcontroller board: a UART log, one panel and
// an optional pointer.
type boardHAL struct {
	log *uartLogger
	fb  Framebuffer
	ptr Pointer
}

func (h *boardHAL) Logger() Logger   { return h.log }
func (h *boardHAL) Display() Display { return h }
func (h *boardHAL) Input() Input     { return h }

func (h *boardHAL) Framebuffer() Framebuffer { return h.fb }

func (h *boardHAL) Pointer() Pointer {
	if h.ptr == nil {
		return nullPointer{}
	}
	return h.ptr
}

// uartLogger writes CRLF-terminated lines to UART0 (GP0 TX, GP1 RX,
// 115200 8N1).
type uartLogger struct {
	uart *machine.UART
}

func newUARTLogger() *uartLogger {
	u := machine.UART0
	u.Configure(machine.UARTConfig{BaudRate: 115200, TX: machine.GP0, RX: machine.GP1})
	return &uartLogger{uart: u}
}

func (l *uartLogger) WriteLineString(s string) {
	_, _ = l.uart.Write([]byte(s))
	_, _ = l.uart.Write([]byte("\r\n"))
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	_, _ = l.uart.Write(b)
	_, _ = l.uart.Write([]byte("\r\n"))
}
