//go:build tinygo && !baremetal

package hal

// New returns the HAL for TinyGo on an operating system (linux, wasm): a
// 320x240 memory framebuffer, no pointer, and log lines on the console.
func New() HAL {
	return simHAL{fb: NewMemFramebuffer(320, 240)}
}

type simHAL struct {
	fb *MemFramebuffer
}

func (h simHAL) Logger() Logger   { return printLogger{} }
func (h simHAL) Display() Display { return h }
func (h simHAL) Input() Input     { return h }

func (h simHAL) Framebuffer() Framebuffer { return h.fb }
func (h simHAL) Pointer() Pointer         { return nullPointer{} }

type printLogger struct{}

func (printLogger) WriteLineString(s string) { println(s) }
func (printLogger) WriteLineBytes(b []byte)  { println(string(b)) }
