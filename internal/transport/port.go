// Package transport carries Videotex bytes between the driver and a
// terminal: serial devices, SSH-bridged serial ports, pseudo-terminals and
// in-memory pipes.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
)

// ErrClosed is returned by operations on a closed Port
var ErrClosed = errors.New("port closed")

// ErrBaudUnsupported is returned by SetBaud on links without a baud rate
var ErrBaudUnsupported = errors.New("baud rate selection not supported")

// Port adapts a byte stream to the driver's transport contract: single
// byte writes and non-blocking single byte reads. A goroutine drains the
// underlying reader into a buffered channel.
type Port struct {
	name string
	rw   io.ReadWriteCloser

	in   chan byte
	done chan struct{}

	mu      sync.Mutex
	readErr error
	closed  bool

	setBaud func(rate int) error
}

// NewPort starts reading from rw immediately
func NewPort(name string, rw io.ReadWriteCloser) *Port {
	p := &Port{
		name: name,
		rw:   rw,
		in:   make(chan byte, 1024),
		done: make(chan struct{}),
	}
	go p.readLoop()
	return p
}

func (p *Port) readLoop() {
	defer close(p.in)

	buf := make([]byte, 256)
	for {
		n, err := p.rw.Read(buf)
		for _, b := range buf[:n] {
			select {
			case p.in <- b:
			case <-p.done:
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("%s: read error: %v", p.name, err)
			}
			p.mu.Lock()
			p.readErr = err
			p.mu.Unlock()
			return
		}
	}
}

// Name identifies the port in logs
func (p *Port) Name() string {
	return p.name
}

// WriteByte sends one byte
func (p *Port) WriteByte(c byte) error {
	if p.isClosed() {
		return ErrClosed
	}
	if _, err := p.rw.Write([]byte{c}); err != nil {
		return fmt.Errorf("%s: %w", p.name, err)
	}
	return nil
}

// Write sends a block of bytes, for callers that bypass the encoder
func (p *Port) Write(data []byte) (int, error) {
	if p.isClosed() {
		return 0, ErrClosed
	}
	return p.rw.Write(data)
}

// ReadAvailable returns the next received byte without blocking. Once the
// underlying reader has failed and all buffered bytes were consumed, the
// read error is returned.
func (p *Port) ReadAvailable() (byte, bool, error) {
	select {
	case b, ok := <-p.in:
		if !ok {
			return 0, false, p.err()
		}
		return b, true, nil
	default:
		return 0, false, nil
	}
}

// WaitByte blocks until a byte arrives, the reader fails, or ctx is done
func (p *Port) WaitByte(ctx context.Context) (byte, error) {
	select {
	case b, ok := <-p.in:
		if !ok {
			return 0, p.err()
		}
		return b, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (p *Port) err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.readErr != nil {
		return p.readErr
	}
	return ErrClosed
}

// SetBaud changes the line speed on ports that have one
func (p *Port) SetBaud(rate int) error {
	if p.setBaud == nil {
		return ErrBaudUnsupported
	}
	if err := p.setBaud(rate); err != nil {
		return fmt.Errorf("%s: set baud %d: %w", p.name, rate, err)
	}
	log.Printf("%s: baud rate set to %d", p.name, rate)
	return nil
}

func (p *Port) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Close stops the reader and closes the underlying stream
func (p *Port) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	close(p.done)
	return p.rw.Close()
}

// pipeEnd joins the read half of one pipe with the write half of another
type pipeEnd struct {
	r *io.PipeReader
	w *io.PipeWriter
}

func (e *pipeEnd) Read(p []byte) (int, error)  { return e.r.Read(p) }
func (e *pipeEnd) Write(p []byte) (int, error) { return e.w.Write(p) }

func (e *pipeEnd) Close() error {
	e.w.Close()
	return e.r.Close()
}

// Pipe returns two connected in-process ports; bytes written to one are
// read from the other
func Pipe() (*Port, *Port) {
	ar, bw := io.Pipe()
	br, aw := io.Pipe()
	a := NewPort("pipe-a", &pipeEnd{r: ar, w: aw})
	b := NewPort("pipe-b", &pipeEnd{r: br, w: bw})
	return a, b
}
