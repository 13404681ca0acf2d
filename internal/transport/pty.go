//go:build !windows

package transport

import (
	"fmt"
	"log"
	"os"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// ptyPair keeps the slave end open so reads on the master do not fail
// before a driver attaches
type ptyPair struct {
	master *os.File
	slave  *os.File
}

func (t *ptyPair) Read(p []byte) (int, error)  { return t.master.Read(p) }
func (t *ptyPair) Write(p []byte) (int, error) { return t.master.Write(p) }

func (t *ptyPair) Close() error {
	var errs []error
	if err := t.master.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := t.slave.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple close errors: %v", errs)
	}
	return nil
}

// OpenPTY opens a pseudo-terminal for a virtual terminal. The returned
// port is the terminal's end; a driver connects to the returned device
// path with OpenSerial.
func OpenPTY() (*Port, string, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open pty: %w", err)
	}

	if _, err := term.MakeRaw(int(slave.Fd())); err != nil {
		master.Close()
		slave.Close()
		return nil, "", fmt.Errorf("failed to set raw mode on %s: %w", slave.Name(), err)
	}
	pty.Setsize(slave, &pty.Winsize{Rows: 24, Cols: 40})

	log.Printf("Opened pty, driver side is %s", slave.Name())

	return NewPort("pty", &ptyPair{master: master, slave: slave}), slave.Name(), nil
}
