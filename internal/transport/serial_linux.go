//go:build linux

package transport

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Line speeds a Videotex terminal can be switched to
var baudRates = map[int]uint32{
	75:   unix.B75,
	300:  unix.B300,
	1200: unix.B1200,
	4800: unix.B4800,
	9600: unix.B9600,
}

// Framing selects how parity is carried on a serial link
type Framing string

const (
	// Framing7E1 lets the UART add and check parity
	Framing7E1 Framing = "7E1"
	// Framing8N1 leaves parity to the encoder and keyboard decoder
	Framing8N1 Framing = "8N1"
)

// OpenSerial opens a tty device in raw mode at the given speed and framing
func OpenSerial(device string, baud int, framing Framing) (*Port, error) {
	f, err := os.OpenFile(device, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", device, err)
	}

	fd := int(f.Fd())
	if _, err := term.MakeRaw(fd); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to set raw mode on %s: %w", device, err)
	}
	if err := configureSerial(fd, baud, framing); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to configure %s: %w", device, err)
	}

	log.Printf("Opened serial device %s at %d baud, %s", device, baud, framing)

	p := NewPort(device, f)
	p.setBaud = func(rate int) error {
		return configureSerial(fd, rate, framing)
	}
	return p, nil
}

func configureSerial(fd, baud int, framing Framing) error {
	speed, ok := baudRates[baud]
	if !ok {
		return fmt.Errorf("unsupported baud rate %d", baud)
	}

	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}

	t.Cflag &^= unix.CBAUD | unix.CSIZE | unix.PARENB | unix.PARODD | unix.CSTOPB
	t.Cflag |= speed | unix.CREAD | unix.CLOCAL
	if framing == Framing8N1 {
		t.Cflag |= unix.CS8
	} else {
		t.Cflag |= unix.CS7 | unix.PARENB
	}
	t.Ispeed = speed
	t.Ospeed = speed
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(fd, unix.TCSETS, t)
}
