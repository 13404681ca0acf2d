//go:build !linux

package transport

import (
	"fmt"
	"runtime"
)

// Framing selects how parity is carried on a serial link
type Framing string

const (
	Framing7E1 Framing = "7E1"
	Framing8N1 Framing = "8N1"
)

// OpenSerial is only implemented on linux
func OpenSerial(device string, baud int, framing Framing) (*Port, error) {
	return nil, fmt.Errorf("serial devices not supported on %s", runtime.GOOS)
}
