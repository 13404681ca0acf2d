//go:build windows

package transport

import "fmt"

// OpenPTY is not available on Windows
func OpenPTY() (*Port, string, error) {
	return nil, "", fmt.Errorf("pty not supported on windows")
}
