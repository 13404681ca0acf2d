package transport

import "errors"

// ErrInjected is the failure Memory reports once its write budget is spent
var ErrInjected = errors.New("injected transport failure")

// Memory is an in-memory transport for tests. Written bytes are recorded,
// input bytes are queued with Feed, and writes can be made to fail.
type Memory struct {
	Written []byte

	input []byte

	failing   bool
	failAfter int

	// ReadErr is returned by ReadAvailable once input is exhausted
	ReadErr error
}

func NewMemory() *Memory {
	return &Memory{}
}

// FailAfter makes every write after the next n fail with ErrInjected
func (m *Memory) FailAfter(n int) {
	m.failing = true
	m.failAfter = n
}

// Heal stops injecting write failures
func (m *Memory) Heal() {
	m.failing = false
}

func (m *Memory) WriteByte(c byte) error {
	if m.failing {
		if m.failAfter <= 0 {
			return ErrInjected
		}
		m.failAfter--
	}
	m.Written = append(m.Written, c)
	return nil
}

// Feed queues bytes for ReadAvailable
func (m *Memory) Feed(bs ...byte) {
	m.input = append(m.input, bs...)
}

func (m *Memory) ReadAvailable() (byte, bool, error) {
	if len(m.input) == 0 {
		return 0, false, m.ReadErr
	}
	b := m.input[0]
	m.input = m.input[1:]
	return b, true, nil
}

// Take returns the bytes written so far and forgets them
func (m *Memory) Take() []byte {
	out := m.Written
	m.Written = nil
	return out
}
