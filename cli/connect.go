package main

import (
	"fmt"

	"minitel/internal/config"
	"minitel/internal/transport"
	"minitel/internal/videotex"
)

// connect opens the configured transport and wraps it in an encoder set
// to the configured colors
func connect(cfg *config.Config) (*transport.Port, *videotex.Encoder, error) {
	var (
		port *transport.Port
		err  error
	)
	switch cfg.Transport.Kind {
	case "ssh":
		port, err = transport.DialSSH(cfg.SSH())
	default:
		port, err = transport.OpenSerial(cfg.Transport.Device, cfg.Transport.Baud, transport.Framing(cfg.Transport.Framing))
	}
	if err != nil {
		return nil, nil, err
	}

	opts, err := cfg.EncoderOptions()
	if err != nil {
		port.Close()
		return nil, nil, err
	}
	enc := videotex.NewEncoder(port, opts...)

	text, background, err := cfg.Colors()
	if err != nil {
		port.Close()
		return nil, nil, err
	}
	if err := enc.SetTextColor(text); err != nil {
		port.Close()
		return nil, nil, fmt.Errorf("initial colors: %w", err)
	}
	if err := enc.SetBackgroundColor(background); err != nil {
		port.Close()
		return nil, nil, fmt.Errorf("initial colors: %w", err)
	}
	return port, enc, nil
}
