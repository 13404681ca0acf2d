package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/google/uuid"

	"minitel/internal/config"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: minitel [flags] <command>

Commands:
  demo      draw text, shapes and mosaics on the terminal
  keys      decode and echo keyboard input until interrupted
  emulate   run a virtual Minitel on a pseudo-terminal

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to config.yaml")
	device := flag.String("device", "", "serial device, overrides the config file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *device != "" {
		cfg.Transport.Kind = "serial"
		cfg.Transport.Device = *device
	}
	if *verbose {
		cfg.Logging.Verbose = true
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := flag.Arg(0)
	if command == "" {
		command = "demo"
	}
	log.Printf("Starting minitel %s on %s", command, runtime.GOOS)

	switch command {
	case "demo":
		err = runDemo(cfg)
	case "keys":
		err = runKeys(ctx, cfg)
	case "emulate":
		err = runEmulator(ctx, cfg)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", command, err)
	}
}

// setupLogging tags every line with a per-run session id and redirects
// the log to a file when configured
func setupLogging(cfg *config.Config) (func(), error) {
	sessionID := uuid.New().String()
	log.SetPrefix(fmt.Sprintf("[%s] ", sessionID[:8]))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	path := cfg.LogPath()
	if path == "" {
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.Printf("Session %s", sessionID)
	return func() { f.Close() }, nil
}
