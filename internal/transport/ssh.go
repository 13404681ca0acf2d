package transport

import (
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// SSHConfig describes a host that has the terminal on one of its serial
// ports. Command bridges the remote serial device to the session's stdio.
type SSHConfig struct {
	Host    string
	Port    int
	Timeout time.Duration

	Username      string
	Password      string
	KeyPath       string
	KeyPassphrase string

	KnownHostsPath    string
	InsecureIgnoreKey bool // skips host key verification

	Command string
}

// DefaultSSHConfig returns a config with sensible defaults
func DefaultSSHConfig() SSHConfig {
	homeDir, _ := os.UserHomeDir()
	return SSHConfig{
		Port:           22,
		Timeout:        30 * time.Second,
		KeyPath:        filepath.Join(homeDir, ".ssh", "id_rsa"),
		KnownHostsPath: filepath.Join(homeDir, ".ssh", "known_hosts"),
		Command:        "socat - /dev/ttyUSB0,raw,echo=0,b1200,cs7,parenb=1,parodd=0",
	}
}

// sshStream is a running remote command seen as a byte stream
type sshStream struct {
	client  *ssh.Client
	session *ssh.Session
	stdin   io.WriteCloser
	stdout  io.Reader
}

func (s *sshStream) Read(p []byte) (int, error)  { return s.stdout.Read(p) }
func (s *sshStream) Write(p []byte) (int, error) { return s.stdin.Write(p) }

func (s *sshStream) Close() error {
	s.stdin.Close()
	s.session.Close()
	return s.client.Close()
}

// DialSSH connects to cfg.Host and starts cfg.Command
func DialSSH(cfg SSHConfig) (*Port, error) {
	if cfg.Port == 0 {
		cfg.Port = 22
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Command == "" {
		return nil, fmt.Errorf("ssh: no bridge command configured")
	}

	auth, err := sshAuthMethods(cfg)
	if err != nil {
		return nil, err
	}
	hostKeyCallback, err := sshHostKeyCallback(cfg)
	if err != nil {
		return nil, err
	}

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	client, err := ssh.Dial("tcp", addr, &ssh.ClientConfig{
		User:            cfg.Username,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	session, err := client.NewSession()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		client.Close()
		return nil, fmt.Errorf("failed to get stdin: %w", err)
	}
	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		client.Close()
		return nil, fmt.Errorf("failed to get stdout: %w", err)
	}

	if err := session.Start(cfg.Command); err != nil {
		session.Close()
		client.Close()
		return nil, fmt.Errorf("failed to start %q: %w", cfg.Command, err)
	}

	log.Printf("SSH bridge to %s running %q", addr, cfg.Command)

	stream := &sshStream{client: client, session: session, stdin: stdin, stdout: stdout}
	return NewPort("ssh://"+addr, stream), nil
}

func sshAuthMethods(cfg SSHConfig) ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod

	if cfg.KeyPath != "" {
		signer, err := loadPrivateKey(cfg.KeyPath, cfg.KeyPassphrase)
		if err != nil {
			if cfg.Password == "" {
				return nil, err
			}
			log.Printf("Skipping key %s: %v", cfg.KeyPath, err)
		} else {
			methods = append(methods, ssh.PublicKeys(signer))
		}
	}
	if cfg.Password != "" {
		methods = append(methods, ssh.Password(cfg.Password))
	}

	if len(methods) == 0 {
		return nil, fmt.Errorf("ssh: no authentication method configured")
	}
	return methods, nil
}

func loadPrivateKey(path, passphrase string) (ssh.Signer, error) {
	path = expandHome(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", path, err)
	}
	if passphrase != "" {
		return ssh.ParsePrivateKeyWithPassphrase(data, []byte(passphrase))
	}
	return ssh.ParsePrivateKey(data)
}

func sshHostKeyCallback(cfg SSHConfig) (ssh.HostKeyCallback, error) {
	if cfg.InsecureIgnoreKey {
		log.Printf("WARNING: host key verification disabled for %s", cfg.Host)
		return ssh.InsecureIgnoreHostKey(), nil
	}
	callback, err := knownhosts.New(expandHome(cfg.KnownHostsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load known hosts: %w", err)
	}
	return callback, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
