package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/deploy"
	"github.com/MGTheTrain/rms/internal/pkg/logger"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

const defaultDialTimeout = 30 * time.Second

// SSHDialerOptions configures host key checking and connect timeout.
type SSHDialerOptions struct {
	// KnownHostsPath enables host key verification against an OpenSSH
	// known_hosts file. Host keys are not verified when empty.
	KnownHostsPath string
	DialTimeout    time.Duration
}

type sshDialer struct {
	options SSHDialerOptions
	logger  logger.Logger
}

// NewSSHDialer creates a Dialer opening SSH sessions with public key authentication
func NewSSHDialer(options SSHDialerOptions, logger logger.Logger) (deploy.Dialer, error) {
	if options.DialTimeout <= 0 {
		options.DialTimeout = defaultDialTimeout
	}
	return &sshDialer{options: options, logger: logger}, nil
}

// ClientConfig builds the ssh client configuration for target.
func (d *sshDialer) ClientConfig(target deploy.Target) (*ssh.ClientConfig, error) {
	signer, err := ssh.ParsePrivateKey(target.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ssh private key: %w", err)
	}

	hostKeyCallback, err := d.hostKeyCallback()
	if err != nil {
		return nil, err
	}

	return &ssh.ClientConfig{
		User:            target.Username,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: hostKeyCallback,
		Timeout:         d.options.DialTimeout,
	}, nil
}

func (d *sshDialer) hostKeyCallback() (ssh.HostKeyCallback, error) {
	if d.options.KnownHostsPath == "" {
		d.logger.Warn("SSH host key verification disabled: no known_hosts file configured")
		return ssh.InsecureIgnoreHostKey(), nil
	}

	callback, err := knownhosts.New(d.options.KnownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load known hosts from %s: %w", d.options.KnownHostsPath, err)
	}
	return callback, nil
}

func (d *sshDialer) Dial(ctx context.Context, target deploy.Target) (deploy.Executor, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	config, err := d.ClientConfig(target)
	if err != nil {
		return nil, err
	}

	address := target.Address()
	dialer := &net.Dialer{Timeout: d.options.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", address, err)
	}

	// the handshake is bounded by the dial timeout, the ctx deadline and ctx cancellation
	deadline := time.Now().Add(d.options.DialTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetDeadline(deadline); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to set handshake deadline: %w", err)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})

	clientConn, chans, reqs, err := ssh.NewClientConn(conn, address, config)
	if !stop() {
		if err == nil {
			_ = clientConn.Close()
		}
		return nil, fmt.Errorf("ssh handshake with %s aborted: %w", address, ctx.Err())
	}
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ssh handshake with %s failed: %w", address, err)
	}
	if err := conn.SetDeadline(time.Time{}); err != nil {
		_ = clientConn.Close()
		return nil, fmt.Errorf("failed to clear handshake deadline: %w", err)
	}

	d.logger.Info("Connected to ", address, " as ", target.Username)
	return &sshExecutor{
		client: ssh.NewClient(clientConn, chans, reqs),
		logger: d.logger.With("host", target.Host),
	}, nil
}

type sshExecutor struct {
	client *ssh.Client
	logger logger.Logger
}

// Run executes command in a new session and returns its combined output. A
// non-zero exit is reported as *deploy.ExitError.
func (e *sshExecutor) Run(ctx context.Context, command string) (string, error) {
	session, err := e.client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to open ssh session: %w", err)
	}
	defer session.Close()

	var output bytes.Buffer
	session.Stdout = &output
	session.Stderr = &output

	done := make(chan error, 1)
	go func() {
		done <- session.Run(command)
	}()

	select {
	case <-ctx.Done():
		_ = session.Signal(ssh.SIGTERM)
		_ = session.Close()
		<-done
		return output.String(), ctx.Err()
	case err := <-done:
		return output.String(), exitError(err)
	}
}

func (e *sshExecutor) Close() error {
	return e.client.Close()
}

func exitError(err error) error {
	if err == nil {
		return nil
	}

	var sshExit *ssh.ExitError
	if errors.As(err, &sshExit) {
		return &deploy.ExitError{Status: sshExit.ExitStatus()}
	}
	return fmt.Errorf("remote command failed: %w", err)
}
