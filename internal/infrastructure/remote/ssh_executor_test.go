//go:build unit
// +build unit

package remote

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/deploy"
	"github.com/MGTheTrain/rms/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

func generateKey(t *testing.T) []byte {
	t.Helper()

	_, private, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	block, err := ssh.MarshalPrivateKey(private, "")
	require.NoError(t, err)
	return pem.EncodeToMemory(block)
}

func newTestDialer(t *testing.T, options SSHDialerOptions) *sshDialer {
	t.Helper()

	dialer, err := NewSSHDialer(options, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return dialer.(*sshDialer)
}

func TestClientConfig(t *testing.T) {
	dialer := newTestDialer(t, SSHDialerOptions{})
	assert.Equal(t, defaultDialTimeout, dialer.options.DialTimeout)

	config, err := dialer.ClientConfig(deploy.Target{
		Host:       "example.com",
		Port:       22,
		Username:   "deploy",
		PrivateKey: generateKey(t),
	})
	require.NoError(t, err)
	assert.Equal(t, "deploy", config.User)
	assert.Len(t, config.Auth, 1)
	assert.NotNil(t, config.HostKeyCallback)
}

func TestClientConfig_InvalidKey(t *testing.T) {
	dialer := newTestDialer(t, SSHDialerOptions{})

	_, err := dialer.ClientConfig(deploy.Target{Username: "deploy", PrivateKey: []byte("garbage")})
	assert.Error(t, err)
}

func TestClientConfig_KnownHosts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "known_hosts")
	require.NoError(t, os.WriteFile(path, []byte{}, 0600))

	dialer := newTestDialer(t, SSHDialerOptions{KnownHostsPath: path})
	_, err := dialer.ClientConfig(deploy.Target{Username: "deploy", PrivateKey: generateKey(t)})
	require.NoError(t, err)

	missing := newTestDialer(t, SSHDialerOptions{KnownHostsPath: filepath.Join(t.TempDir(), "nope")})
	_, err = missing.ClientConfig(deploy.Target{Username: "deploy", PrivateKey: generateKey(t)})
	assert.Error(t, err)
}

func TestDial_IncompleteTarget(t *testing.T) {
	dialer := newTestDialer(t, SSHDialerOptions{})

	_, err := dialer.Dial(context.Background(), deploy.Target{Host: "example.com", Port: 22})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username, private key")
}

func TestExitError(t *testing.T) {
	assert.NoError(t, exitError(nil))

	err := exitError(errors.New("connection lost"))
	var exitErr *deploy.ExitError
	assert.False(t, errors.As(err, &exitErr))
	assert.Contains(t, err.Error(), "connection lost")
}

func dialWithin(t *testing.T, limit time.Duration, dial func() (deploy.Executor, error)) error {
	t.Helper()

	done := make(chan error, 1)
	go func() {
		executor, err := dial()
		if executor != nil {
			_ = executor.Close()
		}
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(limit):
		t.Fatalf("Dial still blocked after %s", limit)
		return nil
	}
}

func TestDial_HandshakeHonoursDialTimeout(t *testing.T) {
	target := startSilentListener(t)
	dialer := newTestDialer(t, SSHDialerOptions{DialTimeout: 200 * time.Millisecond})

	err := dialWithin(t, 5*time.Second, func() (deploy.Executor, error) {
		return dialer.Dial(context.Background(), target)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ssh handshake")
}

func TestDial_HandshakeHonoursContextDeadline(t *testing.T) {
	target := startSilentListener(t)
	dialer := newTestDialer(t, SSHDialerOptions{DialTimeout: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := dialWithin(t, 5*time.Second, func() (deploy.Executor, error) {
		return dialer.Dial(ctx, target)
	})
	require.Error(t, err)
}

func TestDial_HandshakeHonoursCancel(t *testing.T) {
	target := startSilentListener(t)
	dialer := newTestDialer(t, SSHDialerOptions{DialTimeout: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(200*time.Millisecond, cancel)

	err := dialWithin(t, 5*time.Second, func() (deploy.Executor, error) {
		return dialer.Dial(ctx, target)
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDial_KnownHostsMismatch(t *testing.T) {
	server := startTestSSHServer(t)
	target := server.target(t)

	_, otherKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	otherSigner, err := ssh.NewSignerFromKey(otherKey)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "known_hosts")
	line := knownhosts.Line([]string{target.Address()}, otherSigner.PublicKey())
	require.NoError(t, os.WriteFile(path, []byte(line+"\n"), 0600))

	dialer := newTestDialer(t, SSHDialerOptions{KnownHostsPath: path, DialTimeout: 5 * time.Second})
	_, err = dialer.Dial(context.Background(), target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ssh handshake")
}

func TestSSHExecutor_Run(t *testing.T) {
	server := startTestSSHServer(t)
	target := server.target(t)

	path := filepath.Join(t.TempDir(), "known_hosts")
	line := knownhosts.Line([]string{target.Address()}, server.hostKey.PublicKey())
	require.NoError(t, os.WriteFile(path, []byte(line+"\n"), 0600))

	dialer := newTestDialer(t, SSHDialerOptions{KnownHostsPath: path, DialTimeout: 5 * time.Second})
	executor, err := dialer.Dial(context.Background(), target)
	require.NoError(t, err)
	defer executor.Close()

	output, err := executor.Run(context.Background(), commandEcho)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", output)

	output, err = executor.Run(context.Background(), commandFail)
	require.Error(t, err)
	assert.Equal(t, "boom", output)
	var exitErr *deploy.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Status)
}

func TestSSHExecutor_RunCancelled(t *testing.T) {
	server := startTestSSHServer(t)

	dialer := newTestDialer(t, SSHDialerOptions{DialTimeout: 5 * time.Second})
	executor, err := dialer.Dial(context.Background(), server.target(t))
	require.NoError(t, err)
	defer executor.Close()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(200*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() {
		_, err := executor.Run(ctx, commandBlock)
		done <- err
	}()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Eventually(t, server.signalled.Load, time.Second, 10*time.Millisecond)
}
