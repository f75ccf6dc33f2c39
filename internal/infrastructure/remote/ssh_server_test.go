//go:build unit
// +build unit

package remote

import (
	"crypto/ed25519"
	"crypto/rand"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MGTheTrain/rms/internal/domain/deploy"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

// Commands understood by testSSHServer
const (
	commandEcho  = "echo hello"
	commandFail  = "exit 3"
	commandBlock = "sleep infinity"
)

// testSSHServer is an in-process SSH server answering exec requests with
// canned output and exit statuses.
type testSSHServer struct {
	listener  net.Listener
	hostKey   ssh.Signer
	signalled atomic.Bool
	wg        sync.WaitGroup
}

func startTestSSHServer(t *testing.T) *testSSHServer {
	t.Helper()

	_, private, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	hostKey, err := ssh.NewSignerFromKey(private)
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := &testSSHServer{listener: listener, hostKey: hostKey}

	config := &ssh.ServerConfig{
		PublicKeyCallback: func(ssh.ConnMetadata, ssh.PublicKey) (*ssh.Permissions, error) {
			return nil, nil
		},
	}
	config.AddHostKey(hostKey)

	server.wg.Add(1)
	go func() {
		defer server.wg.Done()
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			server.wg.Add(1)
			go func() {
				defer server.wg.Done()
				server.serve(conn, config)
			}()
		}
	}()

	t.Cleanup(func() {
		_ = listener.Close()
		server.wg.Wait()
	})
	return server
}

func (s *testSSHServer) target(t *testing.T) deploy.Target {
	t.Helper()

	host, port, err := net.SplitHostPort(s.listener.Addr().String())
	require.NoError(t, err)
	portNumber, err := strconv.Atoi(port)
	require.NoError(t, err)

	return deploy.Target{Host: host, Port: portNumber, Username: "deploy", PrivateKey: generateKey(t)}
}

func (s *testSSHServer) serve(conn net.Conn, config *ssh.ServerConfig) {
	serverConn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		_ = conn.Close()
		return
	}
	defer serverConn.Close()
	go ssh.DiscardRequests(reqs)

	for newChannel := range chans {
		if newChannel.ChannelType() != "session" {
			_ = newChannel.Reject(ssh.UnknownChannelType, "session only")
			continue
		}
		channel, requests, err := newChannel.Accept()
		if err != nil {
			continue
		}
		go s.session(channel, requests)
	}
}

func (s *testSSHServer) session(channel ssh.Channel, requests <-chan *ssh.Request) {
	defer channel.Close()

	for req := range requests {
		switch req.Type {
		case "exec":
			var payload struct{ Command string }
			if err := ssh.Unmarshal(req.Payload, &payload); err != nil {
				_ = req.Reply(false, nil)
				continue
			}
			_ = req.Reply(true, nil)

			switch payload.Command {
			case commandEcho:
				_, _ = channel.Write([]byte("hello\n"))
				sendExitStatus(channel, 0)
				return
			case commandFail:
				_, _ = channel.Stderr().Write([]byte("boom"))
				sendExitStatus(channel, 3)
				return
			case commandBlock:
				// runs until the client signals or closes the channel
			default:
				sendExitStatus(channel, 127)
				return
			}
		case "signal":
			s.signalled.Store(true)
			if req.WantReply {
				_ = req.Reply(true, nil)
			}
		default:
			if req.WantReply {
				_ = req.Reply(false, nil)
			}
		}
	}
}

func sendExitStatus(channel ssh.Channel, status uint32) {
	_, _ = channel.SendRequest("exit-status", false, ssh.Marshal(struct{ Status uint32 }{status}))
}

// startSilentListener accepts TCP connections and never speaks SSH.
func startSilentListener(t *testing.T) deploy.Target {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()

	t.Cleanup(func() {
		_ = listener.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, conn := range conns {
			_ = conn.Close()
		}
	})

	addr := listener.Addr().(*net.TCPAddr)
	return deploy.Target{Host: "127.0.0.1", Port: addr.Port, Username: "deploy", PrivateKey: generateKey(t)}
}
