package live

import (
	"bufio"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfoliohub/pkg/logger"
)

func startTestServer(t *testing.T, hub *Hub) (*Server, string) {
	t.Helper()
	srv := NewServer("127.0.0.1:0", hub, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()
	t.Cleanup(func() {
		_ = srv.Close()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("accept loop did not stop")
		}
	})

	deadline := time.Now().Add(2 * time.Second)
	for {
		if addr := srv.ListenAddr(); addr != "" {
			return srv, addr
		}
		if time.Now().After(deadline) {
			t.Fatal("server never started listening")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestServer_FeedLifecycle(t *testing.T) {
	hub := NewHub()
	_, addr := startTestServer(t, hub)

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	sc := bufio.NewScanner(conn)

	require.True(t, sc.Scan())
	assert.Contains(t, sc.Text(), `"welcome"`)

	// registration happens before the welcome write, so broadcast now
	hub.BroadcastJSON(CatalogEvent{
		Type:      EventMediaAppend,
		ProjectID: "alpha",
		At:        time.Now().UTC(),
	})

	require.True(t, sc.Scan())
	assert.Contains(t, sc.Text(), `"media.append"`)
}

func TestServer_CloseBeforeRun(t *testing.T) {
	srv := NewServer("127.0.0.1:0", NewHub(), logger.Nop())
	assert.NoError(t, srv.Close())
}
