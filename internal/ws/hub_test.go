package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, hub *ActivityHub, organizationID string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r, organizationID)
	}))
	t.Cleanup(server.Close)

	return server
}

func dial(t *testing.T, server *httptest.Server, origin string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http")

	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}

	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestServeSendsConnectedEvent(t *testing.T) {
	hub := NewActivityHub(nil, zap.NewNop())
	server := newTestServer(t, hub, "1")

	conn := dial(t, server, "")

	var event ActivityEvent
	require.NoError(t, conn.ReadJSON(&event))

	assert.Equal(t, "connected", event.Type)
	assert.Equal(t, "1", event.OrganizationID)
}

func TestBroadcastReachesOrganizationClientsOnly(t *testing.T) {
	hub := NewActivityHub(nil, zap.NewNop())

	firstServer := newTestServer(t, hub, "1")
	secondServer := newTestServer(t, hub, "2")

	first := dial(t, firstServer, "")
	second := dial(t, secondServer, "")

	var event ActivityEvent
	require.NoError(t, first.ReadJSON(&event))
	require.NoError(t, second.ReadJSON(&event))

	hub.Broadcast("1", "startup", "created")

	require.NoError(t, first.ReadJSON(&event))
	assert.Equal(t, "refresh", event.Type)
	assert.Equal(t, "startup", event.Entity)
	assert.Equal(t, "created", event.Action)
	assert.Equal(t, "1", event.OrganizationID)
}

func TestBroadcastWithoutClientsIsNoop(t *testing.T) {
	hub := NewActivityHub(nil, zap.NewNop())

	assert.NotPanics(t, func() {
		hub.Broadcast("99", "claim", "deleted")
	})
}

func TestServeRejectsDisallowedOrigin(t *testing.T) {
	hub := NewActivityHub([]string{"http://localhost:3000"}, zap.NewNop())
	server := newTestServer(t, hub, "1")

	url := "ws" + strings.TrimPrefix(server.URL, "http")

	header := http.Header{}
	header.Set("Origin", "http://evil.example.com")

	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	if resp != nil {
		defer resp.Body.Close()
	}

	assert.Error(t, err)
}
