package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookandfeel/pkg/lnftypes"
)

// dialPair returns the server side of a websocket connection registered with m and the client
// side that receives what m writes.
func dialPair(t *testing.T, m *ConnectionManager) (*websocket.Conn, *websocket.Conn) {
	t.Helper()
	serverSide := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		m.Add(conn)
		serverSide <- conn
	}))
	t.Cleanup(ts.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	select {
	case conn := <-serverSide:
		t.Cleanup(func() { _ = conn.Close() })
		return conn, client
	case <-time.After(5 * time.Second):
		t.Fatal("connection not registered")
		return nil, nil
	}
}

func recordWithGeneration(gen string) Record {
	return ToRecord(lnftypes.NewTableBuilder().SetGeneration(gen).Build())
}

func TestConnectionManager_SkipsOlderTables(t *testing.T) {
	m := NewConnectionManager()
	conn, client := dialPair(t, m)
	assert.Equal(t, 1, m.Len())

	assert.Equal(t, 1, m.Broadcast(2, recordWithGeneration("second")))

	wrote, err := m.Send(conn, 1, recordWithGeneration("first"))
	require.NoError(t, err)
	assert.False(t, wrote, "a table older than the one delivered must not be written")

	wrote, err = m.Send(conn, 2, recordWithGeneration("second"))
	require.NoError(t, err)
	assert.False(t, wrote)

	assert.Equal(t, 1, m.Broadcast(3, recordWithGeneration("third")))

	var got []string
	for range 2 {
		var rec Record
		require.NoError(t, client.SetReadDeadline(time.Now().Add(5*time.Second)))
		require.NoError(t, client.ReadJSON(&rec))
		got = append(got, rec.Generation)
	}
	assert.Equal(t, []string{"second", "third"}, got)
}

func TestConnectionManager_SendRequiresSubscription(t *testing.T) {
	m := NewConnectionManager()
	conn, _ := dialPair(t, m)
	m.Remove(conn)

	_, err := m.Send(conn, 1, recordWithGeneration("x"))
	assert.ErrorIs(t, err, errNotSubscribed)
	assert.Equal(t, 0, m.Len())
}

func TestConnectionManager_DropsFailedSubscribers(t *testing.T) {
	m := NewConnectionManager()
	conn, _ := dialPair(t, m)
	_ = conn.Close()

	assert.Equal(t, 0, m.Broadcast(1, recordWithGeneration("x")))
	assert.Equal(t, 0, m.Len())
}
