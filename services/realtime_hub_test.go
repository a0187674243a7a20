package services_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumanth1803/DietPlan/services"
)

func TestRealtimeHub_Broadcast(t *testing.T) {
	hub := services.NewRealtimeHub()
	upgrader := websocket.Upgrader{}

	register := make(chan *services.WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		cl := &services.WSClient{UserID: 42, Conn: conn}
		hub.Register(cl)
		register <- cl
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	<-register

	hub.Broadcast(42, map[string]string{"event": "summary"})

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := client.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"summary"}`, string(msg))
}

func TestRealtimeHub_ConcurrentBroadcast(t *testing.T) {
	hub := services.NewRealtimeHub()
	upgrader := websocket.Upgrader{}

	register := make(chan *services.WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		cl := &services.WSClient{UserID: 42, Conn: conn}
		hub.Register(cl)
		register <- cl
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	cl := <-register

	// meal create/delete pushes run in their own goroutines, so
	// overlapping broadcasts (and keepalive pings) hit one connection
	// at the same time; the per-client write lock must serialize them
	const writers = 64
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			hub.Broadcast(42, map[string]string{"event": "summary"})
			_ = cl.Send(websocket.PingMessage, nil)
		}()
	}

	_ = client.SetReadDeadline(time.Now().Add(5 * time.Second))
	for i := 0; i < writers; i++ {
		_, msg, err := client.ReadMessage()
		require.NoError(t, err)
		assert.JSONEq(t, `{"event":"summary"}`, string(msg))
	}
	wg.Wait()
}

func TestRealtimeHub_BroadcastUnmarshalablePayload(t *testing.T) {
	hub := services.NewRealtimeHub()
	upgrader := websocket.Upgrader{}

	register := make(chan *services.WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		cl := &services.WSClient{UserID: 42, Conn: conn}
		hub.Register(cl)
		register <- cl
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	<-register

	// channels have no JSON encoding; nothing must reach the socket
	hub.Broadcast(42, make(chan int))

	_ = client.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err = client.ReadMessage()
	assert.Error(t, err)
}

func TestRealtimeHub_BroadcastToOtherUser(t *testing.T) {
	hub := services.NewRealtimeHub()
	upgrader := websocket.Upgrader{}

	register := make(chan *services.WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		cl := &services.WSClient{UserID: 42, Conn: conn}
		hub.Register(cl)
		register <- cl
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	<-register

	// a different user's update must not reach this connection
	hub.Broadcast(99, map[string]string{"event": "summary"})

	_ = client.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err = client.ReadMessage()
	assert.Error(t, err)
}
