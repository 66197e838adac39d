package stream_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lawnchairsociety/wfc/stream"
	"github.com/lawnchairsociety/wfc/tilesets/checkerboard"
)

func dialTestServer(t *testing.T, srv *stream.Server) (*websocket.Conn, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(srv.HandleWS))
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		ts.Close()
		t.Fatalf("dial failed: %v", err)
	}
	return conn, ts
}

func TestServer_RegistersAndUnregistersViewers(t *testing.T) {
	srv := stream.NewServer(nil)
	conn, ts := dialTestServer(t, srv)
	defer ts.Close()

	deadline := time.Now().Add(time.Second)
	for srv.ViewerCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if srv.ViewerCount() != 1 {
		t.Fatalf("expected 1 viewer, got %d", srv.ViewerCount())
	}

	conn.Close()

	deadline = time.Now().Add(time.Second)
	for srv.ViewerCount() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if srv.ViewerCount() != 0 {
		t.Fatalf("expected 0 viewers after close, got %d", srv.ViewerCount())
	}
}

func TestServer_BroadcastReachesViewer(t *testing.T) {
	srv := stream.NewServer(nil)
	conn, ts := dialTestServer(t, srv)
	defer ts.Close()
	defer conn.Close()

	deadline := time.Now().Add(time.Second)
	for srv.ViewerCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	board := checkerboard.New(2, 2, 1)
	snap := stream.BuildSnapshot(board, func(t checkerboard.Tile) string { return string(t) })
	if err := srv.Broadcast(snap); err != nil {
		t.Fatalf("broadcast failed: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("expected a message, got error: %v", err)
	}
	if !strings.Contains(string(msg), `"width":2`) {
		t.Errorf("expected snapshot JSON, got %s", msg)
	}
}

func TestStepAndBroadcast_DeliversUntilComplete(t *testing.T) {
	srv := stream.NewServer(nil)
	conn, ts := dialTestServer(t, srv)
	defer ts.Close()
	defer conn.Close()

	deadline := time.Now().Add(time.Second)
	for srv.ViewerCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	board := checkerboard.New(2, 2, 42)
	done := make(chan error, 1)
	go func() {
		done <- stream.StepAndBroadcast(srv, board, func(t checkerboard.Tile) string { return string(t) }, 0)
	}()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	sawComplete := false
	for i := 0; i < 64; i++ {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if strings.Contains(string(msg), `"status":"Complete"`) {
			sawComplete = true
			break
		}
	}
	if !sawComplete {
		t.Fatalf("never observed a Complete snapshot")
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("StepAndBroadcast returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("StepAndBroadcast did not return after completion")
	}
}
