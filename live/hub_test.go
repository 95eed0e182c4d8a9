package live

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mayamateul/cart"
	"mayamateul/kv"
	"mayamateul/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

func newTestServer(t *testing.T) (*Hub, *cart.Store, *httptest.Server) {
	t.Helper()
	store := cart.NewStore(kv.NewMemory())
	hub := NewHub()
	go hub.Run()
	hub.Watch(store)

	router := httprouter.New()
	router.GET("/ws/cart", hub.ServeWS(store))
	srv := httptest.NewServer(router)

	t.Cleanup(func() {
		srv.Close()
		hub.Stop()
	})
	return hub, store, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/cart"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) cartEvent {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	var evt cartEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		t.Fatal(err)
	}
	return evt
}

func TestInitialFrameCarriesCurrentCart(t *testing.T) {
	_, store, srv := newTestServer(t)
	store.Add(models.CartLine{ID: 1, Name: "Ramyeon", Price: 199})

	conn := dial(t, srv)
	evt := readEvent(t, conn)

	if evt.Type != "cart" {
		t.Fatalf("type = %q, want cart", evt.Type)
	}
	if evt.Count != 1 || evt.TotalPrice != 199 {
		t.Fatalf("initial frame = %+v", evt)
	}
}

func TestMutationsBecomeBroadcastFrames(t *testing.T) {
	_, store, srv := newTestServer(t)
	conn := dial(t, srv)
	readEvent(t, conn) // initial empty snapshot

	store.Add(models.CartLine{ID: 1, Name: "Ramyeon", Price: 199})
	evt := readEvent(t, conn)
	if evt.Type != "cart" || evt.Count != 1 || evt.TotalPrice != 199 {
		t.Fatalf("add frame = %+v", evt)
	}
	if len(evt.Items) != 1 || evt.Items[0].Name != "Ramyeon" {
		t.Fatalf("add frame items = %+v", evt.Items)
	}

	store.Add(models.CartLine{ID: 2, Name: "Tteokbokki", Price: 249})
	evt = readEvent(t, conn)
	if evt.Count != 2 || evt.TotalPrice != 448 {
		t.Fatalf("second add frame = %+v", evt)
	}

	store.Clear()
	evt = readEvent(t, conn)
	if evt.Count != 0 || len(evt.Items) != 0 {
		t.Fatalf("clear frame = %+v", evt)
	}
}

func TestOpenToggleFrames(t *testing.T) {
	_, store, srv := newTestServer(t)
	conn := dial(t, srv)
	readEvent(t, conn) // initial snapshot

	store.Open()
	evt := readEvent(t, conn)
	if evt.Type != "cartState" || !evt.Open {
		t.Fatalf("open frame = %+v", evt)
	}

	store.Close()
	evt = readEvent(t, conn)
	if evt.Type != "cartState" || evt.Open {
		t.Fatalf("close frame = %+v", evt)
	}
}

func TestConnectAfterStopDoesNotHang(t *testing.T) {
	hub, store, srv := newTestServer(t)
	hub.Stop()
	time.Sleep(50 * time.Millisecond) // let Run drain

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/cart"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		// the upgrade itself may fail once the hub is gone; also fine
		return
	}
	defer conn.Close()

	// the server must close the connection instead of leaking a
	// goroutine blocked on registration
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	// mutations after stop must not block the publisher either
	done := make(chan struct{})
	go func() {
		store.Add(models.CartLine{ID: 1, Name: "Ramyeon", Price: 199})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cart mutation blocked after hub stop")
	}
}
