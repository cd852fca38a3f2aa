package watch

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishAndSubscribe(t *testing.T) {
	b := newBroker()
	ch := b.subscribe()
	defer b.unsubscribe(ch)

	b.publish(`digraph { "a.ts" -> "b.ts"; }`)

	select {
	case got := <-ch:
		assert.Equal(t, `digraph { "a.ts" -> "b.ts"; }`, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestBroker_NewSubscriberReceivesLatest(t *testing.T) {
	b := newBroker()
	b.publish("flowchart LR")

	ch := b.subscribe()
	defer b.unsubscribe(ch)

	select {
	case got := <-ch:
		assert.Equal(t, "flowchart LR", got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for latest graph")
	}
}

func TestBroker_SlowSubscriberGetsNewest(t *testing.T) {
	b := newBroker()
	ch := b.subscribe()
	defer b.unsubscribe(ch)

	b.publish("first")
	b.publish("second")

	select {
	case got := <-ch:
		assert.Equal(t, "second", got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestHandleLatest_NotBuiltYet(t *testing.T) {
	w := httptest.NewRecorder()

	handleLatest(newBroker())(w, httptest.NewRequest("GET", routeLatest, nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleLatest_ServesOutput(t *testing.T) {
	b := newBroker()
	b.publish("digraph dependencies {}")
	w := httptest.NewRecorder()

	handleLatest(b)(w, httptest.NewRequest("GET", routeLatest, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "digraph dependencies {}", w.Body.String())
}

func TestHandleSSE_MultiLineData(t *testing.T) {
	b := newBroker()
	b.publish("digraph {\n  \"a.ts\" -> \"b.ts\";\n}")

	server := httptest.NewServer(handleSSE(b))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	buf := make([]byte, 4096)
	n, _ := resp.Body.Read(buf)
	body := string(buf[:n])

	assert.Contains(t, body, "event: graph")
	assert.Contains(t, body, "data: digraph {")
	assert.Contains(t, body, `data:   "a.ts" -> "b.ts";`)
	assert.Contains(t, body, "data: }")
}

func TestNewServer_Routes(t *testing.T) {
	b := newBroker()
	b.publish("ok")
	srv := newServer(b, 4900)

	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest("GET", routeLatest, nil))

	assert.Equal(t, ":4900", srv.Addr)
	assert.Equal(t, "ok", w.Body.String())
}
