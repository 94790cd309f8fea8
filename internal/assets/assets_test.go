package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/crimson-sun/mheda/internal/httpclient"
)

func TestGet_SuccessAndCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"v":"5.5.7","layers":[]}`))
	}))
	defer srv.Close()

	f := NewFetcher(httpclient.New(""), map[string]string{"celebrate": srv.URL + "/anim.json"})

	data, ok := f.Get(context.Background(), "celebrate")
	if !ok {
		t.Fatal("expected animation to be available")
	}
	if string(data) != `{"v":"5.5.7","layers":[]}` {
		t.Fatalf("unexpected payload: %s", data)
	}

	// Second Get serves from cache.
	if _, ok := f.Get(context.Background(), "celebrate"); !ok {
		t.Fatal("expected cached animation")
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 fetch, got %d", calls.Load())
	}
}

func TestGet_UnknownName(t *testing.T) {
	f := NewFetcher(httpclient.New(""), map[string]string{})
	if _, ok := f.Get(context.Background(), "nope"); ok {
		t.Fatal("expected unknown animation to be unavailable")
	}
	if f.Known("nope") {
		t.Error("Known(nope) = true, want false")
	}
}

// Network failures and bad payloads are swallowed: the animation is simply
// unavailable, and the failure is not retried.
func TestGet_FailureSwallowedAndSticky(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(httpclient.New(""), map[string]string{"analytics": srv.URL + "/anim.json"})

	if _, ok := f.Get(context.Background(), "analytics"); ok {
		t.Fatal("expected animation to be unavailable")
	}
	if _, ok := f.Get(context.Background(), "analytics"); ok {
		t.Fatal("expected unavailability to be cached")
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 fetch attempt, got %d", calls.Load())
	}
}

// One slow upstream must not block fetches for other animations.
func TestGet_SlowFetchDoesNotBlockOthers(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow.json" {
			close(started)
			<-release
		}
		w.Write([]byte(`{"layers":[]}`))
	}))
	defer srv.Close()
	defer close(release)

	f := NewFetcher(httpclient.New(""), map[string]string{
		"slow": srv.URL + "/slow.json",
		"fast": srv.URL + "/fast.json",
	})

	go f.Get(context.Background(), "slow")
	<-started

	done := make(chan bool, 1)
	go func() {
		_, ok := f.Get(context.Background(), "fast")
		done <- ok
	}()

	select {
	case ok := <-done:
		if !ok {
			t.Fatal("expected fast animation to be available")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("fast animation blocked behind slow fetch")
	}
}

func TestGet_NonJSONPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	f := NewFetcher(httpclient.New(""), map[string]string{"celebrate": srv.URL})
	if _, ok := f.Get(context.Background(), "celebrate"); ok {
		t.Fatal("expected non-JSON payload to be treated as unavailable")
	}
}
