// Package assets fetches the decorative Lottie animations used by the UI.
// Fetches are best-effort: any failure just marks the animation unavailable.
package assets

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/crimson-sun/mheda/internal/httpclient"
)

// DefaultAnimations names the animations the UI knows about.
var DefaultAnimations = map[string]string{
	"celebrate": "https://assets1.lottiefiles.com/packages/lf20_vyL7qy.json",
	"analytics": "https://assets9.lottiefiles.com/packages/lf20_2glqweqs.json",
}

// Fetcher retrieves named animations once and caches the outcome (success or
// failure) for the process lifetime. Each animation settles independently:
// a slow fetch of one name does not block the others.
type Fetcher struct {
	client *httpclient.Client
	urls   map[string]string
	states map[string]*fetchState
}

// fetchState is the per-animation cache slot. Its mutex covers the fetch, so
// concurrent requests for the same name share a single attempt.
type fetchState struct {
	mu      sync.Mutex
	settled bool
	data    json.RawMessage
	ok      bool
}

// NewFetcher creates a Fetcher over the given name→URL table.
func NewFetcher(client *httpclient.Client, urls map[string]string) *Fetcher {
	states := make(map[string]*fetchState, len(urls))
	for name := range urls {
		states[name] = &fetchState{}
	}
	return &Fetcher{client: client, urls: urls, states: states}
}

// Known reports whether name is a registered animation.
func (f *Fetcher) Known(name string) bool {
	_, ok := f.urls[name]
	return ok
}

// Get returns the animation JSON and true, or nil and false when the
// animation is unknown or unavailable. Network errors, non-2xx responses,
// and malformed payloads are all treated identically as "unavailable" —
// the animations are cosmetic only.
func (f *Fetcher) Get(ctx context.Context, name string) (json.RawMessage, bool) {
	url, ok := f.urls[name]
	if !ok {
		return nil, false
	}
	st := f.states[name]

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.settled {
		return st.data, st.ok
	}
	st.settled = true

	body, err := f.client.Get(ctx, url, nil)
	if err != nil {
		slog.Debug("animation unavailable", "name", name, "error", err)
		return nil, false
	}
	if !json.Valid(body) {
		slog.Debug("animation payload is not JSON", "name", name)
		return nil, false
	}

	st.data, st.ok = json.RawMessage(body), true
	return st.data, st.ok
}
