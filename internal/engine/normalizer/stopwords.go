package normalizer

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/crimson-sun/mheda/internal/httpclient"
)

// Set is a stop-word set.
type Set map[string]struct{}

// Contains reports whether token is a stop word. A nil Set contains nothing.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// NewSet builds a Set from a list of words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Stopwords lazily loads the stop-word set, once per process. The local file
// is tried first; on a miss the list is fetched from the remote URL and
// written back to the local path for subsequent runs. The result (set or
// error) is cached — a genuine failure is not retried, but a caller-side
// context cancellation is: the caller went away, the list is still there.
type Stopwords struct {
	path   string
	url    string
	client *httpclient.Client

	mu   sync.Mutex
	done bool
	set  Set
	err  error
}

// NewStopwords creates a Stopwords loader. client is used only when the
// local file at path does not exist.
func NewStopwords(path, url string, client *httpclient.Client) *Stopwords {
	return &Stopwords{path: path, url: url, client: client}
}

// Load returns the stop-word set, loading it on first call.
func (s *Stopwords) Load(ctx context.Context) (Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return s.set, s.err
	}

	set, err := s.load(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// The caller's context expired mid-fetch. Leave the loader unsettled
		// so the next caller attempts the fetch again.
		return nil, err
	}

	s.set, s.err, s.done = set, err, true
	return s.set, s.err
}

func (s *Stopwords) load(ctx context.Context) (Set, error) {
	set, err := readWordFile(s.path)
	if err == nil {
		return set, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stopwords: %w", err)
	}
	if s.client == nil {
		return nil, fmt.Errorf("stopwords: list missing at %s and no fetch client configured", s.path)
	}

	slog.Info("stop-word list not found locally, fetching", "path", s.path, "url", s.url)
	body, err := s.client.Get(ctx, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("stopwords: fetch: %w", err)
	}

	set = parseWords(bytes.NewReader(body))
	if len(set) == 0 {
		return nil, fmt.Errorf("stopwords: fetched list from %s is empty", s.url)
	}

	// Cache for the next run. Failure to write is not fatal — the fetched
	// set is already usable in this process.
	if err := os.WriteFile(s.path, body, 0o644); err != nil {
		slog.Warn("failed to cache stop-word list", "path", s.path, "error", err)
	}

	return set, nil
}

// readWordFile loads a one-word-per-line file into a Set.
func readWordFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set := parseWords(f)
	if len(set) == 0 {
		return nil, fmt.Errorf("file is empty: %s", path)
	}
	return set, nil
}

func parseWords(r io.Reader) Set {
	set := make(Set, 256)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		set[strings.ToLower(word)] = struct{}{}
	}
	return set
}
