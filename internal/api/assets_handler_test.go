package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/mheda/internal/assets"
	"github.com/crimson-sun/mheda/internal/history"
	"github.com/crimson-sun/mheda/internal/httpclient"
)

func newAssetsServer(t *testing.T, payload string, status int) *httptest.Server {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, payload)
	}))
	t.Cleanup(upstream.Close)

	fetcher := assets.NewFetcher(httpclient.New(""), map[string]string{
		"celebrate": upstream.URL + "/celebrate.json",
	})
	srv := httptest.NewServer(NewRouter(&stubAnalyzer{}, history.NewLog(), fetcher))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetAsset_Success(t *testing.T) {
	srv := newAssetsServer(t, `{"v":"5.5.7","layers":[]}`, http.StatusOK)

	resp, err := http.Get(srv.URL + "/api/assets/celebrate")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":"5.5.7","layers":[]}`, string(body))
}

func TestGetAsset_Unknown(t *testing.T) {
	srv := newAssetsServer(t, `{}`, http.StatusOK)

	resp, err := http.Get(srv.URL + "/api/assets/confetti")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetAsset_UpstreamDown(t *testing.T) {
	srv := newAssetsServer(t, "gone", http.StatusNotFound)

	resp, err := http.Get(srv.URL + "/api/assets/celebrate")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestGetAsset_Disabled(t *testing.T) {
	srv := httptest.NewServer(NewRouter(&stubAnalyzer{}, history.NewLog(), nil))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/api/assets/celebrate")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
