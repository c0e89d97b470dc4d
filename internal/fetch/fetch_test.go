package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries(t *testing.T) {
	t.Helper()
	old := RetryBaseDelay
	RetryBaseDelay = time.Millisecond
	t.Cleanup(func() { RetryBaseDelay = old })
}

func TestDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "graybook-test", r.Header.Get("User-Agent"))
		io.WriteString(w, "<html>gray book</html>")
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "graybook.html")
	var out strings.Builder
	err := Document(context.Background(), srv.Client(), srv.URL, dest,
		Options{UserAgent: "graybook-test"}, &out)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "<html>gray book</html>", string(data))
	assert.Contains(t, out.String(), "saved: "+dest)
}

func TestDocument_SkipsExisting(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "graybook.html")
	require.NoError(t, os.WriteFile(dest, []byte("cached"), 0o644))

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	var out strings.Builder
	err := Document(context.Background(), srv.Client(), srv.URL, dest, Options{}, &out)
	require.NoError(t, err)
	assert.Zero(t, calls.Load())
	assert.Contains(t, out.String(), "already exists")

	data, _ := os.ReadFile(dest)
	assert.Equal(t, "cached", string(data))
}

func TestDocument_ForceRedownloads(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "graybook.html")
	require.NoError(t, os.WriteFile(dest, []byte("stale"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "fresh")
	}))
	defer srv.Close()

	err := Document(context.Background(), srv.Client(), srv.URL, dest,
		Options{Force: true}, io.Discard)
	require.NoError(t, err)

	data, _ := os.ReadFile(dest)
	assert.Equal(t, "fresh", string(data))
}

func TestDocument_RetriesOn429(t *testing.T) {
	fastRetries(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		io.WriteString(w, "eventually")
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "graybook.html")
	err := Document(context.Background(), srv.Client(), srv.URL, dest, Options{}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())

	data, _ := os.ReadFile(dest)
	assert.Equal(t, "eventually", string(data))
}

func TestDocument_ExhaustedRetriesSurfaceStatus(t *testing.T) {
	fastRetries(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "graybook.html")
	err := Document(context.Background(), srv.Client(), srv.URL, dest,
		Options{MaxRetries: 1}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 429")
	assert.NoFileExists(t, dest)
}

func TestDocument_ErrorStatusLeavesNoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "graybook.html")
	err := Document(context.Background(), srv.Client(), srv.URL, dest, Options{}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
	assert.NoFileExists(t, dest)
}

func TestDocument_ContextCancelledDuringBackoff(t *testing.T) {
	RetryBaseDelay = time.Minute
	t.Cleanup(func() { RetryBaseDelay = 10 * time.Second })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	dest := filepath.Join(t.TempDir(), "graybook.html")
	err := Document(ctx, srv.Client(), srv.URL, dest, Options{}, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
