package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestLoader() *Loader {
	l := NewLoader(5*time.Second, time.Second)
	l.limiter = rate.NewLimiter(rate.Inf, 1)
	return l
}

func TestLoaderHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "1", "name": "Catan"}]`))
	}))
	defer server.Close()

	items, err := newTestLoader().Load(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
}

func TestLoaderHTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestLoader().Load(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestLoaderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 9, "name": "Dominion"}]`), 0644))

	items, err := newTestLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Dominion", items[0].Name)
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := newTestLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoaderParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"games": []}`), 0644))

	_, err := newTestLoader().Load(context.Background(), path)
	assert.ErrorIs(t, err, ErrNotArray)
}

func TestLoaderEmptySourceUsesSample(t *testing.T) {
	items, err := newTestLoader().Load(context.Background(), "")
	require.NoError(t, err)

	sample, err := Sample()
	require.NoError(t, err)
	assert.Equal(t, sample, items)
}

func TestLoaderRespectsCancelledContext(t *testing.T) {
	l := NewLoader(time.Second, time.Hour)
	// First load consumes the burst token.
	_, err := l.Load(context.Background(), "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Load(ctx, "")
	assert.Error(t, err)
}
