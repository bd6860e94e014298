package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

//go:embed sample.json
var sampleJSON []byte

// Sample returns the catalog bundled with the binary.
func Sample() ([]Item, error) {
	return Parse(sampleJSON)
}

// Loader reads a catalog from a file, an http(s) URL or the bundled sample.
// Loads are never retried automatically; repeated manual reloads are paced
// by a limiter.
type Loader struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewLoader creates a Loader with the given HTTP timeout. At most one load
// per interval is allowed after the first.
func NewLoader(timeout, interval time.Duration) *Loader {
	return &Loader{
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Load fetches and parses the catalog named by source.
// An empty source selects the bundled sample.
func (l *Loader) Load(ctx context.Context, source string) ([]Item, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for load slot: %w", err)
	}

	if source == "" {
		return Sample()
	}
	data, err := l.read(ctx, source)
	if err != nil {
		return nil, err
	}
	items, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return l.fetch(ctx, source)
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		return data, nil
	}
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to load data: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog body: %w", err)
	}
	return data, nil
}
