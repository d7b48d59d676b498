// Package content fetches the structured page resources (team, services,
// trainings) over HTTP and caches them in memory for the page session.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"kineticstudio.fit/studio-web/internal/metrics"
)

// ErrNotFound is returned internally when a resource cannot be located.
var ErrNotFound = errors.New("content: not found")

const defaultContentDir = "content"

// Retriever provides read-only, cached access to content resources. A cache
// entry is created on first successful retrieval and never evicted. Failures
// never propagate: callers get (nil, false) and the failure is logged, so one
// section's outage cannot take down its siblings.
//
// Concurrent fetches for the same still-unresolved id are not de-duplicated;
// only completed retrievals are.
type Retriever struct {
	baseURL    string
	contentDir string
	http       *http.Client
	log        *slog.Logger

	mu    sync.RWMutex
	cache map[string]json.RawMessage
}

// NewRetriever constructs a Retriever. When baseURL is empty, resources are
// read from contentDir instead (local fixtures for development and tests).
func NewRetriever(baseURL, contentDir string, log *slog.Logger) *Retriever {
	if strings.TrimSpace(contentDir) == "" {
		contentDir = defaultContentDir
	}
	if log == nil {
		log = slog.Default()
	}
	return &Retriever{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		contentDir: contentDir,
		http:       &http.Client{Timeout: 5 * time.Second},
		log:        log,
	}
}

// Fetch returns the raw payload for id, consulting the cache first. The
// boolean reports success; on any retrieval failure the result is (nil,
// false) and the failure has been logged.
func (r *Retriever) Fetch(ctx context.Context, id string) (json.RawMessage, bool) {
	id = sanitizeID(id)
	if id == "" {
		return nil, false
	}

	r.mu.RLock()
	cached, ok := r.cache[id]
	r.mu.RUnlock()
	if ok {
		metrics.CacheHit()
		return cached, true
	}

	payload, err := r.retrieve(ctx, id)
	if err != nil {
		metrics.FetchError()
		r.log.Error("content: retrieval failed", "resource", id, "error", err)
		return nil, false
	}
	metrics.FetchOK()

	r.mu.Lock()
	if r.cache == nil {
		r.cache = map[string]json.RawMessage{}
	}
	if existing, ok := r.cache[id]; ok {
		// A concurrent fetch won the race; keep the first stored payload.
		payload = existing
	} else {
		r.cache[id] = payload
	}
	r.mu.Unlock()
	return payload, true
}

func (r *Retriever) retrieve(ctx context.Context, id string) (json.RawMessage, error) {
	if r.baseURL == "" {
		return readLocal(r.contentDir, id)
	}
	endpoint, err := url.JoinPath(r.baseURL, id)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, errors.New("content: status " + resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, errors.New("content: invalid JSON payload")
	}
	return json.RawMessage(data), nil
}

func readLocal(dir, id string) (json.RawMessage, error) {
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(id)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !json.Valid(data) {
		return nil, errors.New("content: invalid JSON fixture " + id)
	}
	return json.RawMessage(data), nil
}

// Records fetches and decodes a resource into typed records at the retrieval
// boundary. Decode failures follow the same contract as fetch failures.
func Records[T any](ctx context.Context, r *Retriever, id string) ([]T, bool) {
	payload, ok := r.Fetch(ctx, id)
	if !ok {
		return nil, false
	}
	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		r.log.Error("content: decode failed", "resource", id, "error", err)
		return nil, false
	}
	return records, true
}

func sanitizeID(id string) string {
	id = strings.Trim(strings.TrimSpace(id), "/")
	if id == "" || strings.Contains(id, "..") {
		return ""
	}
	return id
}
