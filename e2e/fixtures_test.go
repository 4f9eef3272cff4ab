//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CreateTestWorkspace creates a temporary directory for config, storage and logs
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// StoragePath is the file store the app is pointed at by StartSearch
func (tf *TUITestFramework) StoragePath() string {
	return filepath.Join(tf.workspace, "storage.json")
}

// StartSearch starts the app against endpoint with a short debounce and a
// file store inside the workspace
func (tf *TUITestFramework) StartSearch(endpoint string, extra ...string) error {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return err
		}
	}
	args := []string{
		"--endpoint", endpoint,
		"--debounce", "50ms",
		"--storage", "file",
		"--storage-path", tf.StoragePath(),
	}
	return tf.StartApp(append(args, extra...)...)
}

// SeedHistory writes raw as the stored history value
func (tf *TUITestFramework) SeedHistory(raw string) error {
	data, err := json.Marshal(map[string]string{"searchHistory": raw})
	if err != nil {
		return err
	}
	return os.WriteFile(tf.StoragePath(), data, 0644)
}

// StoredHistory returns the raw history value the app persisted
func (tf *TUITestFramework) StoredHistory() (string, error) {
	data, err := os.ReadFile(tf.StoragePath())
	if err != nil {
		return "", err
	}
	items := map[string]string{}
	if err := json.Unmarshal(data, &items); err != nil {
		return "", err
	}
	return items["searchHistory"], nil
}

type fakeResult struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Description string `json:"description,omitempty"`
}

// searchServer answers /api/search with every catalog entry whose title
// contains the query, and records the queries it saw
type searchServer struct {
	*httptest.Server

	mu      sync.Mutex
	queries []string
	fail    bool
}

var catalog = []fakeResult{
	{ID: 1, Title: "Cat", Subtitle: "Felis catus", Thumbnail: "https://img.example/cat.png", Description: "<p>Small <b>domesticated</b> carnivore.</p>"},
	{ID: 2, Title: "Caterpillar", Subtitle: "Larva", Description: "<p>Hatches from an egg.</p><p>Eats leaves.</p>" +
		"<p>Grows quickly.</p><p>Sheds its skin.</p><p>Sheds it again.</p><p>Stops eating.</p>" +
		"<p>Spins a silk pad.</p><p>Pupates into a butterfly.</p>"},
	{ID: 3, Title: "Dog", Subtitle: "Canis familiaris"},
}

func newSearchServer(tf *TUITestFramework) *searchServer {
	s := &searchServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	tf.t.Cleanup(s.Close)
	return s
}

func (s *searchServer) handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	s.mu.Lock()
	s.queries = append(s.queries, q)
	fail := s.fail
	s.mu.Unlock()

	if r.URL.Path != "/api/search" {
		http.NotFound(w, r)
		return
	}
	if fail {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": "unavailable", "message": "index rebuilding"}`))
		return
	}

	matches := []fakeResult{}
	for _, item := range catalog {
		if strings.Contains(strings.ToLower(item.Title), strings.ToLower(q)) {
			matches = append(matches, item)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(matches)
}

func (s *searchServer) setFail(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}

// Queries returns the queries received so far
func (s *searchServer) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}
