package history

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"
)

// DefaultTTLSeconds keeps entries for a week.
const DefaultTTLSeconds = 7 * 24 * 60 * 60

// Entry represents a stored codeblock.
type Entry struct {
	Key       string    `json:"key"`
	Codeblock string    `json:"codeblock"`
	CreatedAt time.Time `json:"createdAt"`
	TTL       int       `json:"ttl"`
}

// Preview returns the first content line of the codeblock, without indent.
func (e Entry) Preview(width int) string {
	line := strings.TrimLeft(e.Codeblock, "\n")
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if r := []rune(line); width > 0 && len(r) > width {
		line = string(r[:width-1]) + "…"
	}
	return line
}

// Store provides file-based storage of copied codeblocks.
type Store struct {
	dir        string
	ttlSeconds int
	enabled    bool
}

// New creates a new Store. If dir is empty, uses the default history directory.
func New(enabled bool, dir string, ttlSeconds int) (*Store, error) {
	if !enabled {
		return &Store{enabled: false}, nil
	}
	if dir == "" {
		d, err := defaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	return &Store{
		dir:        dir,
		ttlSeconds: ttlSeconds,
		enabled:    true,
	}, nil
}

// Put stores a codeblock. Storing the same codeblock again refreshes its
// timestamp.
func (s *Store) Put(codeblock string) (Entry, error) {
	entry := Entry{
		Key:       HashKey(codeblock),
		Codeblock: codeblock,
		CreatedAt: time.Now(),
		TTL:       s.ttlSeconds,
	}
	if !s.enabled {
		return entry, nil
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("marshaling history entry: %w", err)
	}
	if err := os.WriteFile(s.entryPath(entry.Key), data, 0o644); err != nil {
		return Entry{}, fmt.Errorf("writing history entry: %w", err)
	}
	return entry, nil
}

// Get retrieves an entry by key or unambiguous key prefix. Returns false on miss.
func (s *Store) Get(key string) (Entry, bool) {
	if !s.enabled || key == "" {
		return Entry{}, false
	}
	entries, err := s.List()
	if err != nil {
		return Entry{}, false
	}
	var found []Entry
	for _, e := range entries {
		if strings.HasPrefix(e.Key, key) {
			found = append(found, e)
		}
	}
	if len(found) != 1 {
		return Entry{}, false
	}
	return found[0], true
}

// List returns live entries, newest first. Expired entries are removed.
func (s *Store) List() ([]Entry, error) {
	if !s.enabled || s.dir == "" {
		return nil, nil
	}
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history directory: %w", err)
	}
	var entries []Entry
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".json" {
			continue
		}
		path := filepath.Join(s.dir, f.Name())
		entry, ok := readEntry(path)
		if !ok {
			continue
		}
		if s.expired(entry) {
			os.Remove(path)
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	return entries, nil
}

// Clear removes all history entries.
func (s *Store) Clear() error {
	if !s.enabled || s.dir == "" {
		return nil
	}
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading history directory: %w", err)
	}
	for _, f := range files {
		if filepath.Ext(f.Name()) == ".json" {
			os.Remove(filepath.Join(s.dir, f.Name()))
		}
	}
	return nil
}

// Stats returns history statistics.
type Stats struct {
	Dir        string `json:"dir"`
	Entries    int    `json:"entries"`
	TotalBytes int64  `json:"totalBytes"`
	Expired    int    `json:"expired"`
}

// GetStats returns information about the store.
func (s *Store) GetStats() (Stats, error) {
	stats := Stats{Dir: s.dir}
	if !s.enabled || s.dir == "" {
		return stats, nil
	}
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return stats, nil
		}
		return stats, fmt.Errorf("reading history directory: %w", err)
	}
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".json" {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		stats.Entries++
		stats.TotalBytes += info.Size()

		entry, ok := readEntry(filepath.Join(s.dir, f.Name()))
		if ok && s.expired(entry) {
			stats.Expired++
		}
	}
	return stats, nil
}

// Dir returns the history directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Enabled returns whether history is recorded.
func (s *Store) Enabled() bool {
	return s.enabled
}

// HashKey creates a SHA-256 hash of the given codeblock.
func HashKey(codeblock string) string {
	h := sha256.Sum256([]byte(codeblock))
	return fmt.Sprintf("%x", h)
}

func (s *Store) expired(e Entry) bool {
	return s.ttlSeconds > 0 && time.Since(e.CreatedAt) > time.Duration(s.ttlSeconds)*time.Second
}

func (s *Store) entryPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func readEntry(path string) (Entry, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, false
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, false
	}
	return entry, true
}

func defaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "redcode"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "redcode"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "redcode", "history"), nil
		}
		return filepath.Join(home, "AppData", "Local", "redcode", "history"), nil
	default:
		return filepath.Join(home, ".cache", "redcode"), nil
	}
}
