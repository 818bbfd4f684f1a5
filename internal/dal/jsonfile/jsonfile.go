package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// Client owns the directory holding the JSON snapshot files.
type Client struct {
	dir string

	mu          sync.Mutex
	collections map[string]*Collection
}

// MustNewClient creates a new snapshot client rooted at the configured
// storage directory, creating the directory if needed.
func MustNewClient() *Client {
	dir := viper.GetString("storage.dir")
	if dir == "" {
		dir = "./data"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic("failed to create storage directory: " + err.Error())
	}

	return &Client{
		dir:         dir,
		collections: make(map[string]*Collection),
	}
}

// NewClient creates a snapshot client rooted at dir. Used where configuration
// is not available, such as tests.
func NewClient(dir string) (*Client, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &Client{
		dir:         dir,
		collections: make(map[string]*Collection),
	}, nil
}

// Collection returns the collection backed by the named file. Repeated calls
// with the same name return the same Collection so all repositories for one
// entity type share a single lock.
func (c *Client) Collection(name string) *Collection {
	c.mu.Lock()
	defer c.mu.Unlock()

	col, ok := c.collections[name]
	if !ok {
		col = &Collection{path: filepath.Join(c.dir, name)}
		c.collections[name] = col
	}

	return col
}

// Collection is one entity collection persisted as a whole-file JSON
// snapshot. Every mutation rewrites the full file. The embedded lock guards
// the read-modify-write cycle within the process.
type Collection struct {
	path string
	mu   sync.RWMutex
}

// Lock acquires the collection for a read-modify-write cycle.
func (c *Collection) Lock() { c.mu.Lock() }

// Unlock releases the collection after a read-modify-write cycle.
func (c *Collection) Unlock() { c.mu.Unlock() }

// RLock acquires the collection for reading only.
func (c *Collection) RLock() { c.mu.RLock() }

// RUnlock releases a read acquisition.
func (c *Collection) RUnlock() { c.mu.RUnlock() }

// Load reads the snapshot into dst. A missing file is an empty collection.
// An unparsable file is treated as empty as well; the corruption is logged
// and the file is overwritten on the next Save.
func (c *Collection) Load(dst any) error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to read snapshot %s: %w", c.path, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		slog.Warn("Snapshot file is corrupt, starting with empty collection", "path", c.path, "error", err)

		return nil
	}

	return nil
}

// Save rewrites the whole snapshot file from src.
func (c *Collection) Save(src any) error {
	data, err := json.MarshalIndent(src, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %s: %w", c.path, err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", c.path, err)
	}

	return nil
}
