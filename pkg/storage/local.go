package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	transcriptSuffix = ".txt"
	processedSuffix  = ".done"
)

// LocalStore implements Store over a flat directory of .txt transcripts.
// Processed files are renamed in place with a .done suffix, so the directory
// itself records sweep progress and survives restarts.
type LocalStore struct {
	dir string
}

// NewLocalStore creates a local store rooted at dir, creating it if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create transcript dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// ListPending returns pending transcript names in lexical order.
func (s *LocalStore) ListPending(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read transcript dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), transcriptSuffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the transcript text by name.
func (s *LocalStore) Read(_ context.Context, name string) (string, error) {
	text, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("read transcript %q: %w", name, err)
	}
	return string(text), nil
}

// MarkProcessed renames the transcript with the processed suffix.
func (s *LocalStore) MarkProcessed(_ context.Context, name string) error {
	path := filepath.Join(s.dir, name)
	if err := os.Rename(path, path+processedSuffix); err != nil {
		return fmt.Errorf("mark transcript %q processed: %w", name, err)
	}
	return nil
}
