// Package state persists the last typed query between runs.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const queryFile = "saved_query.txt"

type QueryStore struct {
	path string
}

func NewQueryStore(dir string) *QueryStore {
	return &QueryStore{path: filepath.Join(dir, queryFile)}
}

// Load returns the saved query, or "" when there is none or it can't be read.
func (q *QueryStore) Load() string {
	data, err := os.ReadFile(q.path)
	if err != nil {
		return ""
	}
	return string(data)
}

// Save overwrites the saved query.
func (q *QueryStore) Save(query string) error {
	if err := os.MkdirAll(filepath.Dir(q.path), 0755); err != nil {
		return fmt.Errorf("save query: %w", err)
	}
	if err := os.WriteFile(q.path, []byte(query), 0644); err != nil {
		return fmt.Errorf("save query: %w", err)
	}
	return nil
}

// Initial picks the query a run starts with: the command-line words joined
// by single spaces, unless they are blank, in which case the saved query.
func (q *QueryStore) Initial(args []string) string {
	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		return q.Load()
	}
	return query
}
