package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/issuecheck/issuecheck/internal/domain"
)

const historyFile = ".issuecheck/history/runs.json"

// DefaultLimit caps how many entries are kept on disk.
const DefaultLimit = 200

// FileHistory implements domain.RunHistory using JSON file storage.
type FileHistory struct {
	limit int
}

func New() *FileHistory {
	return WithLimit(DefaultLimit)
}

// WithLimit returns a history keeping at most n entries; n <= 0 keeps all.
func WithLimit(n int) *FileHistory {
	return &FileHistory{limit: n}
}

// Save appends entry, dropping the oldest entries beyond the limit.
func (h *FileHistory) Save(projectPath string, entry domain.RunEntry) error {
	entries, err := h.Load(projectPath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if h.limit > 0 && len(entries) > h.limit {
		entries = entries[len(entries)-h.limit:]
	}

	fp := filepath.Join(projectPath, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

// Load returns all entries, oldest first. A missing file is an empty history.
func (h *FileHistory) Load(projectPath string) ([]domain.RunEntry, error) {
	fp := filepath.Join(projectPath, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", historyFile, err)
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", historyFile, err)
	}

	return entries, nil
}
