package casefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/issuecheck/issuecheck/internal/domain"
	"gopkg.in/yaml.v3"
)

// Source implements domain.CaseSource over YAML (or JSON) case files.
type Source struct{}

func New() *Source { return &Source{} }

type fileDocument struct {
	Cases []caseDocument `yaml:"cases"`
}

type caseDocument struct {
	Name     string         `yaml:"name"`
	Actual   *IssueDocument `yaml:"actual"`
	Expected *IssueDocument `yaml:"expected"`
}

// Discover expands the configured patterns under projectPath and drops
// excluded files. Results are slash-separated, sorted and unique.
func (s *Source) Discover(projectPath string, cfg domain.ProjectConfig) ([]string, error) {
	fsys := os.DirFS(projectPath)
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range cfg.CasePatterns() {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || cfg.IsExcluded(m) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Load reads every case in the file at path.
func (s *Source) Load(path string) ([]domain.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file: %w", err)
	}
	return Parse(filepath.ToSlash(path), data)
}

// Parse decodes case file content. file is only used for naming.
func Parse(file string, data []byte) ([]domain.Case, error) {
	var doc fileDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}

	cases := make([]domain.Case, 0, len(doc.Cases))
	for i, cd := range doc.Cases {
		name := cd.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		if cd.Actual == nil {
			return nil, fmt.Errorf("%s: %s: missing actual issue", file, name)
		}
		if cd.Expected == nil {
			return nil, fmt.Errorf("%s: %s: missing expected issue", file, name)
		}

		actual, err := cd.Actual.ToIssue()
		if err != nil {
			return nil, fmt.Errorf("%s: %s: actual: %w", file, name, err)
		}
		expected, err := cd.Expected.ToIssue()
		if err != nil {
			return nil, fmt.Errorf("%s: %s: expected: %w", file, name, err)
		}

		cases = append(cases, domain.Case{
			Name:     name,
			File:     file,
			Actual:   actual,
			Expected: expected,
		})
	}
	return cases, nil
}
