package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/acadex-io/acadex/internal/domain/document"
)

// documentDTO is the YAML shape of a bundled corpus entry.
type documentDTO struct {
	Text       string            `yaml:"text"`
	Category   string            `yaml:"category"`
	Attributes map[string]string `yaml:"attributes"`
}

type corpusDTO struct {
	Documents []documentDTO `yaml:"documents"`
}

// LoadFile reads a corpus asset from a YAML file and returns a seeded
// repository. Documents keep file order (insertion order is the ranking
// tie-break).
func LoadFile(path string) (*Repo, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	var dto corpusDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	if len(dto.Documents) == 0 {
		return nil, fmt.Errorf("corpus %s contains no documents", path)
	}

	docs := make([]document.Document, 0, len(dto.Documents))
	for _, d := range dto.Documents {
		docs = append(docs, document.New(d.Text, document.Attributes{
			Category: d.Category,
			Extra:    d.Attributes,
		}))
	}
	return NewSeeded(docs), nil
}

// Load returns the corpus from path, falling back to the built-in
// document set when path is empty.
func Load(path string) (*Repo, error) {
	if path == "" {
		return NewSeeded(SeedDocuments()), nil
	}
	return LoadFile(path)
}
