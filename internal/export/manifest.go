package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
	"gopkg.in/yaml.v3"
)

const ManifestFile = "manifest.yaml"

type Manifest struct {
	RunID       string          `yaml:"run_id"`
	Seed        int64           `yaml:"seed"`
	Count       int             `yaml:"count"`
	Format      string          `yaml:"format"`
	Delimiter   string          `yaml:"delimiter,omitempty"`
	GeneratedAt time.Time       `yaml:"generated_at"`
	Bounds      dataset.Bounds  `yaml:"bounds"`
	Tables      []ManifestTable `yaml:"tables"`
}

type ManifestTable struct {
	Name    string   `yaml:"name"`
	File    string   `yaml:"file"`
	Rows    int      `yaml:"rows"`
	Columns []string `yaml:"columns"`
}

func WriteManifest(dir string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
