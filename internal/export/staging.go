package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// staging collects a run's files in a hidden sibling of the output
// directory and swaps it into place on commit.
type staging struct {
	dir  string
	tmp  string
	once sync.Once
	err  error
}

func (s *staging) path(name string) (string, error) {
	s.once.Do(func() {
		parent := filepath.Dir(filepath.Clean(s.dir))
		if err := os.MkdirAll(parent, 0755); err != nil {
			s.err = fmt.Errorf("failed to create output parent directory: %w", err)
			return
		}
		s.tmp, s.err = os.MkdirTemp(parent, ".winegen-*")
	})
	if s.err != nil {
		return "", s.err
	}
	return filepath.Join(s.tmp, name), nil
}

func (s *staging) commit(m Manifest) error {
	if _, err := s.path(ManifestFile); err != nil {
		return err
	}
	if err := WriteManifest(s.tmp, m); err != nil {
		return err
	}

	if info, err := os.Stat(s.dir); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("output path %s exists and is not a directory", s.dir)
		}
		if _, err := os.Stat(filepath.Join(s.dir, ManifestFile)); err != nil {
			return fmt.Errorf("output directory %s exists and is not a winegen dataset", s.dir)
		}
		if err := os.RemoveAll(s.dir); err != nil {
			return fmt.Errorf("failed to replace previous dataset: %w", err)
		}
	}

	if err := os.Rename(s.tmp, s.dir); err != nil {
		return fmt.Errorf("failed to publish dataset: %w", err)
	}
	s.tmp = ""
	return nil
}

func (s *staging) abort() error {
	if s.tmp == "" {
		return nil
	}
	err := os.RemoveAll(s.tmp)
	s.tmp = ""
	return err
}
