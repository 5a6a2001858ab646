package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
	"github.com/Lumos-Labs-HQ/winegen/internal/pool"
	"github.com/Lumos-Labs-HQ/winegen/internal/sampler"
)

func generate(t *testing.T, target dataset.SinkFactory, seed int64, n int, bounds dataset.Bounds) error {
	t.Helper()
	g, err := dataset.NewGenerator(sampler.New(seed), bounds, n)
	if err != nil {
		t.Fatalf("Failed to create generator: %v", err)
	}
	_, err = dataset.NewPipeline(g, target).Run(context.Background())
	return err
}

// smallBounds keeps offers per wine within the supplier count of a tiny run.
func smallBounds(n int) dataset.Bounds {
	b := dataset.DefaultBounds()
	b.OfferCount = dataset.IntRange{Min: 1, Max: n}
	return b
}

func TestCSVRunsAreByteIdentical(t *testing.T) {
	base := t.TempDir()
	first := filepath.Join(base, "first")
	second := filepath.Join(base, "second")

	if err := generate(t, NewCSVTarget(first, '|', Meta{Seed: 7, Count: 3}), 7, 3, smallBounds(3)); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := generate(t, NewCSVTarget(second, '|', Meta{Seed: 7, Count: 3}), 7, 3, smallBounds(3)); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	for _, table := range dataset.Tables() {
		a, err := os.ReadFile(filepath.Join(first, table.Name+".csv"))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", table.Name, err)
		}
		b, err := os.ReadFile(filepath.Join(second, table.Name+".csv"))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", table.Name, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs with the same seed", table.Name)
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	memory := dataset.NewMemoryTarget()
	if err := generate(t, memory, 11, 20, dataset.DefaultBounds()); err != nil {
		t.Fatalf("memory run failed: %v", err)
	}
	if err := generate(t, NewCSVTarget(dir, '|', Meta{RunID: "run-1", Seed: 11, Count: 20, Bounds: dataset.DefaultBounds()}), 11, 20, dataset.DefaultBounds()); err != nil {
		t.Fatalf("csv run failed: %v", err)
	}

	m, snap, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.RunID != "run-1" || m.Format != "csv" || m.Delimiter != "|" {
		t.Errorf("Unexpected manifest: %+v", m)
	}
	if m.Bounds != dataset.DefaultBounds() {
		t.Errorf("Expected bounds to survive the manifest, got %+v", m.Bounds)
	}
	if len(m.Tables) != len(dataset.Tables()) {
		t.Fatalf("Expected %d manifest tables, got %d", len(dataset.Tables()), len(m.Tables))
	}
	for _, entry := range m.Tables {
		if entry.Rows != len(snap[entry.Name]) {
			t.Errorf("%s: manifest says %d rows, file has %d", entry.Name, entry.Rows, len(snap[entry.Name]))
		}
	}
	if !reflect.DeepEqual(snap, memory.Tables) {
		t.Error("CSV contents differ from the in-memory run")
	}
}

func TestCSVHasNoHeader(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	if err := generate(t, NewCSVTarget(dir, ';', Meta{Count: 2}), 3, 2, smallBounds(2)); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "bonus_cards.csv"))
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "1;") {
		t.Errorf("Expected first row to start with id 1, got %q", lines[0])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	memory := dataset.NewMemoryTarget()
	if err := generate(t, memory, 17, 10, dataset.DefaultBounds()); err != nil {
		t.Fatalf("memory run failed: %v", err)
	}
	if err := generate(t, NewJSONTarget(dir, Meta{Seed: 17, Count: 10}), 17, 10, dataset.DefaultBounds()); err != nil {
		t.Fatalf("json run failed: %v", err)
	}

	m, snap, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Format != "json" {
		t.Errorf("Expected json format, got %s", m.Format)
	}
	if !reflect.DeepEqual(snap, memory.Tables) {
		t.Error("JSON contents differ from the in-memory run")
	}
}

func TestAbortLeavesNoOutput(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "data")

	b := dataset.DefaultBounds()
	b.OfferCount = dataset.IntRange{Min: 2, Max: 2}

	err := generate(t, NewCSVTarget(dir, '|', Meta{Count: 1}), 5, 1, b)
	var exhausted *pool.ExhaustionError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Expected ExhaustionError, got %v", err)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatalf("Failed to list directory: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected nothing left behind, found %d entries", len(entries))
	}
}

func TestCommitReplacesPreviousDataset(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	if err := generate(t, NewCSVTarget(dir, '|', Meta{Seed: 1, Count: 5}), 1, 5, dataset.DefaultBounds()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := generate(t, NewCSVTarget(dir, '|', Meta{Seed: 2, Count: 8}), 2, 8, dataset.DefaultBounds()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	m, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}
	if m.Seed != 2 || m.Count != 8 {
		t.Errorf("Expected manifest of second run, got seed=%d count=%d", m.Seed, m.Count)
	}
}

func TestCommitRefusesForeignDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	keep := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(keep, []byte("keep me"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	err := generate(t, NewCSVTarget(dir, '|', Meta{Count: 2}), 1, 2, smallBounds(2))
	if err == nil {
		t.Fatal("Expected an error when the output directory is not a dataset")
	}
	if _, err := os.Stat(keep); err != nil {
		t.Errorf("Existing file was removed: %v", err)
	}
}
