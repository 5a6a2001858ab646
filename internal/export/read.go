package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
)

// Load reads a dataset directory back into memory using its manifest to pick
// the format and delimiter.
func Load(dir string) (*Manifest, dataset.Snapshot, error) {
	m, err := ReadManifest(dir)
	if err != nil {
		return nil, nil, err
	}

	switch m.Format {
	case "csv":
		delim, size := utf8.DecodeRuneInString(m.Delimiter)
		if size == 0 || size != len(m.Delimiter) {
			return nil, nil, fmt.Errorf("manifest has invalid delimiter %q", m.Delimiter)
		}
		snap, err := ReadCSV(dir, delim)
		return m, snap, err
	case "json":
		snap, err := ReadJSON(dir)
		return m, snap, err
	default:
		return nil, nil, fmt.Errorf("unsupported dataset format: %s", m.Format)
	}
}

// ReadCSV parses every table file written by CSVTarget. Rows must have
// exactly as many fields as the table has columns.
func ReadCSV(dir string, delimiter rune) (dataset.Snapshot, error) {
	snap := make(dataset.Snapshot)
	for _, table := range dataset.Tables() {
		f, err := os.Open(filepath.Join(dir, table.Name+".csv"))
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", table.Name, err)
		}

		r := csv.NewReader(f)
		r.Comma = delimiter
		r.FieldsPerRecord = len(table.Columns)
		rows, err := r.ReadAll()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", table.Name, err)
		}
		if rows == nil {
			rows = [][]string{}
		}
		snap[table.Name] = rows
	}
	return snap, nil
}

// ReadJSON parses every table file written by JSONTarget.
func ReadJSON(dir string) (dataset.Snapshot, error) {
	snap := make(dataset.Snapshot)
	for _, table := range dataset.Tables() {
		data, err := os.ReadFile(filepath.Join(dir, table.Name+".json"))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", table.Name, err)
		}

		var objects []map[string]string
		if err := json.Unmarshal(data, &objects); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", table.Name, err)
		}

		rows := make([][]string, 0, len(objects))
		for i, obj := range objects {
			row := make([]string, len(table.Columns))
			for j, col := range table.Columns {
				v, ok := obj[col.Name]
				if !ok {
					return nil, fmt.Errorf("%s row %d is missing column %s", table.Name, i+1, col.Name)
				}
				row[j] = v
			}
			rows = append(rows, row)
		}
		snap[table.Name] = rows
	}
	return snap, nil
}
