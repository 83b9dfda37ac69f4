package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"feelscope/internal/symbols"
)

// SnapshotFile bundles the scope trees of several scenarios.
type SnapshotFile struct {
	Schema    uint16             `msgpack:"schema"`
	Scenarios []ScenarioSnapshot `msgpack:"scenarios"`
}

// ScenarioSnapshot is the scope tree of one scenario.
type ScenarioSnapshot struct {
	Path     string            `msgpack:"path"`
	Snapshot *symbols.Snapshot `msgpack:"snapshot"`
}

// WriteSnapshots writes the snapshots of results to path as msgpack. The
// file is replaced atomically. Results without a table are skipped.
func WriteSnapshots(path string, results []*Result) (err error) {
	out := SnapshotFile{Schema: symbols.SnapshotSchemaVersion}
	for _, r := range results {
		if snap := r.Snapshot(); snap != nil {
			out.Scenarios = append(out.Scenarios, ScenarioSnapshot{Path: r.Path, Snapshot: snap})
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
			err = rmErr
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(&out); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode snapshots: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), path)
}

// ReadSnapshots reads a file written by WriteSnapshots.
func ReadSnapshots(path string) (*SnapshotFile, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out SnapshotFile
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode snapshots: %w", err)
	}
	if out.Schema != symbols.SnapshotSchemaVersion {
		return nil, fmt.Errorf("snapshot schema %d, want %d", out.Schema, symbols.SnapshotSchemaVersion)
	}
	return &out, nil
}
