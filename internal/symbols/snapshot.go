package symbols

import (
	"fmt"
	"io"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotSchemaVersion is bumped whenever the snapshot layout changes.
const SnapshotSchemaVersion uint16 = 1

// Snapshot is the serialisable form of a table.
type Snapshot struct {
	Schema uint16        `msgpack:"schema"`
	Global uint32        `msgpack:"global"`
	Scopes []ScopeRecord `msgpack:"scopes"`
}

// ScopeRecord is one scope of a snapshot.
type ScopeRecord struct {
	ID       uint32         `msgpack:"id"`
	Parent   uint32         `msgpack:"parent"`
	Name     string         `msgpack:"name"`
	Type     string         `msgpack:"type,omitempty"`
	Symbols  []SymbolRecord `msgpack:"symbols,omitempty"`
	Children []uint32       `msgpack:"children,omitempty"`
}

// SymbolRecord is one symbol of a snapshot.
type SymbolRecord struct {
	Name string `msgpack:"name"`
	Kind uint8  `msgpack:"kind"`
	Type string `msgpack:"type,omitempty"`
}

// Snapshot captures the scopes and symbols of the table. Children are
// listed in ascending ID order.
func (t *Table) Snapshot() *Snapshot {
	snap := &Snapshot{
		Schema: SnapshotSchemaVersion,
		Global: uint32(t.Global),
	}
	scopes := t.Scopes.Data()
	snap.Scopes = make([]ScopeRecord, 0, len(scopes))
	for i := range scopes {
		s := &scopes[i]
		rec := ScopeRecord{
			ID:     uint32(toScopeID(i + 1)),
			Parent: uint32(s.Parent),
			Name:   t.Strings.MustLookup(s.Name),
			Type:   typeName(s.Type),
		}
		for _, symID := range s.Symbols {
			sym := t.Symbols.Get(symID)
			if sym == nil {
				continue
			}
			rec.Symbols = append(rec.Symbols, SymbolRecord{
				Name: t.Strings.MustLookup(sym.Name),
				Kind: uint8(sym.Kind),
				Type: typeName(sym.Type),
			})
		}
		for _, child := range s.Children {
			rec.Children = append(rec.Children, uint32(child))
		}
		sort.Slice(rec.Children, func(a, b int) bool { return rec.Children[a] < rec.Children[b] })
		snap.Scopes = append(snap.Scopes, rec)
	}
	return snap
}

// EncodeSnapshot writes the table snapshot as msgpack.
func (t *Table) EncodeSnapshot(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(t.Snapshot()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a msgpack snapshot and checks its schema version.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Schema != SnapshotSchemaVersion {
		return nil, fmt.Errorf("snapshot schema %d, want %d", snap.Schema, SnapshotSchemaVersion)
	}
	return &snap, nil
}

// Scope returns the record with the given ID, or nil.
func (s *Snapshot) Scope(id uint32) *ScopeRecord {
	if id == 0 || int(id) > len(s.Scopes) {
		return nil
	}
	rec := &s.Scopes[id-1]
	if rec.ID != id {
		return nil
	}
	return rec
}

// Path returns the scope names from the global scope down to id.
func (s *Snapshot) Path(id uint32) []string {
	var out []string
	for rec := s.Scope(id); rec != nil; rec = s.Scope(rec.Parent) {
		out = append(out, rec.Name)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

