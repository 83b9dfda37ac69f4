package itemdef

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"feelscope/internal/types"
)

// Document is the layout of an item-definition file (TOML or YAML). It is
// embedded in scenario files as well.
type Document struct {
	Items   []ItemDecl  `toml:"item" yaml:"items"`
	Aliases []AliasDecl `toml:"alias" yaml:"aliases"`
}

// ItemDecl declares one composite type.
type ItemDecl struct {
	Name   string      `toml:"name" yaml:"name"`
	Fields []FieldDecl `toml:"field" yaml:"fields"`
}

// FieldDecl declares one field; Collection wraps the type into a list.
type FieldDecl struct {
	Name       string `toml:"name" yaml:"name"`
	Type       string `toml:"type" yaml:"type"`
	Collection bool   `toml:"collection" yaml:"collection"`
}

// AliasDecl names a built-in type.
type AliasDecl struct {
	Name string `toml:"name" yaml:"name"`
	Of   string `toml:"of" yaml:"of"`
}

// Decode reads a TOML item-definition document.
func Decode(r io.Reader) (*Registry, error) {
	var doc Document
	meta, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return FromDocument(doc)
}

// DecodeYAML reads a YAML item-definition document. Unknown keys are
// rejected as in the TOML form.
func DecodeYAML(r io.Reader) (*Registry, error) {
	doc, err := decodeYAMLDocument(r)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}

func decodeYAMLDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return Document{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return doc, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadDocument reads an item-definition file without resolving it. Files
// ending in .yaml or .yml are YAML, everything else TOML.
func LoadDocument(path string) (Document, error) {
	if isYAML(path) {
		f, err := os.Open(path)
		if err != nil {
			return Document{}, err
		}
		defer f.Close()
		doc, err := decodeYAMLDocument(f)
		if err != nil {
			return Document{}, fmt.Errorf("%s: %w", path, err)
		}
		return doc, nil
	}
	var doc Document
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return Document{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Document{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return doc, nil
}

// LoadFile reads item definitions from a TOML or YAML file.
func LoadFile(path string) (*Registry, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	reg, err := FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Merge appends the declarations of other to d.
func (d Document) Merge(other Document) Document {
	out := Document{
		Items:   make([]ItemDecl, 0, len(d.Items)+len(other.Items)),
		Aliases: make([]AliasDecl, 0, len(d.Aliases)+len(other.Aliases)),
	}
	out.Items = append(append(out.Items, d.Items...), other.Items...)
	out.Aliases = append(append(out.Aliases, d.Aliases...), other.Aliases...)
	return out
}

// FromDocument builds a registry. Items may refer to each other in any
// order, including recursively.
func FromDocument(doc Document) (*Registry, error) {
	reg := New()
	for _, a := range doc.Aliases {
		k, ok := types.ParseKind(a.Of)
		if !ok {
			return nil, fmt.Errorf("alias %q: %w %q", a.Name, ErrUnknownType, a.Of)
		}
		if err := reg.DefineAlias(&types.Alias{AliasName: strings.TrimSpace(a.Name), Base: types.FromKind(k)}); err != nil {
			return nil, err
		}
	}
	shells := make([]*types.Composite, len(doc.Items))
	for i, item := range doc.Items {
		shells[i] = &types.Composite{TypeName: strings.TrimSpace(item.Name)}
		if err := reg.Define(shells[i]); err != nil {
			return nil, err
		}
	}
	for i, item := range doc.Items {
		fields := make([]types.Field, 0, len(item.Fields))
		seen := make(map[string]struct{}, len(item.Fields))
		for _, f := range item.Fields {
			name := strings.TrimSpace(f.Name)
			if name == "" {
				return nil, fmt.Errorf("item %q: field without a name", item.Name)
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("item %q: duplicate field %q", item.Name, name)
			}
			seen[name] = struct{}{}
			t, err := reg.TypeOf(f.Type)
			if err != nil {
				return nil, fmt.Errorf("item %q field %q: %w", item.Name, name, err)
			}
			if f.Collection {
				t = types.ListOf(t)
			}
			fields = append(fields, types.Field{Name: name, Type: t})
		}
		shells[i].Fields = fields
	}
	return reg, nil
}
