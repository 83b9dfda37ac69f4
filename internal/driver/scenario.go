package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"feelscope/internal/config"
	"feelscope/internal/itemdef"
	"feelscope/internal/source"
)

// ScenarioSuffix marks scenario files when a directory is checked.
const ScenarioSuffix = ".feel.toml"

// Scenario replays what a FEEL parser asks of the resolver for a set of
// expressions: the input variables it is compiled against and, per
// expression, the qualified names it references.
type Scenario struct {
	Path   string          `toml:"-"`
	FileID source.FileID   `toml:"-"`
	Files  *source.FileSet `toml:"-"`

	Name      string           `toml:"name"`
	Items     string           `toml:"items"`
	Features  scenarioFeatures `toml:"features"`
	Variables []VariableDecl   `toml:"variable"`
	Checks    []CheckDecl      `toml:"check"`
	itemdef.Document
}

type scenarioFeatures struct {
	EnhancedForLoop *bool `toml:"enhanced-for-loop"`
	WeekdayField    *bool `toml:"weekday"`
}

// apply overrides base with the toggles the scenario sets.
func (f scenarioFeatures) apply(base config.Features) config.Features {
	if f.EnhancedForLoop != nil {
		base.EnhancedForLoop = *f.EnhancedForLoop
	}
	if f.WeekdayField != nil {
		base.WeekdayField = *f.WeekdayField
	}
	return base
}

// VariableDecl is an input variable; an empty Type declares it untyped.
type VariableDecl struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// CheckDecl is one expression. Expr is a dotted qualified name. Filter lists
// names referenced inside a filter applied to Expr. Bind declares iteration
// variables of an enclosing for, some or every. TypeScope evaluates the
// expression inside the scope of an item definition.
type CheckDecl struct {
	Expr      string         `toml:"expr"`
	Filter    []string       `toml:"filter"`
	Bind      []VariableDecl `toml:"bind"`
	TypeScope string         `toml:"type-scope"`
}

// LoadScenario reads a scenario file into a fresh file set.
func LoadScenario(path string) (*Scenario, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	sc, err := DecodeScenario(fs, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

var (
	// ErrLoad wraps failures to read a scenario file.
	ErrLoad = errors.New("failed to load scenario")
	// ErrSyntax wraps malformed scenario documents.
	ErrSyntax = errors.New("malformed scenario")
)

// DecodeScenario decodes the file id of fs as a scenario.
func DecodeScenario(fs *source.FileSet, id source.FileID) (*Scenario, error) {
	f := fs.Get(id)
	if f == nil {
		return nil, fmt.Errorf("%w: unknown file %d", ErrLoad, id)
	}
	sc := &Scenario{Path: f.Path, FileID: id, Files: fs}
	meta, err := toml.Decode(string(f.Content), sc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrSyntax, undecoded[0].String())
	}
	for i, c := range sc.Checks {
		if strings.TrimSpace(c.Expr) == "" {
			return nil, fmt.Errorf("%w: check #%d has no expr", ErrSyntax, i+1)
		}
	}
	for i, v := range sc.Variables {
		if strings.TrimSpace(v.Name) == "" {
			return nil, fmt.Errorf("%w: variable #%d has no name", ErrSyntax, i+1)
		}
	}
	if sc.Name == "" {
		sc.Name = f.Path
	}
	return sc, nil
}
