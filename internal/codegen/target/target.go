// Package target holds the generation target definitions: reserved words,
// identifier rules and default output file names per language.
//
// The built-in set is embedded from targets.yaml. A user file in YAML, TOML
// or JSON can add targets or replace built-in ones by name.
package target

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/Alia5/fwgen/internal/schema"

	json "github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// DefaultName is the target used when none is configured.
const DefaultName = "java"

//go:embed targets.yaml
var builtinYAML []byte

// Language describes one generation target.
type Language struct {
	Name        string   `yaml:"name" toml:"name" json:"name"`
	Display     string   `yaml:"displayName" toml:"displayName" json:"displayName"`
	AllowDollar bool     `yaml:"allowDollar" toml:"allowDollar" json:"allowDollar"`
	Package     string   `yaml:"package" toml:"package" json:"package"`
	RecordFile  string   `yaml:"recordFile" toml:"recordFile" json:"recordFile"`
	ParserFile  string   `yaml:"parserFile" toml:"parserFile" json:"parserFile"`
	Reserved    []string `yaml:"reserved" toml:"reserved" json:"reserved"`

	reservedSet map[string]struct{}
}

var _ schema.Dialect = (*Language)(nil)

func (l *Language) DisplayName() string {
	if l.Display == "" {
		return l.Name
	}
	return l.Display
}

func (l *Language) IsReserved(name string) bool {
	_, ok := l.reservedSet[name]
	return ok
}

func (l *Language) IsIdentRune(r rune) bool {
	return schema.IsASCIIIdentRune(r) || (l.AllowDollar && r == '$')
}

func (l *Language) index() {
	l.reservedSet = make(map[string]struct{}, len(l.Reserved))
	for _, w := range l.Reserved {
		l.reservedSet[w] = struct{}{}
	}
}

func (l *Language) validate() error {
	if l.Name == "" {
		return fmt.Errorf("target without name")
	}
	if l.RecordFile == "" || l.ParserFile == "" {
		return fmt.Errorf("target %s: recordFile and parserFile are required", l.Name)
	}
	return nil
}

type file struct {
	Targets []Language `yaml:"targets" toml:"targets" json:"targets"`
}

// Registry is a read-only set of targets keyed by name.
type Registry struct {
	langs map[string]*Language
}

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns the embedded target set. The result is shared and must not
// be modified.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		var f file
		if err := yaml.Unmarshal(builtinYAML, &f); err != nil {
			panic(fmt.Sprintf("parse embedded targets.yaml: %v", err))
		}
		r := &Registry{langs: map[string]*Language{}}
		if err := r.add(f.Targets); err != nil {
			panic(fmt.Sprintf("embedded targets.yaml: %v", err))
		}
		builtin = r
	})
	return builtin
}

// Load returns the built-in targets merged with the definitions in path.
// An empty path returns Builtin(). The format follows the file extension:
// .yaml/.yml, .toml or .json.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".toml":
		err = toml.Unmarshal(data, &f)
	case ".json":
		err = json.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("unsupported targets file extension %q (expected .yaml, .yml, .toml or .json)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse targets file %s: %w", path, err)
	}

	r := Builtin().clone()
	if err := r.add(f.Targets); err != nil {
		return nil, fmt.Errorf("targets file %s: %w", path, err)
	}
	return r, nil
}

func (r *Registry) clone() *Registry {
	out := &Registry{langs: make(map[string]*Language, len(r.langs))}
	for k, v := range r.langs {
		out.langs[k] = v
	}
	return out
}

func (r *Registry) add(langs []Language) error {
	for i := range langs {
		l := langs[i]
		if err := l.validate(); err != nil {
			return err
		}
		l.index()
		r.langs[l.Name] = &l
	}
	return nil
}

// Lookup returns the target called name.
func (r *Registry) Lookup(name string) (*Language, error) {
	l, ok := r.langs[name]
	if !ok {
		return nil, fmt.Errorf("unknown target '%s' (known: %v)", name, r.Names())
	}
	return l, nil
}

// Names returns the sorted target names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.langs))
	for k := range r.langs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
