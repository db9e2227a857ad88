package cmd

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/Alia5/fwgen/internal/codegen/common"
	"github.com/Alia5/fwgen/internal/configpaths"

	json "github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Write a configuration template for a command"`
}

// ConfigInit writes the flags of one command, with their defaults, to a file
// that kong can load back through --config.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"generate,check,parse"`
	Format  string `help:"Output format" enum:"json,yaml,yml,toml" default:"json"`
	Output  string `help:"Destination file path (defaults to <command>.<format> in the current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

var configCommands = map[string]reflect.Type{
	"generate": reflect.TypeOf(Generate{}),
	"check":    reflect.TypeOf(Check{}),
	"parse":    reflect.TypeOf(Parse{}),
}

var configEncoders = map[string]func(map[string]any) ([]byte, error){
	"json": func(v map[string]any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") },
	"yaml": func(v map[string]any) ([]byte, error) { return yaml.Marshal(v) },
	"toml": func(v map[string]any) ([]byte, error) { return toml.Marshal(v) },
}

// Run is called by Kong when the config init command is executed.
func (c *ConfigInit) Run() error {
	format := strings.ToLower(c.Format)
	if format == "yml" {
		format = "yaml"
	}
	encode, ok := configEncoders[format]
	if !ok {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	root, err := configTemplate(c.Command)
	if err != nil {
		return err
	}
	data, err := encode(root)
	if err != nil {
		return fmt.Errorf("encode %s config: %w", format, err)
	}

	dest := c.Output
	if dest == "" {
		dest = c.Command + "." + format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// configTemplate returns the flag defaults of command plus the global log
// section. Positional arguments cannot be configured and are left out.
func configTemplate(command string) (map[string]any, error) {
	t, ok := configCommands[command]
	if !ok {
		return nil, fmt.Errorf("unknown command %q; expected generate, check or parse", command)
	}
	root := flagDefaults(t)
	root["log"] = flagDefaults(reflect.TypeOf(LogConfig{}))
	return root, nil
}

func flagDefaults(t reflect.Type) map[string]any {
	out := map[string]any{}
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous || skipField(f.Tag) {
			continue
		}
		name := f.Tag.Get("name")
		if name == "" {
			name = common.ToKebabCase(f.Name)
		}
		if v, ok := defaultValue(f.Type, f.Tag.Get("default")); ok {
			out[name] = v
		}
	}
	return out
}

func skipField(tag reflect.StructTag) bool {
	if tag.Get("kong") == "-" {
		return true
	}
	for _, key := range []string{"arg", "cmd", "embed"} {
		if _, ok := tag.Lookup(key); ok {
			return true
		}
	}
	return false
}

func defaultValue(t reflect.Type, def string) (any, bool) {
	switch t.Kind() {
	case reflect.String:
		return def, true
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b, true
	case reflect.Int, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n, true
	case reflect.Slice:
		return []string{}, true
	default:
		return nil, false
	}
}
