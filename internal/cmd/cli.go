package cmd

// CLI is the root command line of fwgen.
type CLI struct {
	Config      string    `help:"Configuration file (json, yaml or toml)" type:"path" env:"FWGEN_CONFIG"`
	TargetsFile string    `help:"File with additional or replacement target definitions (yaml, toml or json)" type:"path" env:"FWGEN_TARGETS_FILE"`
	Log         LogConfig `embed:"" prefix:"log."`

	Generate Generate      `cmd:"" help:"Generate the record type and fixed-width parser from a schema"`
	Check    Check         `cmd:"" help:"Validate schema files and print their columns"`
	Parse    Parse         `cmd:"" help:"Parse a fixed-width data file against a schema"`
	Targets  ListTargets   `cmd:"" help:"List the known generation targets"`
	Cfg      ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level      string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"FWGEN_LOG_LEVEL"`
	File       string `help:"Also write logs to this file" env:"FWGEN_LOG_FILE"`
	RejectFile string `help:"Append data lines rejected by 'parse' to this file" env:"FWGEN_LOG_REJECT_FILE"`
}
