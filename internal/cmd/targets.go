package cmd

import (
	"fmt"
	"io"

	"github.com/Alia5/fwgen/internal/codegen/target"
)

type ListTargets struct{}

// Run is called by Kong when the targets command is executed.
func (l *ListTargets) Run(targets *target.Registry, out io.Writer) error {
	for _, name := range targets.Names() {
		lang, err := targets.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-8s %-8s %-24s %-24s %d reserved words\n",
			lang.Name, lang.DisplayName(), lang.RecordFile, lang.ParserFile, len(lang.Reserved))
	}
	return nil
}
