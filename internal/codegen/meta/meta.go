package meta

import "github.com/Alia5/fwgen/internal/schema"

// Metadata holds the validated input for code generation.
// Shared between the generator orchestrator and the target emitters.
type Metadata struct {
	Package string          // target package/namespace for the generated sources
	Columns []schema.Column // compiled columns in declaration order
}

// LineWidth is the character count every accepted data line must have.
func (md *Metadata) LineWidth() int {
	return schema.LineWidth(md.Columns)
}
