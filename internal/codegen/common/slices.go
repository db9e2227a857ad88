package common

import (
	"github.com/Alia5/fwgen/internal/codegen/meta"
	"github.com/Alia5/fwgen/internal/schema"
)

// Slice is the template view of one column: its name and the zero-based,
// half-open character range [From, To) it occupies in a data line.
type Slice struct {
	Name  string
	Start int // 1-based, as declared
	End   int // 1-based, as declared
	From  int
	To    int
	Last  bool
}

// Slices converts columns to template views. A start offset of 0 is clamped
// so that From never goes negative.
func Slices(cols []schema.Column) []Slice {
	out := make([]Slice, len(cols))
	for i, c := range cols {
		from := c.Start - 1
		if from < 0 {
			from = 0
		}
		out[i] = Slice{
			Name:  c.Name,
			Start: c.Start,
			End:   c.End,
			From:  from,
			To:    c.End,
			Last:  i == len(cols)-1,
		}
	}
	return out
}

// View is the data handed to every emitter template.
type View struct {
	Header  string
	Package string
	Width   int
	Fields  []Slice
}

// NewView builds the template data for md. commentPrefix starts the
// generated-code banner line.
func NewView(md *meta.Metadata, commentPrefix string) (View, error) {
	header, err := GeneratedHeader(commentPrefix)
	if err != nil {
		return View{}, err
	}
	return View{
		Header:  header,
		Package: md.Package,
		Width:   md.LineWidth(),
		Fields:  Slices(md.Columns),
	}, nil
}
