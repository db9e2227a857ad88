// Package schema compiles fixed-width schema text into ordered column
// descriptors.
//
// A schema has one column per line in the form "name start end", where start
// and end are inclusive 1-based character offsets into a data line. Columns
// must advance monotonically: a column may touch the previous one but never
// start before it ends.
package schema

import "fmt"

// FallbackName replaces column names that normalize to an empty identifier.
const FallbackName = "unknown"

// Column describes one field of a fixed-width record.
type Column struct {
	Name    string // normalized identifier
	RawName string // name token as written in the schema
	Start   int    // inclusive, 1-based
	End     int    // inclusive, 1-based

	// Fallback is set when RawName held no identifier characters and Name
	// was replaced with FallbackName.
	Fallback bool
}

// Width returns the number of characters covered by the column.
func (c Column) Width() int {
	return c.End - c.Start + 1
}

// IsFallback reports whether the column name was replaced with FallbackName.
func (c Column) IsFallback() bool {
	return c.Fallback
}

func (c Column) String() string {
	return fmt.Sprintf("Column(columnName='%s', startIndex=%d, endIndex=%d)", c.Name, c.Start, c.End)
}

// LineWidth returns the exact character count of a line conforming to cols,
// which is the end offset of the last column.
func LineWidth(cols []Column) int {
	if len(cols) == 0 {
		return 0
	}
	return cols[len(cols)-1].End
}
