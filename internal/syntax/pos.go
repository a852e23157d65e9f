package syntax

import "fmt"

// Position represents a location in Gobstones source text.
//
// A Position is a value type: once handed to a caller it never
// changes. Region tracks the logical origin of the position (usually
// the file it was read from, but see BEGIN_REGION/END_REGION pragmas
// in the lexer), independent of the physical file.
type Position struct {
	File   string
	Line   uint32
	Column uint32
	Region string

	offset int // byte offset within File's text; set by Reader.Pos, not read by any method here
}

// NewPosition builds a Position for the given file, 1-based line and
// column, and region label.
func NewPosition(file string, line, column uint32, region string) Position {
	return Position{File: file, Line: line, Column: column, Region: region}
}

// UnknownPosition is the sentinel position for synthesized tokens and
// nodes that have no real source location.
var UnknownPosition = Position{File: "", Line: 0, Column: 0, Region: ""}

// IsUnknown reports whether p is the unknown-position sentinel.
func (p Position) IsUnknown() bool {
	return p.Line == 0
}

// String renders the position as "region:line:column", falling back
// to the bare file name if no region override is active, and to
// "<unknown>" if the position is unknown.
func (p Position) String() string {
	if p.IsUnknown() {
		return "<unknown>"
	}
	region := p.Region
	if region == "" {
		region = p.File
	}
	return fmt.Sprintf("%s:%d:%d", region, p.Line, p.Column)
}

// Less reports whether p sorts strictly before q in (file, line,
// column) order. Positions from different files are ordered by file
// name; this is only used to keep diagnostics and warnings in a
// deterministic, reproducible order, not to compare cross-file
// provenance meaningfully.
func (p Position) Less(q Position) bool {
	if p.File != q.File {
		return p.File < q.File
	}
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// LessEq reports whether p sorts at or before q; see Less.
func (p Position) LessEq(q Position) bool {
	return p == q || p.Less(q)
}
