package syntax

import "strings"

// Reader is an immutable cursor over a single source file's text.
//
// Every advancement method returns a new Reader; the receiver is left
// untouched. This mirrors the teacher's rune-at-a-time scanning style
// (see multireader.go / lexer.go for who actually drives it) while
// keeping the contract the lexer depends on: once a Position has been
// read off a Reader, nothing else can change it.
//
// Two advancement modes exist. "Visible" advancement updates line,
// column and the region-tagged position; it is what ordinary token
// scanning uses. "Invisible" advancement only moves the byte offset —
// line/column do not change — which is what pragma parsing needs so
// that the comment carrying a region pragma does not itself perturb
// the positions of the tokens around it.
type Reader struct {
	file   string
	text   string
	offset int

	line, column uint32
	regions      []string // stack; regions[len(regions)-1] is the active region
}

// NewReader creates a Reader positioned at the start of text, with the
// region stack initialized to [file] per spec.md §4.1.
func NewReader(file, text string) Reader {
	return Reader{
		file:    file,
		text:    text,
		offset:  0,
		line:    1,
		column:  1,
		regions: []string{file},
	}
}

// Pos returns the position of the next character Peek would return.
func (r Reader) Pos() Position {
	return Position{
		File:   r.file,
		Line:   r.line,
		Column: r.column,
		Region: r.region(),
		offset: r.offset,
	}
}

func (r Reader) region() string {
	if len(r.regions) == 0 {
		return r.file
	}
	return r.regions[len(r.regions)-1]
}

// Eof reports whether the reader has consumed all of its text.
func (r Reader) Eof() bool {
	return r.offset >= len(r.text)
}

// Peek returns the character at the cursor, or 0 and false at EOF.
func (r Reader) Peek() (byte, bool) {
	if r.Eof() {
		return 0, false
	}
	return r.text[r.offset], true
}

// PeekAt returns the character offset characters ahead of the cursor
// (PeekAt(0) == Peek), or 0 and false if that position is past EOF.
func (r Reader) PeekAt(offset int) (byte, bool) {
	i := r.offset + offset
	if i < 0 || i >= len(r.text) {
		return 0, false
	}
	return r.text[i], true
}

// StartsWith reports whether the unread remainder of the text begins
// with s.
func (r Reader) StartsWith(s string) bool {
	return strings.HasPrefix(r.text[r.offset:], s)
}

// Remainder returns the text not yet consumed.
func (r Reader) Remainder() string {
	return r.text[r.offset:]
}

// advance moves the cursor over n bytes, applying the visible
// line/column update rule: a consumed '\n' starts a new line; any
// other consumed byte (including tabs) advances the column by one.
func (r Reader) advance(n int) Reader {
	next := r
	for i := 0; i < n && next.offset < len(next.text); i++ {
		if next.text[next.offset] == '\n' {
			next.line++
			next.column = 1
		} else {
			next.column++
		}
		next.offset++
	}
	return next
}

// ConsumeCharacter advances visibly over exactly one character (a
// no-op at EOF).
func (r Reader) ConsumeCharacter() Reader {
	if r.Eof() {
		return r
	}
	return r.advance(1)
}

// ConsumeString advances visibly over len(s) bytes. Callers are
// expected to have checked StartsWith(s) first.
func (r Reader) ConsumeString(s string) Reader {
	return r.advance(len(s))
}

// invisibleAdvance moves the cursor by n bytes without touching
// line/column — used while parsing a pragma comment.
func (r Reader) invisibleAdvance(n int) Reader {
	next := r
	next.offset += n
	if next.offset > len(next.text) {
		next.offset = len(next.text)
	}
	return next
}

// ConsumeInvisibleCharacter advances the byte offset by one character
// without changing line/column.
func (r Reader) ConsumeInvisibleCharacter() Reader {
	if r.Eof() {
		return r
	}
	return r.invisibleAdvance(1)
}

// ConsumeInvisibleString advances the byte offset by len(s) bytes
// without changing line/column.
func (r Reader) ConsumeInvisibleString(s string) Reader {
	return r.invisibleAdvance(len(s))
}

// BeginRegion pushes name onto the region stack; positions read off
// the returned Reader carry name as their Region until a matching
// EndRegion.
func (r Reader) BeginRegion(name string) Reader {
	next := r
	next.regions = append(append([]string{}, r.regions...), name)
	return next
}

// EndRegion pops the innermost region, reverting to whatever was
// active before the matching BeginRegion. Popping past the initial
// file region is a no-op: an unbalanced END_REGION pragma leaves the
// file-level region in place rather than panicking.
func (r Reader) EndRegion() Reader {
	if len(r.regions) <= 1 {
		return r
	}
	next := r
	next.regions = r.regions[:len(r.regions)-1]
	return next
}

// regionStack exposes the current stack of region names, innermost
// last; used by MultiReader to carry a reader's regions across a file
// boundary.
func (r Reader) regionStack() []string {
	return append([]string{}, r.regions...)
}

// withRegionStack returns a copy of r with the given region stack
// substituted — used when starting a new file mid-region.
func (r Reader) withRegionStack(stack []string) Reader {
	next := r
	next.regions = append([]string{}, stack...)
	return next
}
